package main

import (
	"github.com/apskhem/code-builder/cmd"
)

func main() {
	cmd.Execute()
}
