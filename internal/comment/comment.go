package comment

import (
	"fmt"

	"github.com/apskhem/code-builder/codebuilder"
)

const (
	InfoHeader string = "INFO"
	WarnHeader string = "WARN"

	// DefaultPrefix starts a line comment in C-family languages.
	DefaultPrefix string = "//"
)

// Header builds a block of line comments to place at the top of generated
// output. The message is the main comment, and additionalInfo is a list of
// optional comments that will be written on new lines below it.
// An empty prefix uses DefaultPrefix.
func Header(prefix, message string, additionalInfo ...string) *codebuilder.Block {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	block := codebuilder.NewBlock().InsertLine(line(prefix, message))
	for _, info := range additionalInfo {
		block.InsertLine(line(prefix, info))
	}
	return block
}

// Generated returns the marker line Go tooling recognizes as generated code.
func Generated(tool string) string {
	return fmt.Sprintf("Code generated by %s. DO NOT EDIT.", tool)
}

func line(prefix, text string) string {
	if text == "" {
		return prefix
	}
	return prefix + " " + text
}
