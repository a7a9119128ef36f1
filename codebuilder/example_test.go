package codebuilder_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/apskhem/code-builder/codebuilder"
)

func ExampleSpace() {
	code := codebuilder.NewSpace().
		InsertLine("let x = 42;").
		InsertNewLine().
		InsertBlock(codebuilder.NewBlock().
			InsertLine("if x > 0 {").
			InsertBlock(codebuilder.NewBlock().InsertLine(`println!("Positive number!");`)).
			InsertLine("}"))

	fmt.Println(code)
	// Output:
	// let x = 42;
	//
	// if x > 0 {
	//   println!("Positive number!");
	// }
}

func ExampleBlock_InsertScope() {
	body := codebuilder.NewBlock().
		InsertLine("for _, v := range values {").
		InsertBlock(codebuilder.NewBlock().InsertLine("total += v")).
		InsertLine("}").
		InsertLine("return total")

	fn := codebuilder.NewBlock().InsertScope("func sum(values []int) (total int)", body)

	r := codebuilder.NewRenderer(codebuilder.WithIndent("    "))
	_ = r.Write(os.Stdout, fn)
	fmt.Println()
	// Output:
	// func sum(values []int) (total int) {
	//     for _, v := range values {
	//         total += v
	//     }
	//     return total
	// }
}

func ExampleRenderer_Render_maxDepth() {
	b := codebuilder.NewBlock().
		InsertBlock(codebuilder.NewBlock().
			InsertBlock(codebuilder.NewBlock().InsertLine("too deep")))

	_, err := codebuilder.NewRenderer(codebuilder.WithMaxDepth(1)).Render(b)
	fmt.Println(errors.Is(err, codebuilder.ErrDepthExceeded))
	// Output:
	// true
}
