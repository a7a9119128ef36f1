package gosource

import (
	"testing"

	"github.com/apskhem/code-builder/codebuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloFile() *codebuilder.Space {
	return NewFile("main", "fmt", "os").
		InsertNewLine().
		InsertLine("const greeting = \"hello\"").
		InsertNewLine().
		InsertLine("var a, b int").
		InsertNewLine().
		InsertLine("type point struct {").
		InsertBlock(codebuilder.NewBlock().InsertBlock(codebuilder.NewBlock().InsertLine("x, y int"))).
		InsertLine("}").
		InsertNewLine().
		InsertScope("func main()", codebuilder.NewBlock().
			InsertLine("fmt.Println(greeting)").
			InsertLine("os.Exit(0)")).
		InsertNewLine()
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		imports []string
		expect  string
	}{
		{
			name:   "package clause only",
			pkg:    "codegen",
			expect: "package codegen",
		},
		{
			name:    "grouped imports",
			pkg:     "main",
			imports: []string{"fmt", "github.com/dave/dst"},
			expect:  "package main\n\nimport (\n\t\"fmt\"\n\t\"github.com/dave/dst\"\n)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFile(tt.pkg, tt.imports...).Render()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestCheck(t *testing.T) {
	src, err := helloFile().Render()
	require.NoError(t, err)

	f, err := Check(src)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Package: "main",
		Imports: 2,
		Funcs:   1,
		Types:   1,
		Vars:    2,
		Consts:  1,
	}, Summarize(f))

	_, err = Check("package main\n\nfunc main() {")
	assert.Error(t, err)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestFormat(t *testing.T) {
	src, err := helloFile().Render()
	require.NoError(t, err)

	formatted, err := Format("", src)
	require.NoError(t, err)
	assert.Contains(t, formatted, "func main() {\n\tfmt.Println(greeting)\n\tos.Exit(0)\n}\n")
	assert.Contains(t, formatted, "type point struct {\n\tx, y int\n}\n")

	again, err := Format("main.go", formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, again, "formatting is idempotent")

	_, err = Format("broken.go", "package main\nfunc {")
	assert.Error(t, err)
}

func TestPrint(t *testing.T) {
	src, err := helloFile().Render()
	require.NoError(t, err)

	f, err := Check(src)
	require.NoError(t, err)

	printed, err := Print(f)
	require.NoError(t, err)

	reparsed, err := Check(printed)
	require.NoError(t, err)
	assert.Equal(t, Summarize(f), Summarize(reparsed))
}

func TestDump(t *testing.T) {
	f, err := Check("package main\n\nfunc run() {}\n")
	require.NoError(t, err)

	out, err := Dump(f)
	require.NoError(t, err)
	assert.Contains(t, out, "*dst.FuncDecl")
	assert.Contains(t, out, "\"run\"")
}
