// gosource holds helpers for emitting Go source with codebuilder. Rendered
// text can be checked by parsing it into a DST file and formatted the way
// gofmt would before it is written out.
package gosource

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"

	"github.com/apskhem/code-builder/codebuilder"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"golang.org/x/tools/imports"
)

// DefaultFileName is used when Format is not given a file name.
const DefaultFileName = "generated.go"

// Options returns the codebuilder options gofmt output expects: one tab per
// level and "\n" line endings.
func Options() []codebuilder.Option {
	return []codebuilder.Option{codebuilder.WithTabs(), codebuilder.WithLineEnding("\n")}
}

// NewFile starts a space with a package clause and, when importPaths is not
// empty, a grouped import declaration.
func NewFile(pkg string, importPaths ...string) *codebuilder.Space {
	space := codebuilder.NewSpace(Options()...).
		InsertLine("package " + pkg)

	if len(importPaths) == 0 {
		return space
	}

	specs := codebuilder.NewBlock()
	for _, path := range importPaths {
		specs.InsertLine(strconv.Quote(path))
	}
	return space.
		InsertNewLine().
		InsertLine("import (").
		InsertBlock(codebuilder.NewBlock().InsertBlock(specs)).
		InsertLine(")")
}

// Check parses src and returns its DST form. It fails when the rendered text
// is not valid Go.
func Check(src string) (*dst.File, error) {
	f, err := decorator.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("rendered source is not valid Go: %w", err)
	}
	return f, nil
}

// Print writes f back to Go source.
func Print(f *dst.File) (string, error) {
	buf := bytes.Buffer{}
	if err := decorator.Fprint(&buf, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Format returns src formatted like gofmt. Imports are sorted but never
// added or removed.
func Format(filename, src string) (string, error) {
	if filename == "" {
		filename = DefaultFileName
	}
	out, err := imports.Process(filename, []byte(src), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to format %s: %w", filename, err)
	}
	return string(out), nil
}

// Summary counts the top-level declarations of a file.
type Summary struct {
	Package string
	Imports int
	Funcs   int
	Types   int
	Vars    int
	Consts  int
}

// Summarize counts the declarations in f.
func Summarize(f *dst.File) Summary {
	s := Summary{}
	if f == nil {
		return s
	}
	if f.Name != nil {
		s.Package = f.Name.Name
	}

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *dst.FuncDecl:
			s.Funcs++
		case *dst.GenDecl:
			switch d.Tok {
			case token.IMPORT:
				s.Imports += len(d.Specs)
			case token.TYPE:
				s.Types += len(d.Specs)
			case token.VAR:
				s.Vars += countNames(d.Specs)
			case token.CONST:
				s.Consts += countNames(d.Specs)
			}
		}
	}
	return s
}

func countNames(specs []dst.Spec) int {
	n := 0
	for _, spec := range specs {
		if v, ok := spec.(*dst.ValueSpec); ok {
			n += len(v.Names)
		}
	}
	return n
}
