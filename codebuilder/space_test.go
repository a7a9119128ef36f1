package codebuilder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpace_Example(t *testing.T) {
	space := NewSpace().
		InsertLine("let x = 42;").
		InsertNewLine().
		InsertBlock(NewBlock().
			InsertLine("if x > 0 {").
			InsertBlock(NewBlock().InsertLine("println!(...)")).
			InsertLine("}"))

	got, err := space.Render()
	require.NoError(t, err)
	assert.Equal(t, "let x = 42;\n\nif x > 0 {\n  println!(...)\n}", got)
	assert.Equal(t, got, space.String())
}

func TestBlock_ExampleAsRoot(t *testing.T) {
	// a bare root block indents its child blocks; only a space keeps them flush
	root := NewBlock().
		InsertLine("let x = 42;").
		InsertNewLine().
		InsertBlock(NewBlock().
			InsertLine("if x > 0 {").
			InsertBlock(NewBlock().InsertLine("println!(...)")).
			InsertLine("}"))

	got, err := NewRenderer().Render(root)
	require.NoError(t, err)
	assert.Equal(t, "let x = 42;\n\n  if x > 0 {\n    println!(...)\n  }", got)
}

func TestSpace_Render(t *testing.T) {
	tests := []struct {
		name   string
		space  func() *Space
		expect string
	}{
		{
			name:   "empty space",
			space:  func() *Space { return NewSpace() },
			expect: "",
		},
		{
			name: "top-level blocks are not indented",
			space: func() *Space {
				return NewSpace().
					InsertLine("//! comment").
					InsertLine("").
					InsertBlock(NewBlock().
						InsertLine("testing").
						InsertBlock(NewBlock().InsertLine("testing")))
			},
			expect: "//! comment\n\ntesting\n  testing",
		},
		{
			name: "scopes indent their body",
			space: func() *Space {
				return NewSpace().
					InsertScope("mod a", NewBlock().
						InsertScope("fn f()", NewBlock().InsertLine("g();")))
			},
			expect: "mod a {\n  fn f() {\n    g();\n  }\n}",
		},
		{
			name: "conditional and repeated inserts",
			space: func() *Space {
				return NewSpace().
					InsertLineIf(false, "skipped").
					InsertLines("a", "b").
					InsertNewLines(2).
					InsertLine("c")
			},
			expect: "a\nb\n\n\nc",
		},
		{
			name: "options apply to the whole space",
			space: func() *Space {
				return NewSpace(WithTabs()).
					InsertScope("func main()", NewBlock().InsertLine("run()"))
			},
			expect: "func main() {\n\trun()\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.space().Render()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestSpace_Errors(t *testing.T) {
	s := NewSpace().InsertLine("ok").InsertBlock(NewBlock().InsertLine("bad\n"))
	assert.ErrorIs(t, s.Err(), ErrInvalidContent)

	_, err := s.Render()
	assert.ErrorIs(t, err, ErrInvalidContent)
	assert.Equal(t, "", s.String())

	deep := NewSpace(WithMaxDepth(1)).InsertBlock(NewBlock().
		InsertBlock(NewBlock().
			InsertBlock(NewBlock().InsertLine("too deep"))))
	_, err = deep.Render()
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestSpace_WriteTo(t *testing.T) {
	s := NewSpace().InsertLine("a").InsertScope("b", NewBlock().InsertLine("c"))

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "a\nb {\n  c\n}", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestSpace_Accessors(t *testing.T) {
	s := NewSpace(WithIndent("    ")).InsertLine("a")
	assert.Equal(t, "    ", s.Options().Indent.Unit)
	assert.Equal(t, 1, s.Root().Len())
}

func TestSpace_Walk(t *testing.T) {
	s := NewSpace().
		InsertLine("top").
		InsertBlock(NewBlock().
			InsertLine("level zero").
			InsertBlock(NewBlock().InsertLine("level one")))

	depths := map[string]int{}
	err := s.Walk(func(depth int, e Element) error {
		if e.Kind() == KindText {
			depths[e.Text()] = depth
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"top": 0, "level zero": 0, "level one": 1}, depths)
}
