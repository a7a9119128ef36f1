package codebuilder

import (
	"io"
	"strings"
)

// Space is the top-level container of generated text. Its own lines and its
// direct child blocks render with no indentation; each block nested inside
// those adds one indentation unit.
type Space struct {
	root     *Block
	renderer *Renderer
}

// NewSpace returns an empty space rendered with opts.
func NewSpace(opts ...Option) *Space {
	return &Space{
		root:     NewBlock(),
		renderer: NewRenderer(opts...),
	}
}

// InsertLine appends a text line. See Block.InsertLine.
func (s *Space) InsertLine(content string) *Space {
	s.root.InsertLine(content)
	return s
}

// InsertLineIf appends content only when cond is true.
func (s *Space) InsertLineIf(cond bool, content string) *Space {
	s.root.InsertLineIf(cond, content)
	return s
}

// InsertLines appends each line in order.
func (s *Space) InsertLines(lines ...string) *Space {
	s.root.InsertLines(lines...)
	return s
}

// InsertNewLine appends a blank line.
func (s *Space) InsertNewLine() *Space {
	s.root.InsertNewLine()
	return s
}

// InsertNewLines appends count blank lines.
func (s *Space) InsertNewLines(count int) *Space {
	s.root.InsertNewLines(count)
	return s
}

// InsertBlock appends child and takes ownership of it.
func (s *Space) InsertBlock(child *Block) *Space {
	s.root.InsertBlock(child)
	return s
}

// InsertScope appends "header {", body and "}". The body is indented one
// level relative to the braces.
func (s *Space) InsertScope(header string, body *Block) *Space {
	if body == nil {
		body = NewBlock()
	}
	// the scope body must sit one level below the braces, so wrap it
	s.root.InsertBlock(NewBlock().InsertScope(header, body))
	return s
}

// Err returns the first construction error in the space.
func (s *Space) Err() error {
	return s.root.Err()
}

// Root returns the block holding the space's top-level children. Lines
// inserted on it are space lines; blocks inserted on it render with no
// enclosing indentation.
func (s *Space) Root() *Block {
	return s.root
}

// Walk visits the space's elements like Walk, reporting depths as the space
// renders them: top-level blocks and their lines are at depth zero.
func (s *Space) Walk(fn WalkFunc) error {
	return Walk(s.root, func(depth int, e Element) error {
		if depth > 0 {
			depth--
		}
		return fn(depth, e)
	})
}

// Options returns the rendering options of the space.
func (s *Space) Options() Options {
	return s.renderer.Options()
}

// Render returns the text of the space.
func (s *Space) Render() (string, error) {
	var sb strings.Builder
	if err := s.renderer.writeSpace(&sb, s.root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteTo streams the text of the space to w.
func (s *Space) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := s.renderer.writeSpace(cw, s.root)
	return cw.n, err
}

// String renders the space. Rendering errors yield "".
func (s *Space) String() string {
	out, err := s.Render()
	if err != nil {
		return ""
	}
	return out
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
