package codebuilder

import (
	"io"
	"strings"
)

// Renderer turns block trees into text. A Renderer holds only its options
// and may be shared between goroutines.
type Renderer struct {
	opts Options
}

// NewRenderer returns a renderer configured by opts on top of DefaultOptions.
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{opts: newOptions(opts...)}
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render returns the text of b. Lines are joined by the configured line
// ending and no terminator follows the last line.
func (r *Renderer) Render(b *Block) (string, error) {
	var sb strings.Builder
	if err := r.Write(&sb, b); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write streams the text of b to w. Construction errors are reported before
// anything is written; a depth or write error may leave partial output.
func (r *Renderer) Write(w io.Writer, b *Block) error {
	if b == nil {
		return ErrNilBlock
	}
	if err := b.Err(); err != nil {
		return err
	}
	lw := &lineWriter{w: w, sep: r.opts.LineEnding}
	if err := r.writeBlock(lw, b, 0); err != nil {
		return err
	}
	return lw.err
}

// writeSpace renders the children of a top-level space. Its blocks get no
// enclosing indentation.
func (r *Renderer) writeSpace(w io.Writer, b *Block) error {
	if err := b.Err(); err != nil {
		return err
	}
	lw := &lineWriter{w: w, sep: r.opts.LineEnding}
	for _, e := range b.elements {
		if e.kind == KindBlock {
			if err := r.writeBlock(lw, e.block, 0); err != nil {
				return err
			}
		} else {
			lw.element(e, "")
		}
		if lw.err != nil {
			return lw.err
		}
	}
	return nil
}

func (r *Renderer) writeBlock(lw *lineWriter, b *Block, depth int) error {
	if r.opts.MaxDepth > 0 && depth > r.opts.MaxDepth {
		return &DepthError{Depth: depth, Max: r.opts.MaxDepth}
	}
	prefix := r.opts.Indent.Prefix(depth)
	for _, e := range b.elements {
		if e.kind == KindBlock {
			if err := r.writeBlock(lw, e.block, depth+1); err != nil {
				return err
			}
			continue
		}
		lw.element(e, prefix)
		if lw.err != nil {
			return lw.err
		}
	}
	return nil
}

// lineWriter places the separator between lines, never after the last one.
// Empty text lines get no prefix so output never ends a line in whitespace.
// The first write error sticks.
type lineWriter struct {
	w       io.Writer
	sep     string
	started bool
	err     error
}

func (lw *lineWriter) element(e Element, prefix string) {
	switch e.kind {
	case KindBlank:
		lw.line("", "")
	case KindText:
		if e.text == "" {
			prefix = ""
		}
		lw.line(prefix, e.text)
	}
}

func (lw *lineWriter) line(prefix, content string) {
	if lw.err != nil {
		return
	}
	if lw.started {
		lw.write(lw.sep)
	}
	lw.started = true
	lw.write(prefix)
	lw.write(content)
}

func (lw *lineWriter) write(s string) {
	if lw.err != nil || s == "" {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
}
