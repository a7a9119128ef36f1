package codebuilder

import "strings"

// Block is an ordered container of lines, blank lines and nested blocks.
//
// A Block is built through the Insert methods, each of which returns the
// block so calls can be chained. Insertions never panic: invalid input is
// dropped and the first error is kept, to be reported by Err and by the
// renderer. Once a block is passed to InsertBlock it belongs to the parent
// and further insertions on it fail with ErrBlockMoved.
type Block struct {
	elements []Element
	owned    bool
	err      error
}

// NewBlock returns an empty block.
func NewBlock() *Block {
	return &Block{}
}

func (b *Block) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// writable records ErrBlockMoved when b has been handed to a parent.
func (b *Block) writable() bool {
	if b.owned {
		b.fail(ErrBlockMoved)
		return false
	}
	return true
}

func validLine(content string) error {
	if strings.ContainsAny(content, "\r\n") {
		return &ContentError{Content: content}
	}
	return nil
}

// InsertLine appends a text line. Content containing '\n' or '\r' is
// rejected with a *ContentError.
func (b *Block) InsertLine(content string) *Block {
	if !b.writable() {
		return b
	}
	if err := validLine(content); err != nil {
		b.fail(err)
		return b
	}
	b.elements = append(b.elements, textElement(content))
	return b
}

// InsertLineIf appends content only when cond is true.
func (b *Block) InsertLineIf(cond bool, content string) *Block {
	if !cond {
		return b
	}
	return b.InsertLine(content)
}

// InsertLines appends each line in order.
func (b *Block) InsertLines(lines ...string) *Block {
	for _, line := range lines {
		b.InsertLine(line)
	}
	return b
}

// InsertNewLine appends a blank line.
func (b *Block) InsertNewLine() *Block {
	if !b.writable() {
		return b
	}
	b.elements = append(b.elements, blankElement())
	return b
}

// InsertNewLines appends count blank lines.
func (b *Block) InsertNewLines(count int) *Block {
	for i := 0; i < count; i++ {
		b.InsertNewLine()
	}
	return b
}

// InsertBlock appends child as a nested block and takes ownership of it.
func (b *Block) InsertBlock(child *Block) *Block {
	if !b.writable() {
		return b
	}
	switch {
	case child == nil:
		b.fail(ErrNilBlock)
		return b
	case child == b || child.owned:
		b.fail(ErrBlockMoved)
		return b
	}
	child.owned = true
	b.elements = append(b.elements, blockElement(child))
	return b
}

// InsertScope appends "header {", body one level deeper, and a closing "}".
// A nil body yields an empty pair of braces.
func (b *Block) InsertScope(header string, body *Block) *Block {
	if body == nil {
		body = NewBlock()
	}
	open := "{"
	if header != "" {
		open = header + " {"
	}
	return b.InsertLine(open).InsertBlock(body).InsertLine("}")
}

// Err returns the first construction error recorded on b or any block
// nested in it.
func (b *Block) Err() error {
	if b.err != nil {
		return b.err
	}
	for _, e := range b.elements {
		if e.kind == KindBlock {
			if err := e.block.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of direct children.
func (b *Block) Len() int {
	return len(b.elements)
}

// Elements returns a copy of the direct children in insertion order.
func (b *Block) Elements() []Element {
	out := make([]Element, len(b.elements))
	copy(out, b.elements)
	return out
}

// String renders b with DefaultOptions. Rendering errors yield "".
func (b *Block) String() string {
	s, err := NewRenderer().Render(b)
	if err != nil {
		return ""
	}
	return s
}
