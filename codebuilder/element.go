package codebuilder

// Kind identifies which variant an Element holds.
type Kind int

const (
	// KindText is a single line of literal content.
	KindText Kind = iota
	// KindBlank is an empty line. It never carries indentation.
	KindBlank
	// KindBlock is a nested block rendered one level deeper than its parent.
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlank:
		return "blank"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Element is one child of a Block. The set of kinds is closed; use Kind to
// switch over it.
type Element struct {
	kind  Kind
	text  string
	block *Block
}

func textElement(content string) Element {
	return Element{kind: KindText, text: content}
}

func blankElement() Element {
	return Element{kind: KindBlank}
}

func blockElement(b *Block) Element {
	return Element{kind: KindBlock, block: b}
}

func (e Element) Kind() Kind {
	return e.kind
}

// Text returns the content of a text element, or "" for other kinds.
func (e Element) Text() string {
	return e.text
}

// Block returns the nested block of a block element, or nil for other kinds.
// The returned block is owned by its parent and must not be mutated.
func (e Element) Block() *Block {
	return e.block
}
