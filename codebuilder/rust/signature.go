// Package rust builds the header lines of Rust items for use with
// codebuilder scopes.
package rust

import (
	"strings"

	"github.com/apskhem/code-builder/codebuilder"
)

// Visibility is a Rust visibility modifier.
type Visibility int

const (
	Private Visibility = iota
	Pub
	PubCrate
	PubSuper
	PubSelf
)

func (v Visibility) String() string {
	switch v {
	case Pub:
		return "pub"
	case PubCrate:
		return "pub(crate)"
	case PubSuper:
		return "pub(super)"
	case PubSelf:
		return "pub(self)"
	default:
		return ""
	}
}

// Signature renders the single-line header that precedes an item's braces.
type Signature interface {
	Signature() string
}

// Param is a name and type pair, used for function parameters and where
// clause bounds.
type Param struct {
	Name string
	Type string
}

func (p Param) String() string {
	return p.Name + ": " + p.Type
}

func joinParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func withVisibility(b *strings.Builder, v Visibility) {
	if s := v.String(); s != "" {
		b.WriteString(s)
		b.WriteByte(' ')
	}
}

// Module is a `mod name` header.
type Module struct {
	Visibility Visibility
	Name       string
}

func (m Module) Signature() string {
	b := strings.Builder{}
	withVisibility(&b, m.Visibility)
	b.WriteString("mod ")
	b.WriteString(m.Name)
	return b.String()
}

// Function is a `fn` header.
type Function struct {
	Visibility Visibility
	Async      bool
	Name       string
	Generics   []string
	Params     []Param
	Return     string
	Where      []Param
}

// Signature keeps the where clause on the header line so the header stays a
// single codebuilder line.
func (f Function) Signature() string {
	b := strings.Builder{}
	withVisibility(&b, f.Visibility)
	if f.Async {
		b.WriteString("async ")
	}
	b.WriteString("fn ")
	b.WriteString(f.Name)

	if len(f.Generics) > 0 {
		b.WriteByte('<')
		b.WriteString(strings.Join(f.Generics, ", "))
		b.WriteByte('>')
	}

	b.WriteByte('(')
	b.WriteString(joinParams(f.Params))
	b.WriteByte(')')

	if f.Return != "" {
		b.WriteString(" -> ")
		b.WriteString(f.Return)
	}

	if len(f.Where) > 0 {
		b.WriteString(" where ")
		b.WriteString(joinParams(f.Where))
	}

	return b.String()
}

// Custom is a caller-written header used verbatim.
type Custom string

func (c Custom) Signature() string {
	return string(c)
}

func header(sig Signature) string {
	if sig == nil {
		return ""
	}
	return sig.Signature()
}

// Scope returns a new block holding sig's header line, body one level deeper
// and the closing brace. A nil signature produces a bare `{ ... }` scope.
//
// The returned block is itself nested wherever it is inserted; use Insert to
// place an item at the level of an existing block.
func Scope(sig Signature, body *codebuilder.Block) *codebuilder.Block {
	return codebuilder.NewBlock().InsertScope(header(sig), body)
}

// Insert appends the item described by sig and body to parent, at parent's
// own level, and returns parent.
func Insert(parent *codebuilder.Block, sig Signature, body *codebuilder.Block) *codebuilder.Block {
	return parent.InsertScope(header(sig), body)
}
