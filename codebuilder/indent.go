package codebuilder

import "strings"

const (
	// DefaultIndent is the indentation unit used when none is configured.
	DefaultIndent = "  "
	// DefaultLineEnding separates rendered lines.
	DefaultLineEnding = "\n"
)

// Indent maps a nesting depth to the prefix written before a text line.
type Indent struct {
	Unit string
}

// Prefix returns Unit repeated depth times. Negative depths yield "".
func (i Indent) Prefix(depth int) string {
	if depth <= 0 || i.Unit == "" {
		return ""
	}
	return strings.Repeat(i.Unit, depth)
}

// Options control how a block tree is turned into text.
type Options struct {
	Indent     Indent
	MaxDepth   int // 0 means unbounded
	LineEnding string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns two-space indentation, no depth limit and "\n" line endings.
func DefaultOptions() Options {
	return Options{
		Indent:     Indent{Unit: DefaultIndent},
		LineEnding: DefaultLineEnding,
	}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithIndent sets the indentation unit.
func WithIndent(unit string) Option {
	return func(o *Options) {
		o.Indent.Unit = unit
	}
}

// WithIndentChar sets the indentation unit to width copies of ch.
func WithIndentChar(ch rune, width int) Option {
	return func(o *Options) {
		if width < 0 {
			width = 0
		}
		o.Indent.Unit = strings.Repeat(string(ch), width)
	}
}

// WithTabs indents with one tab per level.
func WithTabs() Option {
	return WithIndent("\t")
}

// WithMaxDepth bounds the nesting depth the renderer accepts. Zero or less
// disables the bound.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxDepth = n
	}
}

// WithLineEnding sets the separator placed between rendered lines. An empty
// value keeps the current setting.
func WithLineEnding(s string) Option {
	return func(o *Options) {
		if s != "" {
			o.LineEnding = s
		}
	}
}
