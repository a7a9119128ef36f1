// Package document decodes a YAML or TOML description of a block tree and
// builds it into a codebuilder space.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/apskhem/code-builder/codebuilder"
	"github.com/apskhem/code-builder/internal/comment"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrInvalidNode       = errors.New("node must set exactly one of line, lines, blank, block or scope")
	ErrInvalidLineEnding = errors.New("line ending must be lf or crlf")
)

// Document is the decoded form of an input file.
type Document struct {
	Indent        string   `yaml:"indent" toml:"indent"`
	IndentWidth   int      `yaml:"indent_width" toml:"indent_width"`
	Tabs          bool     `yaml:"tabs" toml:"tabs"`
	MaxDepth      int      `yaml:"max_depth" toml:"max_depth"`
	LineEnding    string   `yaml:"line_ending" toml:"line_ending"`
	CommentPrefix string   `yaml:"comment_prefix" toml:"comment_prefix"`
	Header        []string `yaml:"header" toml:"header"`
	Body          []Node   `yaml:"body" toml:"body"`
}

// Node is one entry of a body. Exactly one of Line, Lines, Blank, Block or
// Scope must be set. When If is present and false the node is skipped.
type Node struct {
	If    *bool    `yaml:"if" toml:"if"`
	Line  *string  `yaml:"line" toml:"line"`
	Lines []string `yaml:"lines" toml:"lines"`
	Blank int      `yaml:"blank" toml:"blank"`
	Block []Node   `yaml:"block" toml:"block"`
	Scope *Scope   `yaml:"scope" toml:"scope"`
}

// Scope is a header line, an indented body and a closing brace.
type Scope struct {
	Header string `yaml:"header" toml:"header"`
	Body   []Node `yaml:"body" toml:"body"`
}

// Decode parses data, choosing the codec from the extension of name.
func Decode(name string, data []byte) (*Document, error) {
	doc := &Document{}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode %s: unknown key %q", name, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc, nil
}

// Options returns the rendering options the document asks for. Tabs win
// over IndentWidth, which wins over Indent.
func (d *Document) Options() ([]codebuilder.Option, error) {
	opts := []codebuilder.Option{}
	switch {
	case d.Tabs:
		opts = append(opts, codebuilder.WithTabs())
	case d.IndentWidth > 0:
		opts = append(opts, codebuilder.WithIndentChar(' ', d.IndentWidth))
	case d.Indent != "":
		opts = append(opts, codebuilder.WithIndent(d.Indent))
	}
	if d.MaxDepth > 0 {
		opts = append(opts, codebuilder.WithMaxDepth(d.MaxDepth))
	}
	if d.LineEnding != "" {
		ending, err := ParseLineEnding(d.LineEnding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, codebuilder.WithLineEnding(ending))
	}
	return opts, nil
}

// ParseLineEnding maps "lf" and "crlf" to their characters.
func ParseLineEnding(name string) (string, error) {
	switch strings.ToLower(name) {
	case "lf", "\n":
		return "\n", nil
	case "crlf", "\r\n":
		return "\r\n", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLineEnding, name)
	}
}

// Space builds the document. overrides are applied after the document's own
// options.
func (d *Document) Space(overrides ...codebuilder.Option) (*codebuilder.Space, error) {
	opts, err := d.Options()
	if err != nil {
		return nil, err
	}
	space := codebuilder.NewSpace(append(opts, overrides...)...)

	if len(d.Header) > 0 {
		space.InsertBlock(comment.Header(d.CommentPrefix, d.Header[0], d.Header[1:]...)).
			InsertNewLine()
		if err := space.Err(); err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
	}

	if err := build(space.Root(), d.Body, "body", true); err != nil {
		return nil, err
	}
	return space, nil
}

func (n Node) validate() error {
	set := 0
	if n.Line != nil {
		set++
	}
	if n.Lines != nil {
		set++
	}
	if n.Blank > 0 {
		set++
	}
	if n.Block != nil {
		set++
	}
	if n.Scope != nil {
		set++
	}
	if set != 1 || n.Blank < 0 {
		return ErrInvalidNode
	}
	return nil
}

// build inserts nodes into parent. Top-level scopes belong to a space, whose
// blocks are not indented, so their body is wrapped one level deeper.
func build(parent *codebuilder.Block, nodes []Node, path string, top bool) error {
	for i, n := range nodes {
		p := fmt.Sprintf("%s[%d]", path, i)
		if err := n.validate(); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if n.If != nil && !*n.If {
			continue
		}

		switch {
		case n.Line != nil:
			parent.InsertLine(*n.Line)
		case n.Lines != nil:
			parent.InsertLines(n.Lines...)
		case n.Blank > 0:
			parent.InsertNewLines(n.Blank)
		case n.Block != nil:
			child := codebuilder.NewBlock()
			if err := build(child, n.Block, p+".block", false); err != nil {
				return err
			}
			parent.InsertBlock(child)
		case n.Scope != nil:
			body := codebuilder.NewBlock()
			if err := build(body, n.Scope.Body, p+".scope.body", false); err != nil {
				return err
			}
			if top {
				parent.InsertBlock(codebuilder.NewBlock().InsertScope(n.Scope.Header, body))
			} else {
				parent.InsertScope(n.Scope.Header, body)
			}
		}

		if err := parent.Err(); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
