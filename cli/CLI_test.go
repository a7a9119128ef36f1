package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apskhem/code-builder/codebuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing optional file gives defaults", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(dir, "none.toml"), false)
		require.NoError(t, err)
		assert.Equal(t, NewConfig(), cfg)
	})

	t.Run("missing required file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "none.toml"), true)
		assert.Error(t, err)
	})

	t.Run("values are read and trimmed", func(t *testing.T) {
		path := writeFile(t, dir, "full.toml", `
input = " doc.yaml "
lang = "go"
max_depth = 8
max_width = 100
line_ending = "crlf"
`)
		cfg, err := LoadFile(path, true)
		require.NoError(t, err)
		assert.Equal(t, "doc.yaml", cfg.Input)
		assert.Equal(t, LangGo, cfg.Lang)
		assert.Equal(t, 8, cfg.MaxDepth)
		assert.Equal(t, 100, cfg.MaxWidth)
		assert.Equal(t, DefaultAppName, cfg.AppName)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, dir, "bad.toml", `indnet = "  "`)
		_, err := LoadFile(path, true)
		assert.ErrorContains(t, err, "indnet")
	})
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.yaml", "body: []\n")

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(cfg *Config) {}},
		{name: "missing input", mutate: func(cfg *Config) { cfg.Input = "" }, wantErr: "input is required"},
		{name: "input does not exist", mutate: func(cfg *Config) { cfg.Input = filepath.Join(dir, "x.yaml") }, wantErr: "is invalid"},
		{name: "bad lang", mutate: func(cfg *Config) { cfg.Lang = "rust" }, wantErr: "lang must be"},
		{name: "negative depth", mutate: func(cfg *Config) { cfg.MaxDepth = -1 }, wantErr: "must not be negative"},
		{name: "bad line ending", mutate: func(cfg *Config) { cfg.LineEnding = "cr" }, wantErr: "line ending"},
		{name: "diff without output", mutate: func(cfg *Config) { cfg.DiffFile = filepath.Join(dir, "a.diff") }, wantErr: "diff requires output"},
		{
			name: "diff with bad extension",
			mutate: func(cfg *Config) {
				cfg.Output = filepath.Join(dir, "out.rs")
				cfg.DiffFile = filepath.Join(dir, "a.patch")
			},
			wantErr: ".diff extension",
		},
		{
			name: "diff and output",
			mutate: func(cfg *Config) {
				cfg.Output = filepath.Join(dir, "out.rs")
				cfg.DiffFile = filepath.Join(dir, "a.diff")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Input = input
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		indent   string
		maxDepth int
		ending   string
	}{
		{name: "nothing set keeps defaults", cfg: Config{}, indent: codebuilder.DefaultIndent, ending: "\n"},
		{name: "indent string", cfg: Config{Indent: "   "}, indent: "   ", ending: "\n"},
		{name: "indent width wins over indent", cfg: Config{Indent: "   ", IndentWidth: 4}, indent: "    ", ending: "\n"},
		{name: "go forces tabs", cfg: Config{Lang: LangGo, IndentWidth: 4}, indent: "\t", ending: "\n"},
		{name: "depth and ending", cfg: Config{MaxDepth: 3, LineEnding: "crlf"}, indent: codebuilder.DefaultIndent, maxDepth: 3, ending: "\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := codebuilder.NewRenderer(tt.cfg.Options()...).Options()
			assert.Equal(t, tt.indent, o.Indent.Unit)
			assert.Equal(t, tt.maxDepth, o.MaxDepth)
			assert.Equal(t, tt.ending, o.LineEnding)
		})
	}
}
