package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/apskhem/code-builder/codebuilder"
	"github.com/apskhem/code-builder/internal/diff"
	"github.com/apskhem/code-builder/internal/document"
)

// Default Config Values
const (
	DefaultConfigFile = ".codebuilder.toml"
	DefaultLang       = LangText
	DefaultAppName    = "codebuilder"
	DefaultMaxWidth   = 0

	LangText = "text"
	LangGo   = "go"
)

// Config holds every setting of a render run. Zero values mean "not set":
// document settings are only overridden by fields that carry a value.
type Config struct {
	Debug       bool   `toml:"debug"`
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	DiffFile    string `toml:"diff"`
	Lang        string `toml:"lang"`
	Indent      string `toml:"indent"`
	IndentWidth int    `toml:"indent_width"`
	Tabs        bool   `toml:"tabs"`
	MaxDepth    int    `toml:"max_depth"`
	LineEnding  string `toml:"line_ending"`
	MaxWidth    int    `toml:"max_width"`
	AppName     string `toml:"app_name"`
}

func setConfigValue(input *string, defaultValue string) string {
	if input != nil && *input != "" {
		return strings.TrimSpace(*input)
	}
	return defaultValue
}

// NewConfig returns a config holding the defaults.
func NewConfig() *Config {
	return &Config{
		Lang:     DefaultLang,
		AppName:  DefaultAppName,
		MaxWidth: DefaultMaxWidth,
	}
}

// LoadFile reads a TOML config file on top of the defaults. A missing file
// is only an error when required is true.
func LoadFile(path string, required bool) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.Input = setConfigValue(&cfg.Input, "")
	cfg.Output = setConfigValue(&cfg.Output, "")
	cfg.DiffFile = setConfigValue(&cfg.DiffFile, "")
	cfg.Lang = setConfigValue(&cfg.Lang, DefaultLang)
	cfg.AppName = setConfigValue(&cfg.AppName, DefaultAppName)
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (cfg *Config) Validate() error {
	if cfg.Input == "" {
		return errors.New("input is required")
	}
	if _, err := os.Stat(cfg.Input); err != nil {
		return fmt.Errorf("input \"%s\" is invalid: %v", cfg.Input, err)
	}

	switch cfg.Lang {
	case LangText, LangGo:
	default:
		return fmt.Errorf("lang must be %q or %q, got %q", LangText, LangGo, cfg.Lang)
	}

	if cfg.IndentWidth < 0 || cfg.MaxDepth < 0 || cfg.MaxWidth < 0 {
		return errors.New("indent width, max depth and max width must not be negative")
	}

	if cfg.LineEnding != "" {
		if _, err := document.ParseLineEnding(cfg.LineEnding); err != nil {
			return err
		}
	}

	if cfg.DiffFile != "" {
		if cfg.Output == "" {
			return errors.New("diff requires output to name the file the patch applies to")
		}
		if err := diff.Validate(cfg.DiffFile); err != nil {
			return err
		}
	}
	return nil
}

// Options returns the rendering options set in the config. They are meant
// to be applied after the document's own options. Lang go forces tabs.
func (cfg *Config) Options() []codebuilder.Option {
	opts := []codebuilder.Option{}
	switch {
	case cfg.Tabs || cfg.Lang == LangGo:
		opts = append(opts, codebuilder.WithTabs())
	case cfg.IndentWidth > 0:
		opts = append(opts, codebuilder.WithIndentChar(' ', cfg.IndentWidth))
	case cfg.Indent != "":
		opts = append(opts, codebuilder.WithIndent(cfg.Indent))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, codebuilder.WithMaxDepth(cfg.MaxDepth))
	}
	if ending, err := document.ParseLineEnding(cfg.LineEnding); err == nil {
		opts = append(opts, codebuilder.WithLineEnding(ending))
	}
	return opts
}
