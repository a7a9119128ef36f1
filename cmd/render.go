package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apskhem/code-builder/cli"
	"github.com/apskhem/code-builder/codebuilder"
	"github.com/apskhem/code-builder/codebuilder/gosource"
	"github.com/apskhem/code-builder/internal/comment"
	"github.com/apskhem/code-builder/internal/diff"
	"github.com/apskhem/code-builder/internal/document"
	"github.com/apskhem/code-builder/internal/telemetry"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

const (
	defaultConnectTimeout  = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	// tabWidth is the column width assumed for a tab when measuring lines.
	tabWidth = 4
)

var (
	configFile string
	flagConfig = cli.NewConfig()
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "render a document",
	Long:  "render a YAML or TOML block document to stdout, a file, or a patch against an existing file",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return Render(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

// loadConfig layers the config file under the flags the user set.
func loadConfig(cmd *cobra.Command) (*cli.Config, error) {
	path := configFile
	required := cmd.Flags().Changed("config")
	if path == "" {
		path = cli.DefaultConfigFile
	}

	cfg, err := cli.LoadFile(path, required)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = strings.TrimSpace(flagConfig.Input)
	}
	if flags.Changed("output") {
		cfg.Output = strings.TrimSpace(flagConfig.Output)
	}
	if flags.Changed("diff") {
		cfg.DiffFile = strings.TrimSpace(flagConfig.DiffFile)
	}
	if flags.Changed("lang") {
		cfg.Lang = flagConfig.Lang
	}
	if flags.Changed("indent") {
		cfg.Indent = flagConfig.Indent
	}
	if flags.Changed("indent-width") {
		cfg.IndentWidth = flagConfig.IndentWidth
	}
	if flags.Changed("tabs") {
		cfg.Tabs = flagConfig.Tabs
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = flagConfig.MaxDepth
	}
	if flags.Changed("line-ending") {
		cfg.LineEnding = flagConfig.LineEnding
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = flagConfig.MaxWidth
	}
	if flags.Changed("name") {
		cfg.AppName = flagConfig.AppName
	}
	cfg.Debug = cfg.Debug || debug

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Render runs one render: decode the input document, build and render it,
// report lint notes, optionally check and format Go, then write the result
// to the output file, a patch, or stdout.
func Render(ctx context.Context, cfg *cli.Config, stdout io.Writer) (err error) {
	logger := loggerFromContext(ctx)
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	p := newProgress(logger)

	recorder, terr := telemetry.New(cfg.AppName, defaultConnectTimeout)
	if terr != nil {
		logger.Warn("telemetry disabled", "err", terr)
	}
	defer recorder.Shutdown(defaultShutdownTimeout)

	run := recorder.Start("render")
	defer func() {
		run.NoticeError(err)
		run.End()
	}()
	run.AddAttribute("lang", cfg.Lang)

	wd, werr := os.Getwd()
	if werr != nil {
		wd = filepath.Dir(cfg.Input)
		logger.Debug("working directory unavailable, positions are relative to the input", "err", werr)
	}
	comment.EnableConsolePrinter(wd, logger)
	defer comment.WriteAll()

	done := run.Segment("decode")
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		done()
		return err
	}
	doc, err := document.Decode(cfg.Input, data)
	done()
	if err != nil {
		return err
	}
	logger.Debug("decoded document", "input", cfg.Input, "nodes", len(doc.Body))

	done = run.Segment("render")
	space, err := doc.Space(cfg.Options()...)
	if err != nil {
		done()
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	out, err := space.Render()
	done()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	target := cfg.Output
	if target == "" {
		target = "stdout"
	}
	lines := inspect(space, target, cfg.MaxWidth)
	run.AddAttribute("lines", lines)

	if cfg.Lang == cli.LangGo {
		done = run.Segment("format")
		out, err = formatGo(ctx, target, out)
		done()
		if err != nil {
			return err
		}
	}

	ending := space.Options().LineEnding
	if cfg.Lang == cli.LangGo && ending != "\n" {
		// formatted Go always uses "\n"
		out = strings.ReplaceAll(out, "\n", ending)
	}

	done = run.Segment("write")
	err = write(cfg, out, ending, stdout)
	done()
	if err != nil {
		return err
	}

	comment.Info(target, 0, fmt.Sprintf("rendered %d lines", lines))
	p.done("render complete")
	return nil
}

// inspect records a warning for every line with trailing whitespace or
// wider than maxWidth, and returns the number of rendered lines.
func inspect(space *codebuilder.Space, target string, maxWidth int) int {
	unit := space.Options().Indent.Unit
	unitWidth := runewidth.StringWidth(strings.ReplaceAll(unit, "\t", strings.Repeat(" ", tabWidth)))

	line := 0
	_ = space.Walk(func(depth int, e codebuilder.Element) error {
		switch e.Kind() {
		case codebuilder.KindBlank:
			line++
		case codebuilder.KindText:
			line++
			text := e.Text()
			if strings.TrimRight(text, " \t") != text {
				comment.Warn(target, line, "trailing whitespace")
			}
			width := runewidth.StringWidth(text)
			if text != "" {
				width += depth * unitWidth
			}
			if maxWidth > 0 && width > maxWidth {
				comment.Warn(target, line, fmt.Sprintf("line is %d columns wide, limit is %d", width, maxWidth))
			}
		}
		return nil
	})
	return line
}

func formatGo(ctx context.Context, target, src string) (string, error) {
	logger := loggerFromContext(ctx)

	f, err := gosource.Check(src)
	if err != nil {
		return "", err
	}
	summary := gosource.Summarize(f)
	logger.Debug("parsed go output", "package", summary.Package, "imports", summary.Imports,
		"funcs", summary.Funcs, "types", summary.Types, "vars", summary.Vars, "consts", summary.Consts)
	if logger.GetLevel() <= log.DebugLevel {
		if dump, err := gosource.Dump(f); err == nil {
			logger.Debug("go output structure\n" + dump)
		}
	}

	name := filepath.Base(target)
	if filepath.Ext(name) != ".go" {
		name = gosource.DefaultFileName
	}
	return gosource.Format(name, src)
}

// write sends out to its destination. Files always end with a line ending.
func write(cfg *cli.Config, out, lineEnding string, stdout io.Writer) error {
	if out != "" && !strings.HasSuffix(out, lineEnding) {
		out += lineEnding
	}

	switch {
	case cfg.DiffFile != "":
		original, err := os.ReadFile(cfg.Output)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		label, err := diff.Label(".", cfg.Output)
		if err != nil {
			return err
		}
		if err := diff.Create(cfg.DiffFile); err != nil {
			return err
		}
		if err := diff.Append(cfg.DiffFile, label, string(original), out); err != nil {
			return err
		}
		comment.Info(cfg.DiffFile, 0, "changes written", "apply with: git apply "+cfg.DiffFile)
		return nil
	case cfg.Output != "":
		return os.WriteFile(cfg.Output, []byte(out), 0644)
	default:
		_, err := io.WriteString(stdout, out)
		return err
	}
}

func init() {
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file (default "+cli.DefaultConfigFile+" when present)")
	renderCmd.Flags().StringVarP(&flagConfig.Input, "input", "i", "", "document to render (.yaml, .yml or .toml)")
	renderCmd.Flags().StringVarP(&flagConfig.Output, "output", "o", "", "write the result to this file instead of stdout")
	renderCmd.Flags().StringVar(&flagConfig.DiffFile, "diff", "", "write a patch against --output instead of overwriting it")
	renderCmd.Flags().StringVar(&flagConfig.Lang, "lang", cli.DefaultLang, "output language: text or go")
	renderCmd.Flags().StringVar(&flagConfig.Indent, "indent", "", "indentation unit")
	renderCmd.Flags().IntVar(&flagConfig.IndentWidth, "indent-width", 0, "indent with this many spaces")
	renderCmd.Flags().BoolVar(&flagConfig.Tabs, "tabs", false, "indent with tabs")
	renderCmd.Flags().IntVar(&flagConfig.MaxDepth, "max-depth", 0, "fail when blocks nest deeper than this (0 for no limit)")
	renderCmd.Flags().StringVar(&flagConfig.LineEnding, "line-ending", "", "line ending: lf or crlf")
	renderCmd.Flags().IntVar(&flagConfig.MaxWidth, "max-width", cli.DefaultMaxWidth, "warn about lines wider than this (0 to disable)")
	renderCmd.Flags().StringVar(&flagConfig.AppName, "name", cli.DefaultAppName, "application name for telemetry reporting")
	cobra.MarkFlagFilename(renderCmd.Flags(), "input", "yaml", "yml", "toml") // for file completion
	cobra.MarkFlagFilename(renderCmd.Flags(), "diff", ".diff")

	rootCmd.AddCommand(renderCmd)
}
