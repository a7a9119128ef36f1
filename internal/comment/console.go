package comment

import (
	"strings"

	"github.com/charmbracelet/log"
)

type ConsolePrinter struct {
	appRoot  string
	logger   *log.Logger
	comments []note
}

type note struct {
	header string
	text   string
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

// EnableConsolePrinter starts collecting notes. Paths inside
// applicationPath are shown relative to it.
func EnableConsolePrinter(applicationPath string, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	printer = &ConsolePrinter{
		appRoot: applicationPath,
		logger:  logger,
	}
}

// Info records an informational note about line of filename.
func Info(filename string, line int, message string, additionalInfo ...string) {
	printer.Add(InfoHeader, filename, line, message, additionalInfo...)
}

// Warn records a warning about line of filename.
func Warn(filename string, line int, message string, additionalInfo ...string) {
	printer.Add(WarnHeader, filename, line, message, additionalInfo...)
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

// Add appends a new note to the printer.
// The message is the main note, and additionalInfo is a list of optional
// notes that will be printed on new lines below the main one.
func (p *ConsolePrinter) Add(header, filename string, line int, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	pos := getPosition(filename, line, p.appRoot)

	b := strings.Builder{}
	if pos != "" {
		b.WriteString(pos)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.comments = append(p.comments, note{header: header, text: b.String()})
}

// Len reports how many notes are waiting to be flushed.
func (p *ConsolePrinter) Len() int {
	if p == nil {
		return 0
	}
	return len(p.comments)
}

// Flush logs all collected notes and clears them.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	for _, c := range p.comments {
		if c.header == WarnHeader {
			p.logger.Warn(c.text)
		} else {
			p.logger.Info(c.text)
		}
	}
	p.comments = []note{}
}
