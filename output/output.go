package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled messages to a writer. It is safe for concurrent use.
type Printer struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// New creates a printer writing to w (os.Stdout when nil).
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// SetVerbose enables or disables verbose output.
func (p *Printer) SetVerbose(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verbose = v
}

// IsVerbose reports whether verbose output is enabled.
func (p *Printer) IsVerbose() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verbose
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Success prints a completed operation.
func (p *Printer) Success(msg string) {
	p.println(successStyle.Render("✔ " + msg))
}

// Error prints a failure that needs user attention.
func (p *Printer) Error(msg string) {
	p.println(errorStyle.Render("✖ " + msg))
}

// Info prints a status update.
func (p *Printer) Info(msg string) {
	p.println(infoStyle.Render("ℹ  " + msg))
}

// Step prints an indented sub-item.
func (p *Printer) Step(msg string) {
	p.println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only in verbose mode.
func (p *Printer) Verbose(msg string) {
	if p.IsVerbose() {
		p.println(stepStyle.Render("… " + msg))
	}
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}

var (
	defaultMu      sync.RWMutex
	defaultPrinter = New(os.Stdout)
)

// Default returns the printer used by the package-level functions.
func Default() *Printer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPrinter
}

// SetDefault replaces the package-level printer and returns the previous one.
func SetDefault(p *Printer) *Printer {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultPrinter
	defaultPrinter = p
	return prev
}

// SetVerbose toggles verbose output on the default printer.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) { Default().SetVerbose(v) }

// Success prints to the default printer.
func Success(msg string) { Default().Success(msg) }

// Error prints to the default printer.
func Error(msg string) { Default().Error(msg) }

// Info prints to the default printer.
func Info(msg string) { Default().Info(msg) }

// Step prints to the default printer.
func Step(msg string) { Default().Step(msg) }

// Verbose prints to the default printer when verbose mode is enabled.
func Verbose(msg string) { Default().Verbose(msg) }
