// Package render prints engine output for a terminal, or encodes it as
// JSON or YAML for scripts.
//
// Styling goes through a lipgloss renderer bound to the destination
// writer, so piping to a file or a test buffer yields plain text.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultWidth is used when the writer is not a terminal.
const DefaultWidth = 100

var titler = cases.Title(language.English)

// Title capitalizes each word.
func Title(s string) string {
	return titler.String(s)
}

// Fit truncates s to width display cells, marking the cut with an ellipsis.
func Fit(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Pad right-pads s with spaces to width display cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w, or DefaultWidth.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return DefaultWidth
}

// Encode writes v as "json" or "yaml".
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("render: unsupported format %q", format)
}

// ─── Printer ─────────────────────────────────────────────────────────────────

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	ai      lipgloss.Style
	branch  lipgloss.Style
	levels  map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		ai:      r.NewStyle().Foreground(lipgloss.Color("141")),
		branch:  r.NewStyle().Foreground(lipgloss.Color("214")),
		levels: map[string]lipgloss.Style{
			"Low":    r.NewStyle().Foreground(lipgloss.Color("42")),
			"Medium": r.NewStyle().Foreground(lipgloss.Color("214")),
			"High":   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
	}
}

// Printer writes styled text to one destination.
type Printer struct {
	w     io.Writer
	width int
	st    styles
	err   error
}

// NewPrinter binds a Printer to w, sizing output to its terminal width.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:     w,
		width: Width(w),
		st:    newStyles(lipgloss.NewRenderer(w)),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) heading(s string) {
	p.printf("\n%s\n", p.st.heading.Render(s))
}

func (p *Printer) field(label, value string) {
	p.printf("%s %s\n", p.st.label.Render(label+":"), value)
}

func (p *Printer) bullets(items []string) {
	for _, it := range items {
		p.printf("  • %s\n", Fit(it, p.width-4))
	}
}

// level colours a complexity level; l may carry padding.
func (p *Printer) level(l string) string {
	if s, ok := p.st.levels[strings.TrimSpace(l)]; ok {
		return s.Render(l)
	}
	return l
}

func (p *Printer) rule() {
	p.printf("%s\n", p.st.muted.Render(strings.Repeat("─", min(p.width, 60))))
}
