// Package output renders command results for terminals, scripts, and
// machine consumers. The auto mode styles output on a TTY and falls back
// to markdown when piped.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/tabread/pkg/tabledata"
)

// Mode selects the render format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeCSV      Mode = "csv"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. An empty or unknown mode behaves as auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: defaultStyles()}
}

// EffectiveMode resolves auto against the output destination: styled text
// on a terminal, markdown when piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Println writes a plain line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Header writes a section heading in the effective mode's style.
func (r *Renderer) Header(text string) {
	if r.EffectiveMode() == ModeText {
		_, _ = fmt.Fprintln(r.out, r.styles.Header.Render(text))
		return
	}
	_, _ = fmt.Fprintln(r.out, "## "+text)
}

// Muted writes de-emphasized text.
func (r *Renderer) Muted(text string) {
	if r.EffectiveMode() == ModeText {
		_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render(text))
		return
	}
	_, _ = fmt.Fprintln(r.out, text)
}

// Errorf writes an error line to the error stream.
func (r *Renderer) Errorf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if r.EffectiveMode() == ModeText {
		msg = r.styles.Error.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// tableDoc is the machine-readable shape of a rendered table.
type tableDoc struct {
	Table   string   `json:"table" yaml:"table"`
	Headers []string `json:"headers" yaml:"headers"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

func docFor(t *tabledata.Table) tableDoc {
	doc := tableDoc{Table: t.Name, Headers: t.Headers, Rows: make([][]any, t.NumRows())}
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v.Any()
		}
		doc.Rows[i] = vals
	}
	return doc
}

// Table renders a loaded table in the effective mode.
func (r *Renderer) Table(t *tabledata.Table) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(docFor(t))
	case ModeYAML:
		enc := yaml.NewEncoder(r.out)
		defer func() { _ = enc.Close() }()
		return enc.Encode(docFor(t))
	case ModeCSV:
		_, _ = fmt.Fprintln(r.out, r.buildTable(t).RenderCSV())
		return nil
	case ModeMarkdown:
		_, _ = fmt.Fprintln(r.out, "## "+t.Name)
		_, _ = fmt.Fprintln(r.out, r.buildTable(t).RenderMarkdown())
		return nil
	default:
		r.Header(t.Name)
		_, _ = fmt.Fprintln(r.out, r.buildTable(t).Render())
		_, _ = fmt.Fprintf(r.out, "(%d rows)\n", t.NumRows())
		return nil
	}
}

func (r *Renderer) buildTable(t *tabledata.Table) table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	w.AppendHeader(header)

	for i := 0; i < t.NumRows(); i++ {
		cells := t.Row(i)
		row := make(table.Row, len(cells))
		for j, v := range cells {
			row[j] = v.String()
		}
		w.AppendRow(row)
	}
	return w
}
