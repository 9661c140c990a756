// Package render formats snippet results for a terminal.
// It holds no logic beyond layout and color.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/matsen/devvault/internal/snippet"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ANSI palette indexes.
const (
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	cyan    = lipgloss.Color("6")
	magenta = lipgloss.Color("13")
)

const banner = `
  ____             __     __          _ _
 |  _ \  _____   __\ \   / /_ _ _   _| | |_
 | | | |/ _ \ \ / / \ \ / / _` + "`" + ` | | | | | __|
 | |_| |  __/\ V /   \ V / (_| | |_| | | |_
 |____/ \___| \_/     \_/ \__,_|\__,_|_|\__|
`

// Printer writes human-readable output.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer

	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	key     lipgloss.Style
	tag     lipgloss.Style
}

// NewPrinter returns a Printer writing to w. Colors are emitted only when color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:       w,
		r:       r,
		success: r.NewStyle().Foreground(green).Bold(true),
		failure: r.NewStyle().Foreground(red).Bold(true),
		info:    r.NewStyle().Foreground(yellow),
		key:     r.NewStyle().Foreground(cyan),
		tag:     r.NewStyle().Foreground(blue),
	}
}

// Stdout returns a Printer on standard output. mode is "always", "never" or
// "auto"; auto colors only a terminal, and NO_COLOR disables it.
func Stdout(mode string) *Printer {
	var color bool
	switch mode {
	case "always":
		color = true
	case "never":
	default:
		color = isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == ""
	}
	if color {
		return NewPrinter(colorable.NewColorable(os.Stdout), true)
	}
	return NewPrinter(os.Stdout, false)
}

// Banner prints the program banner and tagline.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.r.NewStyle().Foreground(magenta).Bold(true).Render(banner))
	fmt.Fprintln(p.w, p.r.NewStyle().Italic(true).Faint(true).Render(">> The Developer's External Memory <<"))
	fmt.Fprintln(p.w, strings.Repeat("-", 50))
}

// Success prints a success line: "✅ Success! <msg>".
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.success.Render("✅ Success!"), fmt.Sprintf(format, args...))
}

// Error prints a user-facing failure line that is not a fatal error.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.failure.Render("❌ Error:"), fmt.Sprintf(format, args...))
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.info.Render("🔍 Info:"), fmt.Sprintf(format, args...))
}

// Removed prints a deletion confirmation.
func (p *Printer) Removed(key string) {
	fmt.Fprintf(p.w, "%s Deleted snippet: %s\n", p.failure.Render("🗑️ Removed:"), p.key.Render(key))
}

// Key styles a snippet key for inline use.
func (p *Printer) Key(key string) string {
	return p.key.Render(key)
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Table prints snippets as a table with Key, Description, Command and Tags columns.
// An empty collection prints "No snippets found."
func (p *Printer) Table(c snippet.Collection) {
	if len(c) == 0 {
		fmt.Fprintln(p.w, p.info.Render("No snippets found."))
		return
	}

	cell := p.r.NewStyle().Padding(0, 1)
	columns := []lipgloss.Style{
		cell.Foreground(cyan),
		cell,
		cell.Foreground(green),
		cell.Foreground(blue),
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.r.NewStyle()).
		Headers("Key", "Description", "Command", "Tags").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return columns[col]
		})
	for _, s := range c {
		t.Row(s.Key, oneLine(s.Description), oneLine(s.Command), strings.Join(s.Tags, ", "))
	}
	fmt.Fprintln(p.w, t.Render())
}

// KeyValue prints a two-column list, e.g. tag counts.
func (p *Printer) KeyValue(pairs [][2]string) {
	w := 0
	for _, kv := range pairs {
		if n := lipgloss.Width(kv[0]); n > w {
			w = n
		}
	}
	for _, kv := range pairs {
		pad := strings.Repeat(" ", w-lipgloss.Width(kv[0]))
		fmt.Fprintf(p.w, "%s%s  %s\n", p.tag.Render(kv[0]), pad, kv[1])
	}
}

// oneLine keeps multi-line commands from breaking the table layout.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ⏎ ", "\n", " ⏎ ").Replace(s)
}
