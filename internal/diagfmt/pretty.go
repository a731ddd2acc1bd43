// Package diagfmt renders a diag.Bag as human-readable text, in the style
// of the language's original diagnostic output: a bold header naming the
// stable code, a blue source snippet, and a caret underline pinned to the
// exact span (or operator column, when the diagnostic recorded one).
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mirc/internal/diag"
	"mirc/internal/source"
)

// Options controls rendering.
type Options struct {
	Color bool // false forces plain text, e.g. when stdout isn't a TTY
}

var (
	errorColor     = color.New(color.FgRed, color.Bold)
	locationColor  = color.New(color.FgRed)
	lineNumColor   = color.New(color.FgBlue)
	snippetColor   = color.New(color.FgBlue)
	underlineColor = color.New(color.FgGreen, color.Bold)
	siteColor      = color.New(color.FgYellow)
)

// Pretty writes every diagnostic in bag, in report order, to w.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts Options) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printDiagnostic(w, d, file)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, file *source.File) {
	tag := errorColor.Sprintf("error[%s]", d.Code.String())
	fmt.Fprintf(w, "%s: %s\n", tag, d.Message)

	if d.HasPos {
		printSite(w, file, d.Primary, "")
	}
	for _, site := range d.Sites {
		printSite(w, file, site.Pos, site.Caption)
	}
}

func printSite(w io.Writer, file *source.File, pos source.Position, caption string) {
	loc := fmt.Sprintf("%s:%s", file.Path, pos.String())
	if caption != "" {
		fmt.Fprintf(w, "  %s %s\n", siteColor.Sprint("note:"), caption)
	}
	fmt.Fprintf(w, "  --> %s\n", locationColor.Sprint(loc))

	lineNum := pos.Line + 1
	gutter := fmt.Sprintf("%d", lineNum)
	fmt.Fprintf(w, "%s | %s\n", lineNumColor.Sprint(gutter), snippetColor.Sprint(file.Line(pos.Line)))

	underline := buildUnderline(pos)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(w, "%s | %s\n", pad, underlineColor.Sprint(underline))
}

// buildUnderline draws spaces up to StartCol then an underline covering the
// span: '~' for each column but the last, which gets a single '^'. When the
// diagnostic pinned an operator column, the underline collapses to a lone
// '^' at that column instead of the whole span.
func buildUnderline(pos source.Position) string {
	col := pos.StartCol
	width := pos.EndCol - pos.StartCol
	if pos.HasOpCol() {
		col = pos.OpCol
		width = 1
	}
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", col))
	for i := 0; i < width; i++ {
		if i == width-1 {
			b.WriteByte('^')
		} else {
			b.WriteByte('~')
		}
	}
	return b.String()
}
