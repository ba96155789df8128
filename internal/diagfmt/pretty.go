package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nixel/internal/diag"
	"nixel/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	gutterColor  = color.New(color.FgHiBlack)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	paint := func(c *color.Color, s string) string {
		if !opts.Color {
			return s
		}
		return c.Sprint(s)
	}

	start, _ := fs.Resolve(d.Primary)
	head := fmt.Sprintf("%s:%d:%d: %s %s: %s",
		formatPath(fs, d.Primary.File, opts.PathMode),
		start.Line, start.Col,
		paint(severityColor(d.Severity), d.Severity.String()),
		d.Code,
		d.Message,
	)
	fmt.Fprintln(w, head)

	if opts.Context >= 0 {
		writeContext(w, fs, d.Primary, d.Severity, opts, paint)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				paint(noteColor, "note:"),
				formatPath(fs, n.Span.File, opts.PathMode),
				nStart.Line, nStart.Col, n.Msg)
		}
	}
}

// writeContext печатает проблемную строку с ^~~~ подчёркиванием.
// Ширина подчёркивания считается в экранных колонках, не в байтах,
// иначе табы и широкие руны уводят каретку.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, opts PrettyOpts, paint func(*color.Color, string) string) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)

	first := start.Line
	if ctx := uint32(opts.Context); ctx > 0 && first > ctx {
		first -= ctx
	} else if ctx > 0 {
		first = 1
	}
	for line := first; line < start.Line; line++ {
		fmt.Fprintf(w, "%s %s\n", paint(gutterColor, fmt.Sprintf("%5d |", line)), f.GetLine(line))
	}

	lineText := f.GetLine(start.Line)
	fmt.Fprintf(w, "%s %s\n", paint(gutterColor, fmt.Sprintf("%5d |", start.Line)), lineText)

	// байтовые колонки -> экранные
	startCol := int(start.Col) - 1
	if startCol > len(lineText) {
		startCol = len(lineText)
	}
	endCol := len(lineText)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol < startCol {
		endCol = startCol
	}
	pad := runewidth.StringWidth(lineText[:startCol])
	width := runewidth.StringWidth(lineText[startCol:endCol])
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n",
		paint(gutterColor, "      |"),
		strings.Repeat(" ", pad),
		paint(severityColor(sev), marker))
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
