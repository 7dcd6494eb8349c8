package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/structkit/structkit/internal/generator"
)

// Summary writes one line per node outcome plus a totals footer, in
// visit order. Lines are truncated to the terminal width so long
// error chains don't wrap the report.
func Summary(w io.Writer, report *generator.Report) {
	width := terminalWidth()

	for _, rec := range report.Records() {
		line := fmt.Sprintf("  %-10s %s", rec.Action, rec.Path)
		if rec.Err != nil {
			line += ": " + rec.Err.Error()
		}
		line = truncate(line, width)

		switch rec.Action {
		case generator.ActionFailed:
			fmt.Fprintln(w, errorStyle.Render(line))
		case generator.ActionSkip:
			fmt.Fprintln(w, mutedStyle.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w, totals(report))
}

// totals builds the "3 created, 1 skipped, 1 failed" footer.
func totals(report *generator.Report) string {
	order := []generator.Action{
		generator.ActionWrite,
		generator.ActionAppend,
		generator.ActionRename,
		generator.ActionBackupWrite,
		generator.ActionSkip,
		generator.ActionFailed,
	}

	counts := make(map[generator.Action]int)
	for _, rec := range report.Records() {
		counts[rec.Action]++
	}

	parts := make([]string, 0, len(order))
	for _, action := range order {
		if n := counts[action]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, action))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}

// truncate caps a line at width columns, on a rune boundary so paths
// and error text with multibyte characters are never split mid-rune.
func truncate(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}

// terminalWidth reports the stdout width, falling back to 80 columns
// when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 80
}
