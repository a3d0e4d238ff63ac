package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Makepad-fr/itemlist/internal/model"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return utf8.RuneCountInString(stripANSI(s)) }

// MatchBar renders how many of total items a filter let through.
func MatchBar(shown, total, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	filled := width
	if total > 0 {
		filled = shown * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.Bar, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, shown, total)
}

// ItemLines formats items the way the list screen shows them.
func ItemLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		title := it.Title
		if utf8.RuneCountInString(title) > 80 {
			title = string([]rune(title)[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s Item: %s", Dim(fmt.Sprintf("%6d", it.ID)), title))
	}
	return out
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
