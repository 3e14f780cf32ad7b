package tui

import "github.com/charmbracelet/x/ansi"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// truncate cuts s to at most n display cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return ansi.Truncate(s, n, "…")
}
