package formatter

import "github.com/charmbracelet/x/ansi"

// stripANSI keeps assertions terminal-independent.
func stripANSI(s string) string {
	return ansi.Strip(s)
}
