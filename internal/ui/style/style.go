// Package style holds the colors and glyphs pb uses in terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Level colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Circle  = "○"
)

// CandidateIcon returns the glyph for a dependency candidate in a preview:
// the chosen candidate, one below the required minimum version, or any other.
func CandidateIcon(chosen, tooOld bool) string {
	switch {
	case chosen:
		return Check
	case tooOld:
		return Cross
	default:
		return Circle
	}
}
