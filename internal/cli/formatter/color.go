package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateStyle returns the lipgloss style for a recording state: green while
// actively recording, yellow once the tracker has gone semi-active.
func StateStyle(state domain.RecordingState) lipgloss.Style {
	switch state {
	case domain.StateRunning:
		return StyleGreen
	case domain.StateAutomatic:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StateIndicator returns a colored state marker such as "● RECORDING".
func StateIndicator(state domain.RecordingState) string {
	switch state {
	case domain.StateRunning:
		return StyleGreen.Render("● RECORDING")
	case domain.StateAutomatic:
		return StyleYellow.Render("● SEMI-ACTIVE")
	default:
		return StyleDim.Render("● STOPPED")
	}
}

// StatusCell colors a weekly submission status for the per-user grid.
func StatusCell(status domain.SubmissionStatus) string {
	switch status {
	case domain.SubmissionNominal:
		return StyleGreen.Render(string(status))
	case domain.SubmissionUnder:
		return StyleYellow.Render(string(status))
	case domain.SubmissionOver:
		return StylePurple.Render(string(status))
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
