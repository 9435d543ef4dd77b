package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	outputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Badge styles.
var (
	brandStyle         = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	badgeRunningStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgeExternalStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	badgeStoppedStyle  = lipgloss.NewStyle().Foreground(colorDim)
	badgeBusyStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// Output styles.
var (
	stdoutTagStyle = lipgloss.NewStyle().Foreground(colorDim)
	stderrStyle    = lipgloss.NewStyle().Foreground(colorRed)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(colorDim)
)
