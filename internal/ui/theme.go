package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer, cards
	SurfaceAlt string // Modals

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string // House primary
	Gold    string // Headings and the logo
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		GoldText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Gold)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Gold)).
			Bold(true),

		ActiveTab: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Cover: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Gold)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 2).
			Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		PrimaryButton: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 2),

		theme: t,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Surface lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	GoldText    lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header        lipgloss.Style
	Footer        lipgloss.Style
	Logo          lipgloss.Style
	ActiveTab     lipgloss.Style
	Tab           lipgloss.Style
	Cover         lipgloss.Style
	Card          lipgloss.Style
	Panel         lipgloss.Style
	Button        lipgloss.Style
	PrimaryButton lipgloss.Style

	theme Theme
}

// NoticeBorder returns the border color for a notice of the given kind.
func (s Styles) NoticeBorder(kind noticeKind) lipgloss.Color {
	switch kind {
	case noticeSuccess:
		return lipgloss.Color(s.theme.Success)
	case noticeWarning:
		return lipgloss.Color(s.theme.Warning)
	case noticeError:
		return lipgloss.Color(s.theme.Danger)
	default:
		return lipgloss.Color(s.theme.Info)
	}
}

// Theme definitions. Palettes follow the four house colors.

var themes = map[string]Theme{
	"Gryffindor": gryffindorTheme(),
	"Slytherin":  slytherinTheme(),
	"Ravenclaw":  ravenclawTheme(),
	"Hufflepuff": hufflepuffTheme(),
}

var themeOrder = []string{"Gryffindor", "Slytherin", "Ravenclaw", "Hufflepuff"}

// GetTheme returns a theme by name, falling back to Gryffindor.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return gryffindorTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func gryffindorTheme() Theme {
	return Theme{
		Name: "Gryffindor",

		Background: "#1a0d0d",
		Surface:    "#2a1414",
		SurfaceAlt: "#3a1c1c",

		Border:      "#5c2a2a",
		BorderFocus: "#d3a625", // gold

		Text:    "#f3e9dc",
		Muted:   "#b9a99a",
		Faint:   "#7d6b5d",
		Accent:  "#ae0001", // scarlet
		Gold:    "#eeba30",
		Success: "#7fb069",
		Warning: "#eeba30",
		Danger:  "#ff5d5d",
		Info:    "#8ecae6",
	}
}

func slytherinTheme() Theme {
	return Theme{
		Name: "Slytherin",

		Background: "#0b1410",
		Surface:    "#12211a",
		SurfaceAlt: "#1a2e24",

		Border:      "#2a4a3a",
		BorderFocus: "#aaaaaa", // silver

		Text:    "#e5ece8",
		Muted:   "#9fb3a8",
		Faint:   "#62786c",
		Accent:  "#2a623d", // green
		Gold:    "#c0c0c0",
		Success: "#5fbf7f",
		Warning: "#d6c26b",
		Danger:  "#e06c75",
		Info:    "#7fc8c8",
	}
}

func ravenclawTheme() Theme {
	return Theme{
		Name: "Ravenclaw",

		Background: "#0a0f1f",
		Surface:    "#111a33",
		SurfaceAlt: "#1a2547",

		Border:      "#2b3a66",
		BorderFocus: "#946b2d", // bronze

		Text:    "#e6ebf5",
		Muted:   "#a3aec8",
		Faint:   "#66718f",
		Accent:  "#3b5bb5", // blue
		Gold:    "#cd9b5a",
		Success: "#6fcf97",
		Warning: "#f2c94c",
		Danger:  "#eb5757",
		Info:    "#56ccf2",
	}
}

func hufflepuffTheme() Theme {
	return Theme{
		Name: "Hufflepuff",

		Background: "#14120a",
		Surface:    "#211d10",
		SurfaceAlt: "#2e2916",

		Border:      "#4d4524",
		BorderFocus: "#ecb939", // yellow

		Text:    "#f5f0e1",
		Muted:   "#bdb396",
		Faint:   "#7f775c",
		Accent:  "#ecb939", // yellow
		Gold:    "#f0c75e",
		Success: "#8fbf5f",
		Warning: "#ecb939",
		Danger:  "#e57361",
		Info:    "#86b6d6",
	}
}
