package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Icons stand in for the card glyphs.
type Icons struct {
	Work, Calendar, Phone, Search string
	Collapsed, Expanded, Close     string
	Cursor, Bell                   string
}

// Theme bundles palette + icons. All renderers pull from `current`.
type Theme struct {
	Name string

	Header       lipgloss.Style
	Avatar       lipgloss.Style
	Badge        lipgloss.Style
	Search       lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Title        lipgloss.Style
	Info         lipgloss.Style
	Muted        lipgloss.Style
	Accent       lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	Help         lipgloss.Style
	Frame        lipgloss.Style

	Icons Icons
}

// Brand palette.
var (
	bluePrimary = lipgloss.Color("#0500FF")
	black       = lipgloss.Color("#1C1C1C")
	gray20      = lipgloss.Color("#9E9E9E")
	gray10      = lipgloss.Color("#F2F2F2")
	white       = lipgloss.Color("#FFFFFF")
	red         = lipgloss.Color("9")
	green       = lipgloss.Color("42")
)

var current = classic()

// SetTheme switches the palette: classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(gray10).
		Padding(0, 1)
	return Theme{
		Name:         "classic",
		Header:       lipgloss.NewStyle().Bold(true).Foreground(white).Background(bluePrimary).Padding(0, 2),
		Avatar:       lipgloss.NewStyle().Bold(true).Foreground(white).Background(gray20).Padding(0, 1),
		Badge:        lipgloss.NewStyle().Bold(true).Foreground(white).Background(red).Padding(0, 1),
		Search:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray20).Padding(0, 1),
		Card:         card,
		CardSelected: card.BorderForeground(bluePrimary),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(black),
		Info:         lipgloss.NewStyle().Foreground(gray20),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(bluePrimary),
		Success:      lipgloss.NewStyle().Foreground(green),
		Error:        lipgloss.NewStyle().Foreground(red).Bold(true),
		Modal:        lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(bluePrimary).Padding(1, 3),
		ModalTitle:   lipgloss.NewStyle().Bold(true).Foreground(black),
		Help:         lipgloss.NewStyle().Faint(true),
		Frame:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		Icons: Icons{
			Work: "⚒", Calendar: "◷", Phone: "☎", Search: "⌕",
			Collapsed: "▾", Expanded: "▴", Close: "✕", Cursor: "›", Bell: "✉",
		},
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	magenta := lipgloss.Color("13")
	cyan := lipgloss.Color("14")
	t.Header = t.Header.Background(magenta)
	t.CardSelected = t.Card.BorderForeground(cyan)
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(cyan)
	t.Accent = lipgloss.NewStyle().Foreground(magenta)
	t.Modal = t.Modal.BorderForeground(magenta)
	t.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(cyan)
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	card := plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
	return Theme{
		Name:         "mono",
		Header:       plain.Bold(true),
		Avatar:       plain,
		Badge:        plain,
		Search:       plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Card:         card,
		CardSelected: card.Border(lipgloss.ThickBorder()),
		Title:        plain.Bold(true),
		Info:         plain,
		Muted:        plain,
		Accent:       plain,
		Success:      plain,
		Error:        plain,
		Modal:        plain.Border(lipgloss.DoubleBorder()).Padding(1, 3),
		ModalTitle:   plain.Bold(true),
		Help:         plain,
		Frame:        plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Icons: Icons{
			Work: "job:", Calendar: "since:", Phone: "tel:", Search: "/",
			Collapsed: "v", Expanded: "^", Close: "x", Cursor: ">", Bell: "unread:",
		},
	}
}
