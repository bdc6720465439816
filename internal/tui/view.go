package tui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/model"
	"github.com/Makepad-fr/staff/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	title       = "Employees"
	loadingText = "Loading employees..."
	errorText   = "Could not load employees. Try again later."
	emptyText   = "No employees found."
)

func (m Model) View() string {
	if e, open := m.state.Modal(); open {
		return m.place(m.modalView(e))
	}

	t := ui.Current()
	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteString("\n")

	switch m.state.Status() {
	case directory.StatusLoading:
		b.WriteString("\n" + m.spinner.View() + " " + t.Muted.Render(loadingText) + "\n\n")
	case directory.StatusError:
		b.WriteString("\n" + t.Error.Render(errorText) + "\n\n")
	default:
		b.WriteString(m.searchView() + "\n")
		b.WriteString(m.listView())
		b.WriteString(m.statusLine() + "\n")
	}

	b.WriteString(m.help.View(m.helpKeys()))
	return b.String()
}

// titleBar is the header: user badge, title, unread badge.
func (m Model) titleBar() string {
	t := ui.Current()
	h := t.Header
	if m.width > 0 {
		h = h.Width(m.width)
	}

	parts := make([]string, 0, 3)
	if m.header.User != "" {
		parts = append(parts, t.Avatar.Render(model.Initials(m.header.User)))
	}
	parts = append(parts, title)
	if m.header.Unread > 0 {
		parts = append(parts, t.Icons.Bell+t.Badge.Render(fmt.Sprintf("%d", m.header.Unread)))
	}
	return h.Render(strings.Join(parts, "  "))
}

func (m Model) searchView() string {
	t := ui.Current()
	s := t.Search
	if m.width > 0 {
		s = s.Width(m.width - 2)
	}
	return s.Render(t.Icons.Search + " " + m.search.View())
}

func (m Model) statusLine() string {
	t := ui.Current()
	visible := len(m.state.Visible())
	total := len(m.state.Employees())
	if visible == total {
		return t.Muted.Render(fmt.Sprintf("%d employees", total))
	}
	return t.Muted.Render(fmt.Sprintf("%d of %d employees", visible, total))
}

func (m Model) listView() string {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return ui.Current().Muted.Render(emptyText) + "\n"
	}
	if m.height <= 0 {
		// size unknown yet: show everything
		cards := make([]string, len(visible))
		for i, e := range visible {
			cards[i] = m.cardView(e, i == m.cursor)
		}
		return strings.Join(cards, "\n") + "\n"
	}
	return m.list.View() + "\n"
}

// chromeHeight is the height of everything around the card list.
func (m Model) chromeHeight() int {
	return lipgloss.Height(m.titleBar()) +
		lipgloss.Height(m.searchView()) +
		lipgloss.Height(m.statusLine()) +
		lipgloss.Height(m.help.View(m.helpKeys()))
}

func (m Model) cardView(e model.Employee, selected bool) string {
	t := ui.Current()

	style, marker := t.Card, " "
	if selected {
		style, marker = t.CardSelected, t.Icons.Cursor
	}
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}

	chevron := t.Icons.Collapsed
	if m.state.IsExpanded(e.ID) {
		chevron = t.Icons.Expanded
	}
	rows := []string{
		marker + " " + t.Avatar.Render(model.Initials(e.Name)) + " " + t.Title.Render(e.Name) + " " + t.Muted.Render(chevron),
	}
	if m.state.IsExpanded(e.ID) {
		rows = append(rows, ui.DetailLines(e)...)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) modalView(e model.Employee) string {
	t := ui.Current()
	rows := []string{
		t.Muted.Render(t.Icons.Close + " esc"),
		"",
		t.Avatar.Render(model.Initials(e.Name)),
		t.ModalTitle.Render(e.Name),
	}
	rows = append(rows, ui.DetailLines(e)...)
	if e.Image != "" {
		rows = append(rows, t.Muted.Render(e.Image))
	}
	return t.Modal.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m Model) place(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) helpKeys() bindings {
	k := m.keys
	if _, open := m.state.Modal(); open {
		return bindings{k.Close}
	}
	switch m.state.Status() {
	case directory.StatusLoading:
		return bindings{k.Quit}
	case directory.StatusError:
		return bindings{k.Reload, k.Quit}
	}
	if m.searching {
		return bindings{key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done"))}
	}
	return bindings{k.Up, k.Down, k.Toggle, k.Open, k.Search, k.Reload, k.Quit}
}
