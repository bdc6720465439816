package tui

import (
	"context"
	"strings"

	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/metrics"
	"github.com/Makepad-fr/staff/internal/model"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// fetchedMsg carries the outcome of load number seq.
type fetchedMsg struct {
	seq  int
	list []model.Employee
	err  error
}

// Header holds the static badges shown next to the title.
type Header struct {
	User   string // initials badge; empty hides it
	Unread int    // notification badge; 0 hides it
}

// Model is the directory screen.
type Model struct {
	ctx     context.Context
	src     directory.Source
	log     *zap.Logger
	metrics *metrics.Metrics

	state *directory.State
	keys  keyMap

	header    Header
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	help      help.Model
	list      viewport.Model // rendered cards; scrolled to keep the cursor in view

	cursor int // index into state.Visible()
	width  int
	height int

	seq     int
	loadCtx context.Context
	cancel  context.CancelFunc
}

// New prepares the screen and its first load; the load itself starts from Init.
// log and m may be nil.
func New(ctx context.Context, src directory.Source, log *zap.Logger, m *metrics.Metrics) Model {
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search..."
	ti.CharLimit = 100

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	mdl := Model{
		ctx:     ctx,
		src:     src,
		log:     log.Named("tui"),
		metrics: m,
		state:   directory.NewState(),
		keys:    defaultKeys(),
		search:  ti,
		spinner: sp,
		help:    help.New(),
		list:    viewport.New(0, 0),
		seq:     1,
	}
	mdl.loadCtx, mdl.cancel = context.WithCancel(ctx)
	return mdl
}

// WithHeader sets the header badges.
func (m Model) WithHeader(h Header) Model {
	m.header = h
	return m
}

// State exposes the presentation state, mostly for tests and callers that
// want to inspect the final screen after the program exits.
func (m Model) State() *directory.State { return m.state }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetch(m.loadCtx, m.src, m.seq))
}

func fetch(ctx context.Context, src directory.Source, seq int) tea.Cmd {
	return func() tea.Msg {
		list, err := src.Fetch(ctx)
		return fetchedMsg{seq: seq, list: list, err: err}
	}
}

// reload starts a new load unless one is already in flight.
func (m Model) reload() (Model, tea.Cmd) {
	if !m.state.BeginLoad() {
		m.log.Debug("reload ignored, load in flight")
		return m, nil
	}
	m.metrics.ObserveReload()
	m.seq++
	m.cancel()
	m.loadCtx, m.cancel = context.WithCancel(m.ctx)
	m.log.Info("reload", zap.Int("seq", m.seq))
	return m, tea.Batch(m.spinner.Tick, fetch(m.loadCtx, m.src, m.seq))
}

func (m Model) quit() (Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if _, tick := msg.(spinner.TickMsg); !tick {
		next.syncList()
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-10, 10)
		m.list.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchedMsg:
		if msg.seq != m.seq {
			m.log.Debug("dropping stale load", zap.Int("seq", msg.seq), zap.Int("current", m.seq))
			return m, nil
		}
		if msg.err != nil {
			m.log.Error("load failed", zap.Error(msg.err))
			m.state.Failed(msg.err)
			return m, nil
		}
		m.log.Info("loaded", zap.Int("employees", len(msg.list)))
		m.state.Loaded(msg.list)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if _, open := m.state.Modal(); open {
		if key.Matches(msg, m.keys.Close) {
			m.state.CloseModal()
		}
		return m, nil
	}

	switch m.state.Status() {
	case directory.StatusLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	case directory.StatusError:
		switch {
		case key.Matches(msg, m.keys.Reload):
			return m.reload()
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Toggle):
		if e, ok := m.current(); ok {
			m.state.ToggleExpanded(e.ID)
		}
	case key.Matches(msg, m.keys.Open):
		if e, ok := m.current(); ok {
			m.state.OpenModal(e.ID)
		}
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Clear):
		m.setQuery("")
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyUp:
		m.move(-1)
		return m, nil
	case tea.KeyDown:
		m.move(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.Query() {
		m.state.SetQuery(m.search.Value())
		m.cursor = 0
		m.list.GotoTop()
	}
	return m, cmd
}

func (m *Model) setQuery(q string) {
	m.search.SetValue(q)
	m.state.SetQuery(q)
	m.cursor = 0
	m.list.GotoTop()
}

func (m Model) current() (model.Employee, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Employee{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.state.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncList re-renders the cards into the viewport and scrolls the least
// amount that brings the card under the cursor fully into view.
func (m *Model) syncList() {
	visible := m.state.Visible()
	cards := make([]string, len(visible))
	top, bottom, line := 0, 0, 0
	for i, e := range visible {
		cards[i] = m.cardView(e, i == m.cursor)
		h := lipgloss.Height(cards[i])
		if i == m.cursor {
			top, bottom = line, line+h
		}
		line += h
	}
	m.list.SetContent(strings.Join(cards, "\n"))

	if m.height <= 0 {
		return
	}
	m.list.Height = max(m.height-m.chromeHeight(), 1)
	if bottom > m.list.YOffset+m.list.Height {
		m.list.SetYOffset(bottom - m.list.Height)
	}
	if top < m.list.YOffset {
		m.list.SetYOffset(top)
	}
}
