// tui.go
package main

import (
	"sort"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/programme-lv/scoreboard/board"
	"github.com/programme-lv/scoreboard/feed"
)

type state int

const (
	stateLoading state = iota
	stateBoard
	stateError
)

// widthStep is how far one left/right keypress scrubs through the
// replay, in permyriad of the contest duration.
const widthStep = 250

type model struct {
	state state
	dir   string

	loadSpinner spinner.Model
	err         error

	contest *feed.Contest
	groups  []string

	width      int // permyriad replay position
	groupIdx   int
	nameFilter textinput.Model
	filtering  bool

	replayBar progress.Model

	rank *board.Rank
}

type loadedMsg struct {
	contest *feed.Contest
}

type loadFailedMsg struct {
	err error
}

func initialModel(dir string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	ti := textinput.New()
	ti.Placeholder = "team name"
	ti.CharLimit = 32
	ti.Width = 32
	ti.Prompt = "/"

	return model{
		state:       stateLoading,
		dir:         dir,
		loadSpinner: s,
		width:       board.FullWidth,
		nameFilter:  ti,
		replayBar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadSpinner.Tick, loadFeed(m.dir))
}

func loadFeed(dir string) tea.Cmd {
	return func() tea.Msg {
		contest, err := feed.Load(dir)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{contest: contest}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.state = stateBoard
		m.contest = msg.contest
		m.groups = groupCycle(msg.contest.Contest)
		m.rebuild()
		return m, nil
	case loadFailedMsg:
		m.state = stateError
		m.err = msg.err
		return m, nil
	}

	switch m.state {
	case stateLoading:
		var cmd tea.Cmd
		m.loadSpinner, cmd = m.loadSpinner.Update(msg)
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, cmd
	case stateBoard:
		return m.updateBoard(msg)
	case stateError:
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "enter", "esc":
			m.filtering = false
			m.nameFilter.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.nameFilter, cmd = m.nameFilter.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.width -= widthStep
		if m.width < 0 {
			m.width = 0
		}
		m.rebuild()
	case "right", "l":
		m.width += widthStep
		if m.width > board.FullWidth {
			m.width = board.FullWidth
		}
		m.rebuild()
	case "g":
		m.groupIdx = (m.groupIdx + 1) % len(m.groups)
		m.rebuild()
	case "/":
		m.filtering = true
		m.nameFilter.Focus()
	}
	return m, nil
}

// rebuild constructs a fresh Rank for the current group and replay
// position. The engine copies its inputs, so scrubbing back and forth
// never corrupts the loaded feed.
func (m *model) rebuild() {
	groupID := m.groups[m.groupIdx]
	teams := []*board.Team{}
	for _, t := range m.contest.Teams {
		if t.InGroup(groupID) {
			teams = append(teams, t)
		}
	}

	rank := board.NewRank(m.contest.Contest, teams, m.contest.Submissions)
	rank.Options.SetWidth(m.width, m.contest.Contest)
	rank.Options.EnableAnimation = true
	m.rank = rank.Build()
}

func groupCycle(c *board.Contest) []string {
	ids := []string{}
	for id := range c.Groups {
		if id != board.GroupAll {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return append([]string{board.GroupAll}, ids...)
}
