package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/programme-lv/scoreboard/board"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	firstStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ae60")).Bold(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	pendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1c40f"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	medalStyle  = map[board.MedalTier]lipgloss.Style{
		board.MedalGold:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f1c40f")),
		board.MedalSilver: lipgloss.NewStyle().Foreground(lipgloss.Color("#bdc3c7")),
		board.MedalBronze: lipgloss.NewStyle().Foreground(lipgloss.Color("#cd7f32")),
	}
)

func (m model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n %s loading contest feed from %s...\n", m.loadSpinner.View(), m.dir)
	case stateError:
		return fmt.Sprintf("\n failed to load feed: %v\n\n press any key to exit\n", m.err)
	case stateBoard:
		return m.viewBoard()
	}
	return ""
}

func (m model) viewBoard() string {
	c := m.contest.Contest
	groupID := m.groups[m.groupIdx]

	var b strings.Builder

	b.WriteString(headerStyle.Render(c.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  [group: %s]", groupID)))
	b.WriteString("\n\n")

	replaySeconds := c.Duration * int64(m.width) / board.FullWidth
	b.WriteString(fmt.Sprintf("replay %s / %s  ",
		formatClock(replaySeconds), formatClock(c.Duration)))
	b.WriteString(m.replayBar.ViewAs(float64(m.width) / float64(board.FullWidth)))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.nameFilter.View())
	} else {
		b.WriteString(dimStyle.Render("←/→ scrub time · g group · / filter · q quit"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewHeaderRow())
	filter := strings.ToLower(m.nameFilter.Value())
	for _, t := range m.rank.Teams {
		if filter != "" && !strings.Contains(strings.ToLower(t.Name), filter) {
			continue
		}
		b.WriteString(m.viewTeamRow(groupID, t))
	}

	return b.String()
}

func (m model) viewHeaderRow() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %-28s %6s %8s", "#", "team", "solved", "penalty")))
	for _, p := range m.rank.Problems {
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %4s", p.Label)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) viewTeamRow(groupID string, t *board.Team) string {
	var b strings.Builder

	name := t.Name
	if len(name) > 28 {
		name = name[:28]
	}
	label := fmt.Sprintf("%4d  %-28s %6d %8d", t.Rank, name, t.SolvedCount, t.Penalty/60)

	c := m.contest.Contest
	if tier, ok := c.AwardTier(groupID, t.Rank); ok && c.IsEnableAwards(groupID) {
		if style, ok := medalStyle[tier]; ok {
			label = style.Render(label)
		}
	}
	b.WriteString(label)

	for _, st := range t.ProblemStatistics {
		b.WriteString("  ")
		b.WriteString(formatCell(st))
	}
	b.WriteString("\n")
	return b.String()
}

// formatCell renders one team-problem cell the usual scoreboard way:
// "+" for a first-try solve, "+n" after n failed tries, "-n" for n
// rejected attempts, "?" with pending submissions.
func formatCell(st *board.TeamProblemStatistics) string {
	switch {
	case st.IsSolved && st.FailedCount == 0:
		if st.IsFirstSolved {
			return firstStyle.Render(fmt.Sprintf("%4s", "+"))
		}
		return solvedStyle.Render(fmt.Sprintf("%4s", "+"))
	case st.IsSolved:
		s := fmt.Sprintf("%4s", fmt.Sprintf("+%d", st.FailedCount))
		if st.IsFirstSolved {
			return firstStyle.Render(s)
		}
		return solvedStyle.Render(s)
	case st.PendingCount > 0:
		return pendStyle.Render(fmt.Sprintf("%4s", "?"))
	case st.FailedCount > 0:
		return failedStyle.Render(fmt.Sprintf("%4s", fmt.Sprintf("-%d", st.FailedCount)))
	}
	return dimStyle.Render(fmt.Sprintf("%4s", "."))
}

func formatClock(seconds int64) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
