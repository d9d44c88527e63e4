package http

import (
	"net/http"
	"strconv"

	"github.com/programme-lv/scoreboard/board"
	"github.com/programme-lv/scoreboard/httpjson"
	"github.com/programme-lv/scoreboard/logger"
)

type ScoreboardCell struct {
	ProblemID string `json:"problem_id"`

	Submitted   bool  `json:"submitted"`
	Solved      bool  `json:"solved,omitempty"`
	FirstSolved bool  `json:"first_solved,omitempty"`
	SolvedAt    int64 `json:"solved_at,omitempty"`

	FailedCount  int `json:"failed_count,omitempty"`
	PendingCount int `json:"pending_count,omitempty"`
	IgnoreCount  int `json:"ignore_count,omitempty"`
}

type ScoreboardRow struct {
	Rank    int `json:"rank"`
	OrgRank int `json:"org_rank,omitempty"`

	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`

	SolvedCount int   `json:"solved_count"`
	Penalty     int64 `json:"penalty"`

	Medal string `json:"medal,omitempty"`

	Cells []ScoreboardCell `json:"cells"`
}

type Scoreboard struct {
	Group string `json:"group"`
	Width int    `json:"width"`

	Rows []ScoreboardRow `json:"rows"`

	// TeamsBySolved is the solved-count histogram over the rows.
	TeamsBySolved []int `json:"teams_by_solved"`
}

// getScoreboard builds a fresh Rank per request: the engine instance is
// single-owner, so concurrent requests each get their own isolated
// working copies.
func (s *HttpServer) getScoreboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	snap := s.currentSnapshot()
	if snap == nil {
		httpjson.HandleError(log, w, errContestNotLoaded())
		return
	}
	contest := snap.contest.Contest

	groupID := r.URL.Query().Get("group")
	if groupID == "" {
		groupID = board.GroupAll
	}
	if _, ok := contest.Groups[groupID]; !ok {
		httpjson.HandleError(log, w, errGroupNotFound(groupID))
		return
	}

	width, err := parseWidth(r.URL.Query().Get("width"))
	if err != nil {
		httpjson.HandleError(log, w, errInvalidWidth())
		return
	}

	// Group views rank only the group's teams against each other.
	// Submissions by excluded teams then reference unknown team ids,
	// which the engine skips by design.
	teams := []*board.Team{}
	for _, t := range snap.contest.Teams {
		if t.InGroup(groupID) {
			teams = append(teams, t)
		}
	}

	rank := board.NewRank(contest, teams, snap.contest.Submissions)
	if width >= 0 {
		rank.Options.SetWidth(width, contest)
	}
	rank.Build()

	resp := Scoreboard{
		Group:         groupID,
		Width:         effectiveWidth(width),
		TeamsBySolved: rank.Statistics.TeamsBySolved,
	}
	for _, t := range rank.Teams {
		resp.Rows = append(resp.Rows, mapScoreboardRow(contest, groupID, t))
	}

	httpjson.WriteSuccessJson(w, resp)
}

// parseWidth returns -1 when no width was requested.
func parseWidth(raw string) (int, error) {
	if raw == "" {
		return -1, nil
	}
	width, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if width < 0 || width > board.FullWidth {
		return 0, strconv.ErrRange
	}
	return width, nil
}

func effectiveWidth(width int) int {
	if width < 0 {
		return board.FullWidth
	}
	return width
}

func mapScoreboardRow(c *board.Contest, groupID string, t *board.Team) ScoreboardRow {
	row := ScoreboardRow{
		Rank:         t.Rank,
		OrgRank:      t.OrgRank,
		TeamID:       t.ID,
		Name:         t.Name,
		Organization: t.Organization,
		SolvedCount:  t.SolvedCount,
		Penalty:      t.Penalty,
	}
	if c.IsEnableAwards(groupID) {
		if tier, ok := c.AwardTier(groupID, t.Rank); ok {
			row.Medal = string(tier)
		}
	}
	for _, st := range t.ProblemStatistics {
		cell := ScoreboardCell{
			ProblemID: st.Problem.ID,
			Submitted: st.IsSubmitted,
		}
		if c.ShowCorrect {
			cell.Solved = st.IsSolved
			cell.FirstSolved = st.IsFirstSolved
			cell.SolvedAt = st.SolvedTimestamp
		}
		if c.ShowIncorrect {
			cell.FailedCount = st.FailedCount
		}
		if c.ShowPending {
			cell.PendingCount = st.PendingCount
		}
		cell.IgnoreCount = st.IgnoreCount
		row.Cells = append(row.Cells, cell)
	}
	return row
}
