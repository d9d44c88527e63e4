package http

import (
	"net/http"

	"github.com/programme-lv/scoreboard/board"
	"github.com/programme-lv/scoreboard/httpjson"
	"github.com/programme-lv/scoreboard/logger"
)

type SolverInfo struct {
	TeamID    string `json:"team_id"`
	Timestamp int64  `json:"timestamp"`
}

type ProblemStats struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`

	SubmittedNum int `json:"submitted_num"`
	AcceptedNum  int `json:"accepted_num"`
	RejectedNum  int `json:"rejected_num"`
	PendingNum   int `json:"pending_num"`
	IgnoreNum    int `json:"ignore_num"`
	AttemptedNum int `json:"attempted_num"`

	FirstSolvedBy []SolverInfo `json:"first_solved_by,omitempty"`
	LastSolvedBy  *SolverInfo  `json:"last_solved_by,omitempty"`
}

func (s *HttpServer) getProblems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	snap := s.currentSnapshot()
	if snap == nil {
		httpjson.HandleError(log, w, errContestNotLoaded())
		return
	}

	width, err := parseWidth(r.URL.Query().Get("width"))
	if err != nil {
		httpjson.HandleError(log, w, errInvalidWidth())
		return
	}

	rank := board.NewRank(snap.contest.Contest, snap.contest.Teams, snap.contest.Submissions)
	if width >= 0 {
		rank.Options.SetWidth(width, snap.contest.Contest)
	}
	rank.Build()

	stats := []ProblemStats{}
	for _, p := range rank.Problems {
		ps := ProblemStats{
			ID:           p.ID,
			Label:        p.Label,
			Color:        p.Color,
			SubmittedNum: p.Statistics.SubmittedNum,
			AcceptedNum:  p.Statistics.AcceptedNum,
			RejectedNum:  p.Statistics.RejectedNum,
			PendingNum:   p.Statistics.PendingNum,
			IgnoreNum:    p.Statistics.IgnoreNum,
			AttemptedNum: p.Statistics.AttemptedNum,
		}
		for _, fs := range p.Statistics.FirstSolved {
			ps.FirstSolvedBy = append(ps.FirstSolvedBy, SolverInfo{
				TeamID:    fs.TeamID,
				Timestamp: fs.Timestamp,
			})
		}
		if len(p.Statistics.LastSolved) > 0 {
			ls := p.Statistics.LastSolved[0]
			ps.LastSolvedBy = &SolverInfo{TeamID: ls.TeamID, Timestamp: ls.Timestamp}
		}
		stats = append(stats, ps)
	}

	httpjson.WriteSuccessJson(w, stats)
}
