package http

import (
	"net/http"

	"github.com/programme-lv/scoreboard/board"
	"github.com/programme-lv/scoreboard/httpjson"
	"github.com/programme-lv/scoreboard/logger"
)

type SubmissionInfo struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	ProblemID string `json:"problem_id"`
	Timestamp int64  `json:"timestamp"`
	Verdict   string `json:"verdict"`
	Ignored   bool   `json:"ignored,omitempty"`
}

func (s *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
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

	visible := rank.VisibleSubmissions()
	infos := make([]SubmissionInfo, 0, len(visible))
	for _, sub := range visible {
		infos = append(infos, SubmissionInfo{
			ID:        sub.ID,
			TeamID:    sub.TeamID,
			ProblemID: sub.ProblemID,
			Timestamp: sub.Timestamp,
			Verdict:   string(sub.Verdict),
			Ignored:   sub.Ignored,
		})
	}

	httpjson.WriteSuccessJson(w, infos)
}
