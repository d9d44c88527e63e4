package http

import (
	"net/http"
	"sort"
	"time"

	"github.com/programme-lv/scoreboard/board"
	"github.com/programme-lv/scoreboard/httpjson"
	"github.com/programme-lv/scoreboard/logger"
)

type ProblemInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

type GroupInfo struct {
	ID        string            `json:"id"`
	Names     map[string]string `json:"names"`
	IsDefault bool              `json:"is_default"`
}

type AwardInfo struct {
	Tier    string `json:"tier"`
	MinRank int    `json:"min_rank"`
	MaxRank int    `json:"max_rank"` // UnboundedRank for the honorable tail
}

type ContestInfo struct {
	Name string `json:"name"`

	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	FreezeTime time.Time `json:"freeze_time"`

	Duration         int64 `json:"duration"`
	FrozenDuration   int64 `json:"frozen_duration"`
	UnfrozenDuration int64 `json:"unfrozen_duration"`

	Penalty int64 `json:"penalty"`

	Organization string `json:"organization,omitempty"`

	Problems []ProblemInfo          `json:"problems"`
	Groups   []GroupInfo            `json:"groups"`
	Awards   map[string][]AwardInfo `json:"awards,omitempty"`
}

func (s *HttpServer) getContest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	snap := s.currentSnapshot()
	if snap == nil {
		httpjson.HandleError(log, w, errContestNotLoaded())
		return
	}

	httpjson.WriteSuccessJson(w, mapContestInfo(snap.contest.Contest))
}

func mapContestInfo(c *board.Contest) ContestInfo {
	info := ContestInfo{
		Name:             c.Name,
		StartTime:        c.StartTime,
		EndTime:          c.EndTime,
		FreezeTime:       c.FreezeTime,
		Duration:         c.Duration,
		FrozenDuration:   c.FrozenDuration,
		UnfrozenDuration: c.UnfrozenDuration,
		Penalty:          c.Penalty,
		Organization:     c.Organization,
	}
	for _, p := range c.Problems {
		info.Problems = append(info.Problems, ProblemInfo{
			ID:    p.ID,
			Label: p.Label,
			Color: p.Color,
		})
	}
	groupIDs := make([]string, 0, len(c.Groups))
	for id := range c.Groups {
		groupIDs = append(groupIDs, id)
	}
	sort.Strings(groupIDs)
	for _, id := range groupIDs {
		g := c.Groups[id]
		info.Groups = append(info.Groups, GroupInfo{
			ID:        g.ID,
			Names:     g.Names,
			IsDefault: g.IsDefault,
		})
	}
	if len(c.Awards) > 0 {
		info.Awards = map[string][]AwardInfo{}
		for groupID, awards := range c.Awards {
			mapped := []AwardInfo{}
			for _, a := range awards {
				mapped = append(mapped, AwardInfo{
					Tier:    string(a.Tier),
					MinRank: a.MinRank,
					MaxRank: a.MaxRank,
				})
			}
			info.Awards[groupID] = mapped
		}
	}
	return info
}
