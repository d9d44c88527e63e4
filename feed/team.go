package feed

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/programme-lv/scoreboard/board"
)

type rawTeam struct {
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Group        []string `json:"group"`

	// Marker fields some dumps use instead of a group list.
	Official   bool `json:"official"`
	Unofficial bool `json:"unofficial"`
	Girl       bool `json:"girl"`
	Girls      bool `json:"girls"`
}

// parseTeams parses the team.json document: a map of team id to team
// record. The roster order is normalized to ascending team id so
// loading is deterministic regardless of map iteration.
func parseTeams(content []byte) ([]*board.Team, error) {
	byID := map[string]rawTeam{}
	if err := json.Unmarshal(content, &byID); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team roster: %w", err)
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	teams := make([]*board.Team, 0, len(ids))
	for _, id := range ids {
		raw := byID[id]
		teams = append(teams, &board.Team{
			ID:           id,
			Name:         raw.Name,
			Organization: raw.Organization,
			GroupIDs:     groupIDs(raw),
		})
	}
	return teams, nil
}

func groupIDs(raw rawTeam) []string {
	seen := map[string]bool{}
	ids := []string{}
	add := func(id string) {
		if id == "" || id == board.GroupAll || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	for _, g := range raw.Group {
		add(normalize(g))
	}
	if raw.Official {
		add(board.GroupOfficial)
	}
	if raw.Unofficial {
		add(board.GroupUnofficial)
	}
	if raw.Girl || raw.Girls {
		add(board.GroupGirl)
	}
	return ids
}

func normalize(groupID string) string {
	if groupID == "girls" {
		return board.GroupGirl
	}
	return groupID
}
