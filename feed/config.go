package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/programme-lv/scoreboard/board"
)

type rawContestConfig struct {
	ContestName string `json:"contest_name" toml:"contest_name"`

	StartTime json.RawMessage `json:"start_time" toml:"-"`
	EndTime   json.RawMessage `json:"end_time" toml:"-"`

	StartTimeToml time.Time `json:"-" toml:"start_time"`
	EndTimeToml   time.Time `json:"-" toml:"end_time"`

	Penalty int64 `json:"penalty" toml:"penalty"`

	FrozenSeconds *int64          `json:"frozen_time" toml:"frozen_time"`
	FreezeTime    json.RawMessage `json:"freeze_time" toml:"-"`

	ProblemIDs    []string `json:"problem_id" toml:"problem_id"`
	BalloonColors []string `json:"balloon_color" toml:"balloon_color"`

	Problems []struct {
		ID    string `json:"id" toml:"id"`
		Label string `json:"label" toml:"label"`
		Color string `json:"color" toml:"color"`
	} `json:"problems" toml:"problems"`

	StatusTimeDisplay map[string]bool `json:"status_time_display" toml:"status_time_display"`

	Medal map[string]map[string]int `json:"medal" toml:"medal"`

	Organization string `json:"organization" toml:"organization"`

	Group map[string]string `json:"group" toml:"group"`
}

// parseContestConfig parses the config.json document; a non-empty
// contest.toml takes precedence over it.
func parseContestConfig(configJSON, contestToml []byte) (board.ContestConfig, error) {
	raw := rawContestConfig{}

	if len(contestToml) > 0 {
		if err := toml.Unmarshal(contestToml, &raw); err != nil {
			return board.ContestConfig{}, fmt.Errorf("failed to unmarshal contest.toml: %w", err)
		}
		return raw.toConfig(raw.StartTimeToml, raw.EndTimeToml, time.Time{}), nil
	}

	if err := json.Unmarshal(configJSON, &raw); err != nil {
		return board.ContestConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	start, err := parseInstant(raw.StartTime)
	if err != nil {
		return board.ContestConfig{}, fmt.Errorf("bad start_time: %w", err)
	}
	end, err := parseInstant(raw.EndTime)
	if err != nil {
		return board.ContestConfig{}, fmt.Errorf("bad end_time: %w", err)
	}
	freeze := time.Time{}
	if len(raw.FreezeTime) > 0 {
		freeze, err = parseInstant(raw.FreezeTime)
		if err != nil {
			return board.ContestConfig{}, fmt.Errorf("bad freeze_time: %w", err)
		}
	}
	return raw.toConfig(start, end, freeze), nil
}

func (raw rawContestConfig) toConfig(start, end, freeze time.Time) board.ContestConfig {
	cfg := board.ContestConfig{
		Name:          raw.ContestName,
		StartTime:     start,
		EndTime:       end,
		Penalty:       raw.Penalty,
		FrozenSeconds: raw.FrozenSeconds,
		FreezeTime:    freeze,
		ProblemIDs:    raw.ProblemIDs,
		BalloonColors: raw.BalloonColors,
		MedalCounts:   raw.Medal,
		Organization:  raw.Organization,
		GroupNames:    raw.Group,
		StatusDisplay: raw.StatusTimeDisplay,
	}
	for _, p := range raw.Problems {
		cfg.Problems = append(cfg.Problems, board.ProblemConfig{
			ID:    p.ID,
			Label: p.Label,
			Color: p.Color,
		})
	}
	return cfg
}

// parseInstant accepts either unix seconds or an RFC 3339 string, the
// two spellings contest dumps use in the wild.
func parseInstant(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, errors.New("missing timestamp")
	}
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, fmt.Errorf("timestamp is neither unix seconds nor a string: %s", string(raw))
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
