package board

import "time"

// ProblemConfig is a full problem record in a contest configuration.
type ProblemConfig struct {
	ID    string
	Label string
	Color string
}

// ContestConfig is the already-parsed raw contest record. The feed
// package produces it from config files; tests build it by hand. Zero
// values of the optional fields select the documented fallbacks.
type ContestConfig struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time

	// Penalty is the per-failed-attempt penalty in seconds.
	Penalty int64

	// FreezeTime, when non-zero, takes precedence over FrozenSeconds.
	// When neither is set the contest has no freeze window.
	FrozenSeconds *int64
	FreezeTime    time.Time

	// Problems takes precedence over ProblemIDs/BalloonColors when both
	// are present.
	ProblemIDs    []string
	BalloonColors []string
	Problems      []ProblemConfig

	// StatusDisplay toggles which verdict classes renderers should show,
	// keyed by "correct", "incorrect", "pending". A nil map means all
	// three are shown.
	StatusDisplay map[string]bool

	// MedalCounts maps group id to tier name to medal count.
	MedalCounts map[string]map[string]int

	// Organization, when non-empty, names the field teams are grouped by
	// for organization-scoped ranking (e.g. "school").
	Organization string

	// GroupNames maps declared group ids to display labels.
	GroupNames map[string]string
}

// Contest is the immutable configuration of one contest instance. It is
// shared by reference across every Rank built for it; only the Problems'
// statistics records are touched by builds.
type Contest struct {
	Name string

	StartTime  time.Time
	EndTime    time.Time
	FreezeTime time.Time

	// Durations in seconds.
	Duration         int64
	FrozenDuration   int64
	UnfrozenDuration int64

	Penalty int64

	Problems    []*Problem
	problemByID map[string]*Problem

	Groups map[string]*Group
	Awards map[string][]Award

	Organization string

	ShowCorrect   bool
	ShowIncorrect bool
	ShowPending   bool
}

// NewContest builds an immutable Contest from an already-validated
// configuration. It never fails: missing optional configuration falls
// back to the documented defaults.
func NewContest(cfg ContestConfig) *Contest {
	c := &Contest{
		Name:      cfg.Name,
		StartTime: cfg.StartTime,
		EndTime:   cfg.EndTime,
		Penalty:   cfg.Penalty,
		Duration:  int64(cfg.EndTime.Sub(cfg.StartTime) / time.Second),

		Organization: cfg.Organization,
	}

	switch {
	case !cfg.FreezeTime.IsZero():
		c.FreezeTime = cfg.FreezeTime
	case cfg.FrozenSeconds != nil:
		c.FreezeTime = cfg.EndTime.Add(-time.Duration(*cfg.FrozenSeconds) * time.Second)
	default:
		c.FreezeTime = cfg.EndTime
	}
	c.FrozenDuration = int64(cfg.EndTime.Sub(c.FreezeTime) / time.Second)
	c.UnfrozenDuration = c.Duration - c.FrozenDuration

	c.Problems, c.problemByID = buildProblems(cfg)
	c.Groups = buildGroups(cfg.GroupNames)
	c.Awards = buildAwardMap(cfg.MedalCounts)
	c.ShowCorrect, c.ShowIncorrect, c.ShowPending = statusDisplay(cfg.StatusDisplay)

	return c
}

func buildProblems(cfg ContestConfig) ([]*Problem, map[string]*Problem) {
	problems := []*Problem{}
	if len(cfg.Problems) > 0 {
		for _, pc := range cfg.Problems {
			problems = append(problems, &Problem{
				ID:    pc.ID,
				Label: pc.Label,
				Color: pc.Color,
			})
		}
	} else {
		for i, id := range cfg.ProblemIDs {
			p := &Problem{ID: id, Label: id}
			if i < len(cfg.BalloonColors) {
				p.Color = cfg.BalloonColors[i]
			}
			problems = append(problems, p)
		}
	}
	byID := make(map[string]*Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}
	return problems, byID
}

func buildGroups(names map[string]string) map[string]*Group {
	groups := newDefaultGroups()
	for id, label := range names {
		id = normalizeGroupID(id)
		if id == GroupAll {
			continue
		}
		if synthesized := synthesizedGroupLabel(id); synthesized != id {
			label = synthesized
		}
		groups[id] = &Group{
			ID:    id,
			Names: map[string]string{"en": label},
		}
	}
	return groups
}

func buildAwardMap(medalCounts map[string]map[string]int) map[string][]Award {
	awards := map[string][]Award{}
	for groupID, counts := range medalCounts {
		awards[normalizeGroupID(groupID)] = buildAwards(counts)
	}
	return awards
}

func statusDisplay(display map[string]bool) (correct, incorrect, pending bool) {
	if display == nil {
		return true, true, true
	}
	return display["correct"], display["incorrect"], display["pending"]
}

// ProblemByID resolves a contest problem by id.
func (c *Contest) ProblemByID(id string) (*Problem, bool) {
	p, ok := c.problemByID[id]
	return p, ok
}

// IsEnableAwards reports whether any award tiers were configured for
// the group.
func (c *Contest) IsEnableAwards(groupID string) bool {
	return len(c.Awards[normalizeGroupID(groupID)]) > 0
}

// AwardTier maps a final rank to the medal tier it falls into within
// the group's configured award ranges.
func (c *Contest) AwardTier(groupID string, rank int) (MedalTier, bool) {
	for _, a := range c.Awards[normalizeGroupID(groupID)] {
		if a.Contains(rank) {
			return a.Tier, true
		}
	}
	return "", false
}
