package board

// Team is a contest participant together with everything Rank.Build
// derives for it. Rank owns its teams exclusively; callers hand rosters
// to NewRank and never see their own slices mutated.
type Team struct {
	ID           string
	Name         string
	Organization string
	GroupIDs     []string

	ProblemStatistics []*TeamProblemStatistics
	problemStats      map[string]*TeamProblemStatistics

	Submissions []*Submission

	SolvedCount int
	Penalty     int64
	Rank        int
	OrgRank     int

	// LastSolvedAt is the solving timestamp of the team's most recent
	// accepted submission, used as the default ranking tie-break.
	LastSolvedAt int64
}

func (t *Team) clone() *Team {
	c := &Team{
		ID:           t.ID,
		Name:         t.Name,
		Organization: t.Organization,
	}
	c.GroupIDs = append(c.GroupIDs, t.GroupIDs...)
	return c
}

// InGroup reports whether the team belongs to the given group. Every
// team belongs to the default "all" group.
func (t *Team) InGroup(groupID string) bool {
	if groupID == "" || groupID == GroupAll {
		return true
	}
	for _, g := range t.GroupIDs {
		if g == groupID {
			return true
		}
	}
	return false
}

// resetStatistics gives the team a fresh statistics record per contest
// problem, indexed both positionally and by problem id.
func (t *Team) resetStatistics(penalty int64, problems []*Problem) {
	t.ProblemStatistics = make([]*TeamProblemStatistics, 0, len(problems))
	t.problemStats = make(map[string]*TeamProblemStatistics, len(problems))
	t.Submissions = nil
	t.SolvedCount = 0
	t.Penalty = 0
	t.Rank = 0
	t.OrgRank = 0
	t.LastSolvedAt = 0
	for _, p := range problems {
		st := &TeamProblemStatistics{Problem: p, ContestPenalty: penalty}
		t.ProblemStatistics = append(t.ProblemStatistics, st)
		t.problemStats[p.ID] = st
	}
}

// ProblemStats returns the team's statistics record for a problem id.
func (t *Team) ProblemStats(problemID string) (*TeamProblemStatistics, bool) {
	st, ok := t.problemStats[problemID]
	return st, ok
}

// aggregate recomputes the team's solved count and total penalty from
// its per-problem statistics.
func (t *Team) aggregate() {
	t.SolvedCount = 0
	t.Penalty = 0
	for _, st := range t.ProblemStatistics {
		if !st.IsSolved {
			continue
		}
		t.SolvedCount++
		t.Penalty += st.PenaltyContribution()
	}
}

// TeamProblemStatistics accumulates one team's attempts on one problem
// within a single build.
type TeamProblemStatistics struct {
	Problem        *Problem
	ContestPenalty int64

	Submissions []*Submission

	IsSubmitted   bool
	IsSolved      bool
	IsFirstSolved bool

	SolvedTimestamp int64
	LastSubmitAt    int64

	FailedCount  int
	PendingCount int
	IgnoreCount  int
	TotalCount   int
}

// PenaltyContribution is the problem's share of the team's total
// penalty: time to solve plus one penalty unit per failed attempt before
// the accepted one. Unsolved problems contribute nothing.
func (st *TeamProblemStatistics) PenaltyContribution() int64 {
	if !st.IsSolved {
		return 0
	}
	return st.SolvedTimestamp + st.ContestPenalty*int64(st.FailedCount)
}
