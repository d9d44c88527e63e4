package board

import "sort"

// TieBreaker orders two teams whose (solved count, penalty) keys are
// equal. Negative means a ranks before b. The default prefers the team
// whose last accepted submission came earlier, then the lower team id;
// contests replaying reference standings can inject their own chain.
type TieBreaker func(a, b *Team) int

func defaultTieBreaker(a, b *Team) int {
	if a.LastSolvedAt != b.LastSolvedAt {
		if a.LastSolvedAt < b.LastSolvedAt {
			return -1
		}
		return 1
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// Rank owns an isolated working copy of the teams and submissions of a
// contest and recomputes the full standings on every Build call. The
// contest is shared read-only; everything else is private to the
// instance, so callers wanting parallel what-if builds construct one
// Rank per goroutine instead of sharing one.
type Rank struct {
	Contest *Contest

	Teams    []*Team
	teamByID map[string]*Team

	// Problems are owned copies of the contest's problems; their
	// statistics records are rebuilt on every Build, while the contest's
	// own problem list stays pristine configuration.
	Problems    []*Problem
	problemByID map[string]*Problem

	Submissions []*Submission

	Statistics *RankStatistics
	Options    RankOptions

	tieBreaker TieBreaker
}

// NewRank deep-copies the given roster and submission stream so that
// repeated builds never mutate caller-owned data. The submission copy is
// sorted once by the canonical (timestamp, id) order.
func NewRank(c *Contest, teams []*Team, submissions []*Submission) *Rank {
	r := &Rank{
		Contest:    c,
		Statistics: newRankStatistics(len(c.Problems)),
		tieBreaker: defaultTieBreaker,
	}

	r.Teams = make([]*Team, 0, len(teams))
	r.teamByID = make(map[string]*Team, len(teams))
	for _, t := range teams {
		ct := t.clone()
		r.Teams = append(r.Teams, ct)
		r.teamByID[ct.ID] = ct
	}

	r.Problems = make([]*Problem, 0, len(c.Problems))
	r.problemByID = make(map[string]*Problem, len(c.Problems))
	for _, p := range c.Problems {
		cp := &Problem{ID: p.ID, Label: p.Label, Color: p.Color}
		r.Problems = append(r.Problems, cp)
		r.problemByID[cp.ID] = cp
	}

	r.Submissions = make([]*Submission, 0, len(submissions))
	for _, s := range submissions {
		r.Submissions = append(r.Submissions, s.clone())
	}
	sort.SliceStable(r.Submissions, func(i, j int) bool {
		return submissionLess(r.Submissions[i], r.Submissions[j])
	})

	return r
}

// SetTieBreaker replaces the comparator applied beyond the
// (solved count desc, penalty asc) ranking key.
func (r *Rank) SetTieBreaker(tb TieBreaker) {
	if tb != nil {
		r.tieBreaker = tb
	}
}

// TeamByID resolves an owned team copy by id.
func (r *Rank) TeamByID(id string) (*Team, bool) {
	t, ok := r.teamByID[id]
	return t, ok
}

// VisibleSubmissions returns the submission subsequence the current
// options expose: the full sorted stream, or, with the replay filter
// active, the prefix with timestamp at or below the cutoff.
func (r *Rank) VisibleSubmissions() []*Submission {
	if !r.Options.EnableFilter {
		return r.Submissions
	}
	// r.Submissions is kept in canonical order, so scanning it keeps
	// the filtered subsequence in canonical order too.
	visible := []*Submission{}
	for _, s := range r.Submissions {
		if s.Timestamp <= r.Options.Timestamp {
			visible = append(visible, s)
		}
	}
	return visible
}

// Build fully recomputes the standings from the owned copies and the
// current options. It is idempotent and returns the receiver so calls
// can be chained.
func (r *Rank) Build() *Rank {
	r.reset()
	r.replay()
	for _, t := range r.Teams {
		t.aggregate()
	}
	r.sortTeams()
	r.assignRanks()
	if r.Contest.Organization != "" {
		r.assignOrgRanks()
	}
	r.rebuildStatistics()
	return r
}

// ProblemByID resolves an owned problem copy by id.
func (r *Rank) ProblemByID(id string) (*Problem, bool) {
	p, ok := r.problemByID[id]
	return p, ok
}

func (r *Rank) reset() {
	for _, t := range r.Teams {
		t.resetStatistics(r.Contest.Penalty, r.Problems)
	}
	for _, p := range r.Problems {
		p.resetStatistics()
	}
}

// replay folds the visible submissions, in canonical order, into the
// per-team and per-problem statistics. Submissions referencing unknown
// teams or problems are skipped: scoreboard feeds are loosely validated
// and a partial board beats no board.
func (r *Rank) replay() {
	for _, sub := range r.VisibleSubmissions() {
		team, ok := r.teamByID[sub.TeamID]
		if !ok {
			continue
		}
		problem, ok := r.problemByID[sub.ProblemID]
		if !ok {
			continue
		}
		st := team.problemStats[sub.ProblemID]

		team.Submissions = append(team.Submissions, sub)
		st.Submissions = append(st.Submissions, sub)
		problem.Statistics.SubmittedNum++

		if st.IsSolved {
			// Post-solve submissions are recorded but change nothing.
			continue
		}

		if sub.IsIgnorable() {
			st.IgnoreCount++
			problem.Statistics.IgnoreNum++
			continue
		}

		st.IsSubmitted = true
		st.LastSubmitAt = sub.Timestamp
		st.TotalCount++

		switch {
		case sub.IsAccepted():
			st.IsSolved = true
			st.SolvedTimestamp = sub.Timestamp
			if problem.recordAccepted(sub, st.FailedCount) {
				st.IsFirstSolved = true
			}
			team.LastSolvedAt = sub.Timestamp
		case sub.IsRejected():
			st.FailedCount++
			problem.Statistics.RejectedNum++
		case sub.IsPending():
			st.PendingCount++
			problem.Statistics.PendingNum++
		}
	}
}

// isEqualRank is the shared-rank condition: teams tie exactly when both
// components of the ranking key match.
func isEqualRank(a, b *Team) bool {
	return a.SolvedCount == b.SolvedCount && a.Penalty == b.Penalty
}

func (r *Rank) sortTeams() {
	tb := r.tieBreaker
	sort.SliceStable(r.Teams, func(i, j int) bool {
		a, b := r.Teams[i], r.Teams[j]
		if a.SolvedCount != b.SolvedCount {
			return a.SolvedCount > b.SolvedCount
		}
		if a.Penalty != b.Penalty {
			return a.Penalty < b.Penalty
		}
		return tb(a, b) < 0
	})
}

func (r *Rank) assignRanks() {
	for i, t := range r.Teams {
		if i > 0 && isEqualRank(t, r.Teams[i-1]) {
			t.Rank = r.Teams[i-1].Rank
			continue
		}
		t.Rank = i + 1
	}
}

// assignOrgRanks numbers only the best team of each organization;
// later teams of an already-seen organization keep OrgRank zero but
// share their organization's standing.
func (r *Rank) assignOrgRanks() {
	seen := map[string]bool{}
	next := 1
	var prev *Team
	for _, t := range r.Teams {
		if t.Organization == "" || seen[t.Organization] {
			continue
		}
		seen[t.Organization] = true
		if prev != nil && isEqualRank(t, prev) {
			t.OrgRank = prev.OrgRank
		} else {
			t.OrgRank = next
		}
		next++
		prev = t
	}
}

func (r *Rank) rebuildStatistics() {
	r.Statistics = newRankStatistics(len(r.Problems))
	for _, t := range r.Teams {
		r.Statistics.record(t.SolvedCount)
	}
}
