package board

// Problem is one contest problem together with the aggregate statistics
// accumulated over the visible submission stream.
type Problem struct {
	ID    string
	Label string
	Color string

	Statistics ProblemStatistics
}

// ProblemStatistics is rebuilt from scratch on every Rank.Build call.
type ProblemStatistics struct {
	SubmittedNum int
	AcceptedNum  int
	RejectedNum  int
	PendingNum   int
	IgnoreNum    int

	// AttemptedNum counts tries that led up to an acceptance: for every
	// team that solves the problem it grows by failed-before-solve + 1.
	AttemptedNum int

	// FirstSolved holds every accepted submission whose timestamp ties
	// the one of the last entry appended so far. With submissions
	// replayed in ascending timestamp order that is the set of earliest
	// solves; the comparison deliberately looks only at the last entry.
	FirstSolved []*Submission

	// LastSolved holds exactly the most recent accepted submission.
	LastSolved []*Submission
}

func (p *Problem) resetStatistics() {
	p.Statistics = ProblemStatistics{}
}

// recordAccepted folds an accepted submission into the aggregate counters.
// failedBefore is the solving team's failed-attempt count on this problem.
// It reports whether the submission entered the first-solve list.
func (p *Problem) recordAccepted(sub *Submission, failedBefore int) bool {
	st := &p.Statistics
	st.AcceptedNum++
	st.AttemptedNum += failedBefore + 1

	first := false
	n := len(st.FirstSolved)
	if n == 0 || sub.Timestamp <= st.FirstSolved[n-1].Timestamp {
		st.FirstSolved = append(st.FirstSolved, sub)
		first = true
	}
	st.LastSolved = st.LastSolved[:0]
	st.LastSolved = append(st.LastSolved, sub)
	return first
}

// IsFirstSolver reports whether the submission is one of the recorded
// first solves of the problem.
func (p *Problem) IsFirstSolver(sub *Submission) bool {
	for _, fs := range p.Statistics.FirstSolved {
		if fs == sub {
			return true
		}
	}
	return false
}
