package board

// Verdict is the judged outcome tag of a submission. The set is closed:
// feeds that report anything else are normalized to VerdictUnknown by the
// loading layer.
type Verdict string

const (
	VerdictAccepted          Verdict = "AC"
	VerdictWrongAnswer       Verdict = "WA"
	VerdictTimeLimit         Verdict = "TLE"
	VerdictMemoryLimit       Verdict = "MLE"
	VerdictOutputLimit       Verdict = "OLE"
	VerdictRuntimeError      Verdict = "RE"
	VerdictPresentationError Verdict = "PE"
	VerdictCompileError      Verdict = "CE"
	VerdictSystemError       Verdict = "SE"
	VerdictUnknown           Verdict = "UKE"
	VerdictPending           Verdict = "PD"
)

// Submission is one judged attempt. Timestamp is in contest-relative
// seconds, i.e. seconds since the contest start.
type Submission struct {
	ID        string
	TeamID    string
	ProblemID string
	Timestamp int64
	Verdict   Verdict

	// Ignored marks a submission that the feed excludes from scoring
	// explicitly, independent of its verdict.
	Ignored bool
}

func (s *Submission) IsAccepted() bool {
	return s.Verdict == VerdictAccepted
}

func (s *Submission) IsPending() bool {
	return s.Verdict == VerdictPending
}

func (s *Submission) IsRejected() bool {
	switch s.Verdict {
	case VerdictWrongAnswer, VerdictTimeLimit, VerdictMemoryLimit,
		VerdictOutputLimit, VerdictRuntimeError, VerdictPresentationError:
		return true
	}
	return false
}

// IsPenaltyExempt reports whether the verdict is excluded from penalty
// accounting altogether (the attempt is not counted as a failed try).
func (s *Submission) IsPenaltyExempt() bool {
	switch s.Verdict {
	case VerdictCompileError, VerdictSystemError, VerdictUnknown:
		return true
	}
	return false
}

// IsIgnorable reports whether replay should skip everything but the
// ignore counters for this submission.
func (s *Submission) IsIgnorable() bool {
	return s.Ignored || s.IsPenaltyExempt()
}

func (s *Submission) clone() *Submission {
	c := *s
	return &c
}

// submissionLess is the canonical submission order: ascending timestamp,
// ties broken by submission id so that replay is deterministic.
func submissionLess(a, b *Submission) bool {
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	return a.ID < b.ID
}
