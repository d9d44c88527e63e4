package feed

import (
	"encoding/json"
	"fmt"

	"github.com/programme-lv/scoreboard/board"
)

type rawRun struct {
	TeamID    string          `json:"team_id"`
	ProblemID json.RawMessage `json:"problem_id"`
	Timestamp int64           `json:"timestamp"`
	Status    string          `json:"status"`
	Ignored   bool            `json:"ignored"`
}

// parseRuns parses the run.json document, an array of judged attempts
// in feed order. Runs get a sequential id so the canonical
// (timestamp, id) submission order stays stable across loads.
func parseRuns(content []byte, contest *board.Contest) ([]*board.Submission, error) {
	raws := []rawRun{}
	if err := json.Unmarshal(content, &raws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run stream: %w", err)
	}

	subs := make([]*board.Submission, 0, len(raws))
	for i, raw := range raws {
		problemID, err := resolveProblemID(raw.ProblemID, contest)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		subs = append(subs, &board.Submission{
			ID:        fmt.Sprintf("%06d", i),
			TeamID:    raw.TeamID,
			ProblemID: problemID,
			Timestamp: raw.Timestamp,
			Verdict:   verdictFromStatus(raw.Status),
			Ignored:   raw.Ignored,
		})
	}
	return subs, nil
}

// resolveProblemID accepts either a problem id string or a numeric index
// into the contest's ordered problem list.
func resolveProblemID(raw json.RawMessage, contest *board.Contest) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var idx int
	if err := json.Unmarshal(raw, &idx); err != nil {
		return "", fmt.Errorf("problem_id is neither a string nor an index: %s", string(raw))
	}
	if idx < 0 || idx >= len(contest.Problems) {
		// Out-of-range indexes surface as an id no problem has; the
		// engine then skips the submission per its tolerance rules.
		return fmt.Sprintf("#%d", idx), nil
	}
	return contest.Problems[idx].ID, nil
}

// verdictFromStatus folds the status spellings seen in contest dumps
// onto the engine's closed verdict set.
func verdictFromStatus(status string) board.Verdict {
	switch status {
	case "AC", "OK", "correct", "Accepted", "accepted":
		return board.VerdictAccepted
	case "WA", "Wrong Answer", "incorrect", "wrong_answer":
		return board.VerdictWrongAnswer
	case "TLE", "Time Limit Exceeded", "time_limit_exceeded":
		return board.VerdictTimeLimit
	case "MLE", "Memory Limit Exceeded", "memory_limit_exceeded":
		return board.VerdictMemoryLimit
	case "OLE", "Output Limit Exceeded", "output_limit_exceeded":
		return board.VerdictOutputLimit
	case "RE", "RTE", "Runtime Error", "runtime_error":
		return board.VerdictRuntimeError
	case "PE", "Presentation Error", "presentation_error":
		return board.VerdictPresentationError
	case "CE", "Compile Error", "compilation_error":
		return board.VerdictCompileError
	case "SE", "System Error", "system_error":
		return board.VerdictSystemError
	case "PD", "pending", "Pending", "frozen", "queuing", "judging":
		return board.VerdictPending
	}
	return board.VerdictUnknown
}
