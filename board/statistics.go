package board

// RankStatistics is the teams-by-solved-count histogram. Bucket i holds
// the number of teams that solved exactly i problems; there are
// problem-count + 1 buckets.
type RankStatistics struct {
	TeamsBySolved []int
}

func newRankStatistics(problemCount int) *RankStatistics {
	return &RankStatistics{TeamsBySolved: make([]int, problemCount+1)}
}

func (s *RankStatistics) record(solvedCount int) {
	if solvedCount >= 0 && solvedCount < len(s.TeamsBySolved) {
		s.TeamsBySolved[solvedCount]++
	}
}

// TotalTeams is the sum over all buckets.
func (s *RankStatistics) TotalTeams() int {
	total := 0
	for _, n := range s.TeamsBySolved {
		total += n
	}
	return total
}
