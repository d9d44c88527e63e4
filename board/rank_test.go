package board_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/programme-lv/scoreboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testContest(opts ...func(*board.ContestConfig)) *board.Contest {
	start := time.Date(2024, 10, 6, 9, 0, 0, 0, time.UTC)
	cfg := board.ContestConfig{
		Name:       "Test Contest",
		StartTime:  start,
		EndTime:    start.Add(5 * time.Hour), // 18000 seconds
		Penalty:    1200,
		ProblemIDs: []string{"A", "B", "C"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return board.NewContest(cfg)
}

func testTeams(ids ...string) []*board.Team {
	teams := []*board.Team{}
	for _, id := range ids {
		teams = append(teams, &board.Team{ID: id, Name: "Team " + id})
	}
	return teams
}

func sub(id, teamID, problemID string, ts int64, verdict board.Verdict) *board.Submission {
	return &board.Submission{
		ID:        id,
		TeamID:    teamID,
		ProblemID: problemID,
		Timestamp: ts,
		Verdict:   verdict,
	}
}

func TestPenaltyAccumulation(t *testing.T) {
	contest := testContest()
	rank := board.NewRank(contest, testTeams("t1"), []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictWrongAnswer),
		sub("2", "t1", "A", 3000, board.VerdictAccepted),
	})
	rank.Build()

	team, ok := rank.TeamByID("t1")
	require.True(t, ok)

	st, ok := team.ProblemStats("A")
	require.True(t, ok)
	assert.True(t, st.IsSolved)
	assert.Equal(t, int64(3000), st.SolvedTimestamp)
	assert.Equal(t, 1, st.FailedCount)
	assert.Equal(t, int64(4200), st.PenaltyContribution())

	assert.Equal(t, 1, team.SolvedCount)
	assert.Equal(t, int64(4200), team.Penalty)
}

func TestUnsolvedProblemContributesNothing(t *testing.T) {
	contest := testContest()
	rank := board.NewRank(contest, testTeams("t1"), []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictWrongAnswer),
		sub("2", "t1", "A", 2000, board.VerdictTimeLimit),
	})
	rank.Build()

	team, _ := rank.TeamByID("t1")
	assert.Equal(t, 0, team.SolvedCount)
	assert.Equal(t, int64(0), team.Penalty)
}

func TestTiedRanks(t *testing.T) {
	contest := testContest()
	// t1 and t2 both solve A at the same time on their first try; t3
	// solves two problems and must rank strictly above both.
	rank := board.NewRank(contest, testTeams("t1", "t2", "t3"), []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictAccepted),
		sub("2", "t2", "A", 1000, board.VerdictAccepted),
		sub("3", "t3", "A", 2000, board.VerdictAccepted),
		sub("4", "t3", "B", 4000, board.VerdictAccepted),
	})
	rank.Build()

	t1, _ := rank.TeamByID("t1")
	t2, _ := rank.TeamByID("t2")
	t3, _ := rank.TeamByID("t3")

	assert.Equal(t, 1, t3.Rank)
	assert.Equal(t, 2, t1.Rank)
	assert.Equal(t, 2, t2.Rank)
}

func TestRankOrderIsMonotonic(t *testing.T) {
	contest := testContest()
	teams := testTeams("t1", "t2", "t3", "t4", "t5")
	subs := []*board.Submission{
		sub("1", "t1", "A", 600, board.VerdictAccepted),
		sub("2", "t2", "A", 600, board.VerdictWrongAnswer),
		sub("3", "t2", "A", 900, board.VerdictAccepted),
		sub("4", "t3", "B", 1200, board.VerdictAccepted),
		sub("5", "t3", "C", 8000, board.VerdictAccepted),
		sub("6", "t4", "A", 500, board.VerdictAccepted),
		sub("7", "t5", "B", 17000, board.VerdictWrongAnswer),
	}
	rank := board.NewRank(contest, teams, subs).Build()

	for i := 1; i < len(rank.Teams); i++ {
		prev, cur := rank.Teams[i-1], rank.Teams[i]
		better := prev.SolvedCount > cur.SolvedCount ||
			(prev.SolvedCount == cur.SolvedCount && prev.Penalty <= cur.Penalty)
		assert.Truef(t, better, "team %s ranked above %s with worse key", prev.ID, cur.ID)
		if prev.SolvedCount == cur.SolvedCount && prev.Penalty == cur.Penalty {
			assert.Equal(t, prev.Rank, cur.Rank)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	contest := testContest()
	teams := testTeams("t1", "t2", "t3")
	subs := []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictWrongAnswer),
		sub("2", "t1", "A", 3000, board.VerdictAccepted),
		sub("3", "t2", "B", 2000, board.VerdictAccepted),
		sub("4", "t3", "C", 2500, board.VerdictPending),
	}
	rank := board.NewRank(contest, teams, subs)

	rank.Build()
	first := snapshotStandings(rank)
	rank.Build()
	second := snapshotStandings(rank)

	require.Equal(t, first, second)
}

func snapshotStandings(r *board.Rank) []string {
	rows := []string{}
	for _, t := range r.Teams {
		rows = append(rows, fmt.Sprintf("%s rank=%d solved=%d penalty=%d",
			t.ID, t.Rank, t.SolvedCount, t.Penalty))
	}
	return rows
}

func TestSubmissionOrderIndependence(t *testing.T) {
	contest := testContest()
	subs := []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictWrongAnswer),
		sub("2", "t1", "A", 3000, board.VerdictAccepted),
		sub("3", "t2", "A", 3000, board.VerdictAccepted),
		sub("4", "t2", "B", 5000, board.VerdictAccepted),
		sub("5", "t3", "B", 5000, board.VerdictWrongAnswer),
		sub("6", "t3", "B", 5100, board.VerdictAccepted),
	}

	reference := snapshotStandings(
		board.NewRank(contest, testTeams("t1", "t2", "t3"), subs).Build())

	for i := 0; i < 50; i++ {
		shuffled := make([]*board.Submission, len(subs))
		copy(shuffled, subs)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := snapshotStandings(
			board.NewRank(contest, testTeams("t1", "t2", "t3"), shuffled).Build())
		require.Equal(t, reference, got)
	}
}

func TestUnknownReferencesAreSkipped(t *testing.T) {
	contest := testContest()
	rank := board.NewRank(contest, testTeams("t1"), []*board.Submission{
		sub("1", "ghost", "A", 1000, board.VerdictAccepted),
		sub("2", "t1", "Z", 1100, board.VerdictAccepted),
		sub("3", "t1", "A", 1200, board.VerdictAccepted),
	})
	rank.Build()

	team, _ := rank.TeamByID("t1")
	assert.Equal(t, 1, team.SolvedCount)

	problem, ok := rank.ProblemByID("A")
	require.True(t, ok)
	assert.Equal(t, 1, problem.Statistics.SubmittedNum)
	assert.Equal(t, 1, problem.Statistics.AcceptedNum)
}

func TestPostSolveSubmissionsChangeNothing(t *testing.T) {
	contest := testContest()
	rank := board.NewRank(contest, testTeams("t1"), []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictAccepted),
		sub("2", "t1", "A", 2000, board.VerdictWrongAnswer),
		sub("3", "t1", "A", 3000, board.VerdictAccepted),
	})
	rank.Build()

	team, _ := rank.TeamByID("t1")
	st, _ := team.ProblemStats("A")
	assert.True(t, st.IsSolved)
	assert.Equal(t, int64(1000), st.SolvedTimestamp)
	assert.Equal(t, 0, st.FailedCount)
	// The later submissions are still recorded under the problem.
	assert.Len(t, st.Submissions, 3)

	problem, _ := rank.ProblemByID("A")
	assert.Equal(t, 3, problem.Statistics.SubmittedNum)
	assert.Equal(t, 1, problem.Statistics.AcceptedNum)
}

func TestCompileErrorsAreNotPenalized(t *testing.T) {
	contest := testContest()
	rank := board.NewRank(contest, testTeams("t1"), []*board.Submission{
		sub("1", "t1", "A", 500, board.VerdictCompileError),
		sub("2", "t1", "A", 1000, board.VerdictWrongAnswer),
		sub("3", "t1", "A", 3000, board.VerdictAccepted),
	})
	rank.Build()

	team, _ := rank.TeamByID("t1")
	st, _ := team.ProblemStats("A")
	assert.Equal(t, 1, st.FailedCount)
	assert.Equal(t, 1, st.IgnoreCount)
	assert.Equal(t, int64(3000+1200), st.PenaltyContribution())
}

func TestFirstAndLastSolve(t *testing.T) {
	contest := testContest()
	rank := board.NewRank(contest, testTeams("t1", "t2", "t3"), []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictAccepted),
		sub("2", "t2", "A", 1000, board.VerdictAccepted),
		sub("3", "t3", "A", 4000, board.VerdictAccepted),
	})
	rank.Build()

	problem, _ := rank.ProblemByID("A")
	st := problem.Statistics

	// Both t1 and t2 solved at the earliest timestamp.
	require.Len(t, st.FirstSolved, 2)
	assert.Equal(t, "t1", st.FirstSolved[0].TeamID)
	assert.Equal(t, "t2", st.FirstSolved[1].TeamID)

	require.Len(t, st.LastSolved, 1)
	assert.Equal(t, "t3", st.LastSolved[0].TeamID)

	t1, _ := rank.TeamByID("t1")
	t1st, _ := t1.ProblemStats("A")
	assert.True(t, t1st.IsFirstSolved)
	t3, _ := rank.TeamByID("t3")
	t3st, _ := t3.ProblemStats("A")
	assert.False(t, t3st.IsFirstSolved)
}

func TestHistogramSumsToTeamCount(t *testing.T) {
	contest := testContest()
	teams := testTeams("t1", "t2", "t3", "t4")
	rank := board.NewRank(contest, teams, []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictAccepted),
		sub("2", "t2", "A", 2000, board.VerdictAccepted),
		sub("3", "t2", "B", 3000, board.VerdictAccepted),
	})
	rank.Build()

	require.Len(t, rank.Statistics.TeamsBySolved, 4) // 3 problems + 1
	assert.Equal(t, len(teams), rank.Statistics.TotalTeams())
	assert.Equal(t, 2, rank.Statistics.TeamsBySolved[0])
	assert.Equal(t, 1, rank.Statistics.TeamsBySolved[1])
	assert.Equal(t, 1, rank.Statistics.TeamsBySolved[2])
}

func TestOrganizationRanks(t *testing.T) {
	contest := testContest(func(cfg *board.ContestConfig) {
		cfg.Organization = "school"
	})
	teams := testTeams("t1", "t2", "t3", "t4")
	teams[0].Organization = "MIT"
	teams[1].Organization = "MIT"
	teams[2].Organization = "ETH"
	teams[3].Organization = "KTH"

	rank := board.NewRank(contest, teams, []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictAccepted),
		sub("2", "t2", "A", 2000, board.VerdictAccepted),
		sub("3", "t3", "A", 3000, board.VerdictAccepted),
		sub("4", "t4", "A", 4000, board.VerdictAccepted),
	})
	rank.Build()

	t1, _ := rank.TeamByID("t1")
	t2, _ := rank.TeamByID("t2")
	t3, _ := rank.TeamByID("t3")
	t4, _ := rank.TeamByID("t4")

	assert.Equal(t, 1, t1.OrgRank)
	// t2 is MIT's second team: no own number.
	assert.Equal(t, 0, t2.OrgRank)
	assert.Equal(t, 2, t3.OrgRank)
	assert.Equal(t, 3, t4.OrgRank)
}

func TestCallerDataIsNeverMutated(t *testing.T) {
	contest := testContest()
	teams := testTeams("t1")
	subs := []*board.Submission{
		sub("2", "t1", "A", 3000, board.VerdictAccepted),
		sub("1", "t1", "A", 1000, board.VerdictWrongAnswer),
	}

	board.NewRank(contest, teams, subs).Build()

	// The caller's slices keep their order and their zero-valued
	// derived fields.
	assert.Equal(t, "2", subs[0].ID)
	assert.Equal(t, 0, teams[0].SolvedCount)
	assert.Equal(t, 0, teams[0].Rank)
	assert.Nil(t, teams[0].ProblemStatistics)
}

func TestInjectedTieBreaker(t *testing.T) {
	contest := testContest()
	teams := testTeams("t1", "t2")
	subs := []*board.Submission{
		sub("1", "t1", "A", 1000, board.VerdictAccepted),
		sub("2", "t2", "A", 1000, board.VerdictAccepted),
	}

	rank := board.NewRank(contest, teams, subs)
	rank.SetTieBreaker(func(a, b *board.Team) int {
		// Reverse lexicographic team id.
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	rank.Build()

	assert.Equal(t, "t2", rank.Teams[0].ID)
	assert.Equal(t, "t1", rank.Teams[1].ID)
	// The tie-break orders the listing, not the rank values.
	assert.Equal(t, 1, rank.Teams[0].Rank)
	assert.Equal(t, 1, rank.Teams[1].Rank)
}
