package board_test

import (
	"testing"

	"github.com/programme-lv/scoreboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardRangesFromMedalConfig(t *testing.T) {
	contest := testContest(func(cfg *board.ContestConfig) {
		cfg.MedalCounts = map[string]map[string]int{
			"official": {"gold": 1, "silver": 2},
		}
	})

	awards := contest.Awards["official"]
	require.Len(t, awards, 3)

	assert.Equal(t, board.MedalGold, awards[0].Tier)
	assert.Equal(t, 1, awards[0].MinRank)
	assert.Equal(t, 1, awards[0].MaxRank)

	assert.Equal(t, board.MedalSilver, awards[1].Tier)
	assert.Equal(t, 2, awards[1].MinRank)
	assert.Equal(t, 3, awards[1].MaxRank)

	// No bronze tier was configured, so no ranks are reserved for it.
	assert.Equal(t, board.MedalHonorable, awards[2].Tier)
	assert.Equal(t, 4, awards[2].MinRank)
	assert.Equal(t, board.UnboundedRank, awards[2].MaxRank)
}

func TestAwardPartitionCoversEveryRank(t *testing.T) {
	contest := testContest(func(cfg *board.ContestConfig) {
		cfg.MedalCounts = map[string]map[string]int{
			"all": {"gold": 4, "silver": 4, "bronze": 6},
		}
	})

	awards := contest.Awards[board.GroupAll]
	require.NotEmpty(t, awards)
	assert.Equal(t, 1, awards[0].MinRank)
	for i := 1; i < len(awards); i++ {
		assert.Equal(t, awards[i-1].MaxRank+1, awards[i].MinRank)
	}
	assert.Equal(t, board.UnboundedRank, awards[len(awards)-1].MaxRank)
}

func TestAwardTierLookup(t *testing.T) {
	contest := testContest(func(cfg *board.ContestConfig) {
		cfg.MedalCounts = map[string]map[string]int{
			"official": {"gold": 1, "silver": 2},
		}
	})

	assert.True(t, contest.IsEnableAwards("official"))
	assert.False(t, contest.IsEnableAwards("all"))

	tier, ok := contest.AwardTier("official", 1)
	require.True(t, ok)
	assert.Equal(t, board.MedalGold, tier)

	tier, _ = contest.AwardTier("official", 3)
	assert.Equal(t, board.MedalSilver, tier)

	tier, _ = contest.AwardTier("official", 100000)
	assert.Equal(t, board.MedalHonorable, tier)

	_, ok = contest.AwardTier("unofficial", 1)
	assert.False(t, ok)
}
