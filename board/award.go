package board

import "math"

// MedalTier is an award tier. Tiers are allocated gold, silver, bronze,
// in that order, with honorable mention covering every remaining rank.
type MedalTier string

const (
	MedalGold      MedalTier = "gold"
	MedalSilver    MedalTier = "silver"
	MedalBronze    MedalTier = "bronze"
	MedalHonorable MedalTier = "honorable"
)

// UnboundedRank is the sentinel upper bound of the honorable tier.
const UnboundedRank = math.MaxInt32

// Award maps the inclusive rank range [MinRank, MaxRank] to a medal tier
// within one group's standings.
type Award struct {
	Tier    MedalTier
	MinRank int
	MaxRank int
}

// Contains reports whether the rank falls inside the award's range.
func (a Award) Contains(rank int) bool {
	return rank >= a.MinRank && rank <= a.MaxRank
}

// buildAwards lays out contiguous rank blocks for the configured tier
// sizes and appends the honorable tail. Tiers with no configured count
// reserve no ranks.
func buildAwards(medalCounts map[string]int) []Award {
	awards := []Award{}
	next := 1
	for _, tier := range []MedalTier{MedalGold, MedalSilver, MedalBronze} {
		count, ok := medalCounts[string(tier)]
		if !ok || count <= 0 {
			continue
		}
		awards = append(awards, Award{
			Tier:    tier,
			MinRank: next,
			MaxRank: next + count - 1,
		})
		next += count
	}
	awards = append(awards, Award{
		Tier:    MedalHonorable,
		MinRank: next,
		MaxRank: UnboundedRank,
	})
	return awards
}
