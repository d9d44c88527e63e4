package board

// FullWidth is the permyriad value representing the full contest
// duration in RankOptions.SetWidth.
const FullWidth = 10000

// RankOptions are the view-level knobs of a Rank: a replay cutoff over
// the submission stream and an animation toggle for renderers. The
// cutoff timestamp is derived via SetWidth, never set by hand.
type RankOptions struct {
	Timestamp       int64
	EnableFilter    bool
	EnableAnimation bool
}

// SetWidth derives the replay cutoff from a permyriad width: 10000
// means the full contest duration. It enables the submission filter.
func (o *RankOptions) SetWidth(width int, c *Contest) {
	o.Timestamp = c.Duration * int64(width) / FullWidth
	o.EnableFilter = true
}

// DisableFilter reverts to the unfiltered full submission view.
func (o *RankOptions) DisableFilter() {
	o.EnableFilter = false
	o.Timestamp = 0
}
