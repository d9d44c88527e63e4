package board

// Well-known group ids. GroupAll is synthesized for every contest and
// marked default; the rest receive synthesized labels when a feed
// declares them without one.
const (
	GroupAll        = "all"
	GroupOfficial   = "official"
	GroupUnofficial = "unofficial"
	GroupGirl       = "girl"
)

// Group is a named partition of the teams, e.g. official participants.
type Group struct {
	ID        string
	Names     map[string]string // display label per locale, "en"/"zh" keys
	IsDefault bool
}

func newDefaultGroups() map[string]*Group {
	return map[string]*Group{
		GroupAll: {
			ID:        GroupAll,
			Names:     map[string]string{"en": "All", "zh": "所有队伍"},
			IsDefault: true,
		},
	}
}

// normalizeGroupID folds feed spelling variants onto the canonical ids.
func normalizeGroupID(id string) string {
	if id == "girls" {
		return GroupGirl
	}
	return id
}

func synthesizedGroupLabel(id string) string {
	switch id {
	case GroupOfficial:
		return "Official"
	case GroupUnofficial:
		return "Unofficial"
	case GroupGirl:
		return "Girls"
	}
	return id
}
