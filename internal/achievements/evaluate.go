package achievements

// Evaluate returns the achievements whose predicates hold under stats and
// that the earned filter does not already know, in catalog declaration
// order. Already-earned achievements are never re-evaluated, so unlocks
// are idempotent.
func Evaluate(stats Stats, earned func(id string) bool) []Achievement {
	var newly []Achievement
	for _, a := range Catalog {
		if earned(a.ID) {
			continue
		}
		if a.Unlocked(stats) {
			newly = append(newly, a)
		}
	}
	return newly
}
