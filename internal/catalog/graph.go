package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the challenge catalog with precomputed indices.
type graph struct {
	challenges []Challenge
	byID       map[string]*Challenge
	byTrack    map[Track][]Challenge
	roots      []Challenge
	dependents map[string][]string
	topoOrder  []Challenge
	topoIndex  map[string]int
}

// g is the package-level catalog singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the catalog from a slice of challenges.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(challenges []Challenge) *graph {
	gr := &graph{
		challenges: challenges,
		byID:       make(map[string]*Challenge, len(challenges)),
		byTrack:    make(map[Track][]Challenge),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(challenges)),
	}

	for i := range gr.challenges {
		gr.byID[gr.challenges[i].ID] = &gr.challenges[i]
	}

	// Reverse edges (dependents) over required-challenge prerequisites.
	for i := range gr.challenges {
		c := &gr.challenges[i]
		if c.Prereq == nil {
			continue
		}
		for _, reqID := range c.Prereq.RequiredChallenges {
			gr.dependents[reqID] = append(gr.dependents[reqID], c.ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(challenges))
	for i := range challenges {
		inDegree[challenges[i].ID] = len(requiredChallenges(&challenges[i]))
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var topoOrder []Challenge
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *gr.byID[id])

		deps := slices.Clone(gr.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, c := range gr.topoOrder {
		gr.topoIndex[c.ID] = i
	}

	for i := range gr.challenges {
		if len(requiredChallenges(&gr.challenges[i])) == 0 {
			gr.roots = append(gr.roots, gr.challenges[i])
		}
	}

	// Track groups keep catalog declaration order, which is the fixed
	// total order within each track.
	for i := range gr.challenges {
		c := gr.challenges[i]
		gr.byTrack[c.Track] = append(gr.byTrack[c.Track], c)
	}

	return gr
}

func requiredChallenges(c *Challenge) []string {
	if c.Prereq == nil {
		return nil
	}
	return c.Prereq.RequiredChallenges
}

// Get returns a challenge by ID, or an error if not found.
func Get(id string) (Challenge, error) {
	c, ok := g.byID[id]
	if !ok {
		return Challenge{}, fmt.Errorf("challenge not found: %q", id)
	}
	return *c, nil
}

// All returns all challenges in the catalog.
func All() []Challenge {
	return slices.Clone(g.challenges)
}

// ByTrack returns all challenges in a track, in catalog order.
func ByTrack(t Track) []Challenge {
	return slices.Clone(g.byTrack[t])
}

// TrackSize returns the number of challenges in a track.
func TrackSize(t Track) int {
	return len(g.byTrack[t])
}

// Roots returns all challenges with no required-challenge prerequisites.
func Roots() []Challenge {
	return slices.Clone(g.roots)
}

// Dependents returns challenges that list the given ID as a required challenge.
func Dependents(id string) []Challenge {
	depIDs := g.dependents[id]
	result := make([]Challenge, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// TopologicalOrder returns all challenges in a valid topological order.
func TopologicalOrder() []Challenge {
	return slices.Clone(g.topoOrder)
}

// ProgressView is the progress snapshot the resolver evaluates against.
type ProgressView struct {
	Completed        map[string]bool
	UserLevel        int
	TrackPercentages map[Track]float64
}

// IsUnlocked reports whether every prerequisite condition for the given
// challenge holds under the progress view. Unknown IDs are locked.
func IsUnlocked(id string, view ProgressView) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	p := c.Prereq
	if p == nil {
		return true
	}
	for _, reqID := range p.RequiredChallenges {
		if !view.Completed[reqID] {
			return false
		}
	}
	if p.RequiredLevel > 0 && view.UserLevel < p.RequiredLevel {
		return false
	}
	if p.RequiredTrack != nil && view.TrackPercentages[p.RequiredTrack.Track] < p.RequiredTrack.MinPercentage {
		return false
	}
	return true
}

// UnlockedSet resolves the full catalog against the progress view.
// A single completion can satisfy several independent downstream
// prerequisites, so resolution always scans every challenge.
func UnlockedSet(view ProgressView) map[string]bool {
	result := make(map[string]bool, len(g.challenges))
	for _, c := range g.topoOrder {
		if IsUnlocked(c.ID, view) {
			result[c.ID] = true
		}
	}
	return result
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateChallenges(g.challenges)
}
