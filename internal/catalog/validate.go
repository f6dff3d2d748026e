package catalog

import (
	"fmt"
	"strings"
)

// validateChallenges performs all structural checks on the given challenge set.
// Returns a combined error describing all problems found, or nil if valid.
func validateChallenges(challenges []Challenge) error {
	var errs []string

	idSet := make(map[string]bool, len(challenges))
	trackSet := make(map[Track]bool)
	validTracks := make(map[Track]bool)
	for _, t := range AllTracks() {
		validTracks[t] = true
	}

	// Check for duplicate IDs and unknown tracks
	for _, c := range challenges {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate challenge ID: %q", c.ID))
		}
		idSet[c.ID] = true
		trackSet[c.Track] = true
		if !validTracks[c.Track] {
			errs = append(errs, fmt.Sprintf("challenge %q has unknown track %q", c.ID, c.Track))
		}
	}

	// Check prerequisite entries
	for _, c := range challenges {
		if c.Prereq == nil {
			continue
		}
		for _, reqID := range c.Prereq.RequiredChallenges {
			if !idSet[reqID] {
				errs = append(errs, fmt.Sprintf("challenge %q references nonexistent prerequisite %q", c.ID, reqID))
			}
			if reqID == c.ID {
				errs = append(errs, fmt.Sprintf("challenge %q requires itself", c.ID))
			}
		}
		if c.Prereq.RequiredLevel < 0 {
			errs = append(errs, fmt.Sprintf("challenge %q: RequiredLevel must be >= 0, got %d", c.ID, c.Prereq.RequiredLevel))
		}
		if tr := c.Prereq.RequiredTrack; tr != nil {
			if !validTracks[tr.Track] {
				errs = append(errs, fmt.Sprintf("challenge %q requires unknown track %q", c.ID, tr.Track))
			}
			if tr.MinPercentage <= 0 || tr.MinPercentage > 100 {
				errs = append(errs, fmt.Sprintf("challenge %q: MinPercentage must be in (0, 100], got %f", c.ID, tr.MinPercentage))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(challenges))
	adjList := make(map[string][]string)
	for i := range challenges {
		c := &challenges[i]
		inDegree[c.ID] = len(requiredChallenges(c))
		for _, reqID := range requiredChallenges(c) {
			adjList[reqID] = append(adjList[reqID], c.ID)
		}
	}

	var queue []string
	for _, c := range challenges {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(challenges) {
		var cycleNodes []string
		for _, c := range challenges {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving challenges: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for i := range challenges {
		if len(requiredChallenges(&challenges[i])) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root challenges found (at least one challenge must have no required challenges)")
	}

	// Check all declared tracks are populated
	for _, t := range AllTracks() {
		if !trackSet[t] {
			errs = append(errs, fmt.Sprintf("track %q has no challenges", t))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
