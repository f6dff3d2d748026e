package catalog

import (
	"strings"
	"testing"
)

func TestSeedCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog is invalid: %v", err)
	}
}

func allTracksChallenges() []Challenge {
	return []Challenge{
		{ID: "a", Track: TrackFundamentals},
		{ID: "b", Track: TrackConcepts},
		{ID: "c", Track: TrackSystems},
	}
}

func TestValidateDuplicateID(t *testing.T) {
	cs := append(allTracksChallenges(), Challenge{ID: "a", Track: TrackFundamentals})
	err := validateChallenges(cs)
	if err == nil || !strings.Contains(err.Error(), "duplicate challenge ID") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestValidateDanglingPrerequisite(t *testing.T) {
	cs := allTracksChallenges()
	cs[1].Prereq = &Prerequisite{RequiredChallenges: []string{"ghost"}}
	err := validateChallenges(cs)
	if err == nil || !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("expected dangling prerequisite error, got %v", err)
	}
}

func TestValidateCycle(t *testing.T) {
	cs := allTracksChallenges()
	cs[0].Prereq = &Prerequisite{RequiredChallenges: []string{"b"}}
	cs[1].Prereq = &Prerequisite{RequiredChallenges: []string{"a"}}
	err := validateChallenges(cs)
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestValidateTrackRequirementBounds(t *testing.T) {
	cs := allTracksChallenges()
	cs[2].Prereq = &Prerequisite{
		RequiredTrack: &TrackRequirement{Track: TrackFundamentals, MinPercentage: 150},
	}
	err := validateChallenges(cs)
	if err == nil || !strings.Contains(err.Error(), "MinPercentage") {
		t.Errorf("expected percentage bounds error, got %v", err)
	}
}

func TestValidateEmptyTrack(t *testing.T) {
	cs := []Challenge{
		{ID: "a", Track: TrackFundamentals},
		{ID: "b", Track: TrackConcepts},
	}
	err := validateChallenges(cs)
	if err == nil || !strings.Contains(err.Error(), "has no challenges") {
		t.Errorf("expected empty track error, got %v", err)
	}
}
