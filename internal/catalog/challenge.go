package catalog

// Track represents a named grouping of challenges.
type Track string

const (
	TrackFundamentals Track = "fundamentals"
	TrackConcepts     Track = "concepts"
	TrackSystems      Track = "systems"
)

// AllTracks returns all tracks in display order.
func AllTracks() []Track {
	return []Track{TrackFundamentals, TrackConcepts, TrackSystems}
}

// TrackDisplayName returns a human-readable name for a track.
func TrackDisplayName(t Track) string {
	switch t {
	case TrackFundamentals:
		return "Fundamentals"
	case TrackConcepts:
		return "Concepts"
	case TrackSystems:
		return "Systems"
	default:
		return string(t)
	}
}

// LevelCount is the number of difficulty levels in every challenge.
const LevelCount = 5

// LevelName returns the display name for a challenge level (1-5).
func LevelName(level int) string {
	switch level {
	case 1:
		return "Connectivity"
	case 2:
		return "Capacity"
	case 3:
		return "Optimization"
	case 4:
		return "Resilience"
	case 5:
		return "Excellence"
	default:
		return "Unknown"
	}
}

// TrackRequirement gates a challenge on partial completion of a track.
type TrackRequirement struct {
	Track         Track
	MinPercentage float64
}

// Prerequisite declares what must be true before a challenge unlocks.
// All conditions are ANDed. A nil Prerequisite means always unlocked.
type Prerequisite struct {
	RequiredChallenges []string
	RequiredLevel      int // minimum user level; 0 means no requirement
	RequiredTrack      *TrackRequirement
}

// Challenge represents a single system-design challenge in the catalog.
type Challenge struct {
	ID            string
	Name          string
	Description   string
	Track         Track
	EstimatedMins int
	Keywords      []string
	Prereq        *Prerequisite
}
