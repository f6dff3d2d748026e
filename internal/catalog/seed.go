package catalog

// seedChallenges is the built-in challenge catalog. Order within each track
// is the track's fixed display order.
var seedChallenges = []Challenge{
	// Fundamentals
	{
		ID:            "tinyurl",
		Name:          "TinyURL",
		Description:   "Design a URL shortening service with redirect at scale.",
		Track:         TrackFundamentals,
		EstimatedMins: 45,
		Keywords:      []string{"hashing", "key-value", "redirects"},
	},
	{
		ID:            "pastebin",
		Name:          "Pastebin",
		Description:   "Design a text-sharing service with expiring pastes.",
		Track:         TrackFundamentals,
		EstimatedMins: 45,
		Keywords:      []string{"object storage", "expiry", "read-heavy"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"tinyurl"},
		},
	},
	{
		ID:            "ratelimiter",
		Name:          "Rate Limiter",
		Description:   "Design a distributed API rate limiter.",
		Track:         TrackFundamentals,
		EstimatedMins: 60,
		Keywords:      []string{"token bucket", "sliding window", "redis"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"tinyurl"},
		},
	},
	{
		ID:            "kvstore",
		Name:          "Key-Value Store",
		Description:   "Design a replicated key-value store with tunable consistency.",
		Track:         TrackFundamentals,
		EstimatedMins: 75,
		Keywords:      []string{"replication", "quorum", "partitioning"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"pastebin"},
		},
	},
	{
		ID:            "loadbalancer",
		Name:          "Load Balancer",
		Description:   "Design an L7 load balancer with health checking.",
		Track:         TrackFundamentals,
		EstimatedMins: 60,
		Keywords:      []string{"health checks", "consistent hashing", "failover"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"ratelimiter"},
			RequiredLevel:      2,
		},
	},

	// Concepts
	{
		ID:            "messagequeue",
		Name:          "Message Queue",
		Description:   "Design a durable publish-subscribe message broker.",
		Track:         TrackConcepts,
		EstimatedMins: 75,
		Keywords:      []string{"pub-sub", "durability", "consumer groups"},
		Prereq: &Prerequisite{
			RequiredTrack: &TrackRequirement{Track: TrackFundamentals, MinPercentage: 40},
		},
	},
	{
		ID:            "chatapp",
		Name:          "Chat Application",
		Description:   "Design a real-time chat system with presence and delivery receipts.",
		Track:         TrackConcepts,
		EstimatedMins: 90,
		Keywords:      []string{"websockets", "fan-out", "presence"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"messagequeue", "kvstore"},
		},
	},
	{
		ID:            "notification",
		Name:          "Notification Service",
		Description:   "Design a multi-channel notification delivery system.",
		Track:         TrackConcepts,
		EstimatedMins: 60,
		Keywords:      []string{"fan-out", "rate limiting", "idempotency"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"messagequeue"},
			RequiredLevel:      3,
		},
	},
	{
		ID:            "newsfeed",
		Name:          "News Feed",
		Description:   "Design a personalized feed with ranking and fan-out on write.",
		Track:         TrackConcepts,
		EstimatedMins: 90,
		Keywords:      []string{"fan-out", "ranking", "caching"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"chatapp"},
		},
	},

	// Systems
	{
		ID:            "webcrawler",
		Name:          "Web Crawler",
		Description:   "Design a polite, distributed web crawler.",
		Track:         TrackSystems,
		EstimatedMins: 90,
		Keywords:      []string{"frontier", "dedupe", "politeness"},
		Prereq: &Prerequisite{
			RequiredLevel: 4,
			RequiredTrack: &TrackRequirement{Track: TrackConcepts, MinPercentage: 50},
		},
	},
	{
		ID:            "searchengine",
		Name:          "Search Engine",
		Description:   "Design indexing and query serving for full-text search.",
		Track:         TrackSystems,
		EstimatedMins: 120,
		Keywords:      []string{"inverted index", "sharding", "ranking"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"webcrawler"},
		},
	},
	{
		ID:            "ridesharing",
		Name:          "Ride Sharing",
		Description:   "Design dispatch, matching, and location tracking for ride hailing.",
		Track:         TrackSystems,
		EstimatedMins: 120,
		Keywords:      []string{"geospatial", "matching", "surge"},
		Prereq: &Prerequisite{
			RequiredChallenges: []string{"newsfeed", "notification"},
			RequiredLevel:      5,
		},
	},
}

func init() {
	if err := validateChallenges(seedChallenges); err != nil {
		panic(err)
	}
	g = buildGraph(seedChallenges)
}
