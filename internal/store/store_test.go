package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: SnapshotVersion,
			UserID:  "user-1",
			Progress: &ProgressData{
				TotalXP:      150,
				CurrentLevel: 2,
			},
			LastUpdated: now.Format(time.RFC3339),
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("data.version = %q, want %q", snap.Data.Version, SnapshotVersion)
	}
	if snap.Data.Progress == nil || snap.Data.Progress.TotalXP != 150 {
		t.Errorf("progress did not round-trip: %+v", snap.Data.Progress)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion, UserID: "user-1"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion, UserID: "user-1"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshot count after prune = %d, want 2", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 5 {
		t.Errorf("newest snapshot survived prune: sequence = %d, want 5", snap.Sequence)
	}
}

func TestEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave event types; the shared counter must order them globally.
	if err := repo.AppendHint(ctx, HintEventData{ChallengeID: "tinyurl", HintsTotal: 1}); err != nil {
		t.Fatalf("append hint: %v", err)
	}
	if err := repo.AppendCompletion(ctx, CompletionEventData{
		ChallengeID: "tinyurl", Level: 1, Score: 95, XPEarned: 125, Passed: true,
	}); err != nil {
		t.Fatalf("append completion: %v", err)
	}
	if err := repo.AppendSolutionView(ctx, "tinyurl"); err != nil {
		t.Fatalf("append solution view: %v", err)
	}

	records, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query completions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d completion records, want 1", len(records))
	}
	if records[0].Sequence != 2 {
		t.Errorf("completion sequence = %d, want 2 (after the hint)", records[0].Sequence)
	}
}

func TestCompletionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	submissions := []CompletionEventData{
		{ChallengeID: "tinyurl", Level: 1, Score: 90, Passed: true},
		{ChallengeID: "tinyurl", Level: 2, Score: 80, Passed: true},
		{ChallengeID: "pastebin", Level: 1, Score: 40, Passed: false},
	}
	for _, sub := range submissions {
		if err := repo.AppendCompletion(ctx, sub); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byChallenge, total, err := repo.CompletionCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 2 {
		t.Errorf("total passing completions = %d, want 2", total)
	}
	if byChallenge["tinyurl"] != 2 {
		t.Errorf("tinyurl completions = %d, want 2", byChallenge["tinyurl"])
	}
	if byChallenge["pastebin"] != 0 {
		t.Errorf("failed submission counted for pastebin: %d", byChallenge["pastebin"])
	}
}
