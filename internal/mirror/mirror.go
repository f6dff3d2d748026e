package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charlieanna/idlecampus/internal/engine"
)

// syncTimeout bounds each background replay, independent of the caller's
// context: the local mutation has already committed by the time the
// mirror runs, so nothing should wait on it.
const syncTimeout = 30 * time.Second

// Engine is the mutation surface the mirror decorates.
type Engine interface {
	UserID() string
	StartChallenge(ctx context.Context, challengeID string) error
	MarkLevelComplete(ctx context.Context, challengeID string, level, score, timeSpentMinutes, hintsUsed int, solutionViewed bool) (engine.CompletionResult, error)
	UseHint(ctx context.Context, challengeID string) error
	ViewSolution(ctx context.Context, challengeID string) error
	CompleteAssessment(ctx context.Context, skillLevel string, score int) error
	ImportJSON(ctx context.Context, raw []byte) error
}

// Service wraps an engine and replays its mutations to the backend after
// they commit locally. Replays are fire and forget; failures go to the
// warn callback and never reach the caller.
type Service struct {
	engine Engine
	client *Client
	warn   func(error)
	wg     sync.WaitGroup
}

// Wrap decorates an engine with remote replay.
func Wrap(e Engine, client *Client, warn func(error)) *Service {
	if warn == nil {
		warn = func(error) {}
	}
	return &Service{engine: e, client: client, warn: warn}
}

// Close waits for in-flight replays to finish.
func (s *Service) Close() {
	s.wg.Wait()
}

// UserID passes through to the engine.
func (s *Service) UserID() string { return s.engine.UserID() }

// StartChallenge commits locally; starts are not mirrored, the backend
// derives them from completions.
func (s *Service) StartChallenge(ctx context.Context, challengeID string) error {
	return s.engine.StartChallenge(ctx, challengeID)
}

// UseHint commits locally only.
func (s *Service) UseHint(ctx context.Context, challengeID string) error {
	return s.engine.UseHint(ctx, challengeID)
}

// ViewSolution commits locally only.
func (s *Service) ViewSolution(ctx context.Context, challengeID string) error {
	return s.engine.ViewSolution(ctx, challengeID)
}

// ImportJSON commits locally only.
func (s *Service) ImportJSON(ctx context.Context, raw []byte) error {
	return s.engine.ImportJSON(ctx, raw)
}

// MarkLevelComplete commits locally, then replays passed levels to the
// backend in the background.
func (s *Service) MarkLevelComplete(ctx context.Context, challengeID string, level, score, timeSpentMinutes, hintsUsed int, solutionViewed bool) (engine.CompletionResult, error) {
	res, err := s.engine.MarkLevelComplete(ctx, challengeID, level, score, timeSpentMinutes, hintsUsed, solutionViewed)
	if err != nil || !res.Passed {
		return res, err
	}

	userID := s.engine.UserID()
	s.async(func(ctx context.Context) error {
		_, err := s.client.PushLevelComplete(ctx, userID, CompleteLevelRequest{
			ChallengeID: challengeID,
			Level:       level,
			Performance: LevelPerformance{
				Score:            score,
				TimeSpentMinutes: timeSpentMinutes,
				HintsUsed:        hintsUsed,
			},
		})
		return err
	})
	return res, nil
}

// CompleteAssessment commits locally, then replays to the backend.
func (s *Service) CompleteAssessment(ctx context.Context, skillLevel string, score int) error {
	if err := s.engine.CompleteAssessment(ctx, skillLevel, score); err != nil {
		return err
	}

	userID := s.engine.UserID()
	s.async(func(ctx context.Context) error {
		return s.client.PushAssessment(ctx, userID, AssessmentRequest{Score: score})
	})
	return nil
}

// Hydrate pulls the remote profile and merges it into local state through
// the normal import path. Unlike replays this is synchronous: the caller
// asked for it explicitly.
func (s *Service) Hydrate(ctx context.Context) error {
	data, err := s.client.FetchProgress(ctx, s.engine.UserID())
	if err != nil {
		return fmt.Errorf("fetch remote progress: %w", err)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode remote progress: %w", err)
	}
	return s.engine.ImportJSON(ctx, raw)
}

// Leaderboard fetches ranked users from the backend.
func (s *Service) Leaderboard(ctx context.Context, period string, limit int) ([]LeaderboardEntry, error) {
	return s.client.FetchLeaderboard(ctx, period, limit)
}

// Health probes the backend.
func (s *Service) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *Service) async(fn func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.warn(fmt.Errorf("mirror sync: %w", err))
		}
	}()
}
