package engine

import (
	"context"
	"fmt"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/store"
)

// StartChallenge marks a challenge as in progress. Starting an already
// started challenge is a no-op; starting a locked one is an error.
func (e *Engine) StartChallenge(ctx context.Context, challengeID string) error {
	if _, err := catalog.Get(challengeID); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
	}
	if !e.state.Unlocked[challengeID] {
		return fmt.Errorf("%w: %s", ErrChallengeLocked, challengeID)
	}

	cp, created := e.state.EnsureChallenge(challengeID)
	if !created {
		return nil
	}
	t := e.now()
	cp.StartedAt = &t
	e.state.TotalChallengesStarted++

	if awarded := e.awardAchievements(ctx); len(awarded) > 0 {
		// Reward XP can raise the user level and unlock further challenges.
		e.state.RefreshUnlocked()
	}
	return e.persist(ctx)
}

// UseHint records one hint taken on a challenge. Hints only accumulate;
// the per-completion penalty is applied from the MarkLevelComplete
// arguments, not from this counter.
func (e *Engine) UseHint(ctx context.Context, challengeID string) error {
	if _, err := catalog.Get(challengeID); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
	}

	cp, created := e.state.EnsureChallenge(challengeID)
	if created {
		t := e.now()
		cp.StartedAt = &t
		e.state.TotalChallengesStarted++
	}
	cp.HintsUsed++

	if err := e.events.AppendHint(ctx, store.HintEventData{
		ChallengeID: challengeID,
		HintsTotal:  cp.HintsUsed,
	}); err != nil {
		e.warn(fmt.Errorf("log hint %s: %w", challengeID, err))
	}
	return e.persist(ctx)
}

// ViewSolution flags a challenge's solution as seen. The flag is sticky
// and halves all future XP earned on the challenge.
func (e *Engine) ViewSolution(ctx context.Context, challengeID string) error {
	if _, err := catalog.Get(challengeID); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
	}

	cp, created := e.state.EnsureChallenge(challengeID)
	if created {
		t := e.now()
		cp.StartedAt = &t
		e.state.TotalChallengesStarted++
	}
	if cp.SolutionViewed {
		return nil
	}
	cp.SolutionViewed = true

	if err := e.events.AppendSolutionView(ctx, challengeID); err != nil {
		e.warn(fmt.Errorf("log solution view %s: %w", challengeID, err))
	}
	return e.persist(ctx)
}
