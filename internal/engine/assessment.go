package engine

import (
	"context"
	"fmt"

	"github.com/charlieanna/idlecampus/internal/store"
)

var skillLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// CompleteAssessment records the one-time skill self-assessment. The
// result is set at most once; repeat calls keep the first answer and
// return nil so clients can replay safely.
func (e *Engine) CompleteAssessment(ctx context.Context, skillLevel string, score int) error {
	if !skillLevels[skillLevel] {
		return fmt.Errorf("%w: got %q", ErrInvalidSkill, skillLevel)
	}
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}
	if e.state.AssessmentCompleted {
		return nil
	}

	e.state.AssessmentCompleted = true
	e.state.SkillLevel = skillLevel

	if err := e.events.AppendAssessment(ctx, store.AssessmentEventData{
		SkillLevel: skillLevel,
		Score:      score,
	}); err != nil {
		e.warn(fmt.Errorf("log assessment: %w", err))
	}

	if awarded := e.awardAchievements(ctx); len(awarded) > 0 {
		e.state.RefreshUnlocked()
	}
	return e.persist(ctx)
}
