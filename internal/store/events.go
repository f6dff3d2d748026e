package store

import (
	"context"
	"fmt"

	"github.com/charlieanna/idlecampus/ent"
	"github.com/charlieanna/idlecampus/ent/completionevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetChallengeID(data.ChallengeID).
		SetLevel(data.Level).
		SetScore(data.Score).
		SetTimeSpentMinutes(data.TimeSpentMinutes).
		SetHintsUsed(data.HintsUsed).
		SetSolutionViewed(data.SolutionViewed).
		SetXpEarned(data.XPEarned).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetChallengeID(data.ChallengeID).
		SetHintsTotal(data.HintsTotal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSolutionView(ctx context.Context, challengeID string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SolutionEvent.Create().
		SetSequence(seqNum).
		SetChallengeID(challengeID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save solution event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAchievement(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetAchievementID(data.AchievementID).
		SetRarity(data.Rarity).
		SetCategory(data.Category).
		SetXpReward(data.XPReward).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSkillLevel(data.SkillLevel).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error) {
	query := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(completionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionRecord, len(events))
	for i, e := range events {
		records[i] = CompletionRecord{
			CompletionEventData: CompletionEventData{
				ChallengeID:      e.ChallengeID,
				Level:            e.Level,
				Score:            e.Score,
				TimeSpentMinutes: e.TimeSpentMinutes,
				HintsUsed:        e.HintsUsed,
				SolutionViewed:   e.SolutionViewed,
				XPEarned:         e.XpEarned,
				Passed:           e.Passed,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) CompletionCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.CompletionEvent.Query().
		Where(completionevent.Passed(true)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query completion counts: %w", err)
	}

	byChallenge := make(map[string]int)
	for _, e := range events {
		byChallenge[e.ChallengeID]++
	}

	return byChallenge, len(events), nil
}
