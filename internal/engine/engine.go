// Package engine is the stateful progression service. Every public
// operation runs to completion and persists before returning; there is
// exactly one logical writer per user per process, so no locking is done.
// In a multi-process setup the persisted blob is last-writer-wins.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/charlieanna/idlecampus/internal/catalog"
	"github.com/charlieanna/idlecampus/internal/progress"
	"github.com/charlieanna/idlecampus/internal/store"
)

var (
	ErrUnknownChallenge = errors.New("unknown challenge")
	ErrChallengeLocked  = errors.New("challenge is locked")
	ErrInvalidLevel     = errors.New("level must be between 1 and 5")
	ErrInvalidScore     = errors.New("score must be between 0 and 100")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidSkill     = errors.New("skill level must be beginner, intermediate, or advanced")
)

// snapshotKeep is how many profile snapshots survive pruning.
const snapshotKeep = 20

// Engine mutates one user's progress in response to learning events.
type Engine struct {
	state     *progress.State
	snapshots store.SnapshotRepo
	events    store.EventRepo
	seq       int64
	now       func() time.Time
	warn      func(error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source, used by tests to control
// streak day boundaries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithWarnFunc sets the callback that receives recoverable load problems,
// e.g. a corrupt snapshot that was absorbed into a fresh profile.
func WithWarnFunc(warn func(error)) Option {
	return func(e *Engine) { e.warn = warn }
}

// New creates an engine, hydrating state from the latest snapshot. A
// missing snapshot starts a fresh profile with a generated user id; an
// unreadable one does the same but reports through the warning callback
// instead of failing, so a corrupt blob never blocks local progress.
func New(ctx context.Context, snapshots store.SnapshotRepo, events store.EventRepo, opts ...Option) (*Engine, error) {
	e := &Engine{
		snapshots: snapshots,
		events:    events,
		now:       time.Now,
		warn:      func(error) {},
	}
	for _, opt := range opts {
		opt(e)
	}

	snap, err := snapshots.Latest(ctx)
	if err != nil {
		e.warn(fmt.Errorf("progress snapshot unreadable, starting fresh: %w", err))
		snap = nil
	}

	if snap == nil {
		e.state = progress.New(uuid.NewString())
	} else {
		e.state = progress.FromSnapshot(&snap.Data)
		e.seq = snap.Sequence
		if e.state.UserID == "" {
			e.state.UserID = uuid.NewString()
		}
	}

	return e, nil
}

// UserID returns the profile's stable identifier.
func (e *Engine) UserID() string {
	return e.state.UserID
}

// Progress returns a deep-copied snapshot of the full progress state.
func (e *Engine) Progress() *progress.State {
	return e.state.Clone()
}

// ChallengeProgress returns a copy of one challenge's record, or nil if
// the challenge has not been started.
func (e *Engine) ChallengeProgress(challengeID string) *progress.ChallengeProgress {
	cp, ok := e.state.Challenges[challengeID]
	if !ok {
		return nil
	}
	c := *cp
	c.LevelsCompleted = append([]int(nil), cp.LevelsCompleted...)
	return &c
}

// TrackProgress returns a copy of one track's aggregate.
func (e *Engine) TrackProgress(track catalog.Track) *progress.TrackProgress {
	tp, ok := e.state.Tracks[track]
	if !ok {
		return nil
	}
	c := *tp
	return &c
}

// Reset discards all progress and starts a fresh profile for the same
// user id. The event log is retained as history.
func (e *Engine) Reset(ctx context.Context) error {
	e.state = progress.New(e.state.UserID)
	return e.persist(ctx)
}

// persist writes the profile through to the store. Pruning is best effort.
func (e *Engine) persist(ctx context.Context) error {
	e.seq++
	err := e.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  e.seq,
		Timestamp: e.now(),
		Data:      progress.ToSnapshot(e.state, e.now()),
	})
	if err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	if err := e.snapshots.Prune(ctx, snapshotKeep); err != nil {
		e.warn(fmt.Errorf("prune snapshots: %w", err))
	}
	return nil
}
