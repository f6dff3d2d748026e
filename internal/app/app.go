// Package app wires the store, engine, and optional remote mirror into
// one unit the CLI commands share.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charlieanna/idlecampus/internal/engine"
	"github.com/charlieanna/idlecampus/internal/mirror"
	"github.com/charlieanna/idlecampus/internal/store"
)

// Service is the mutation surface commands talk to. The engine satisfies
// it directly; when a remote backend is configured the mirror decorator
// does, adding replay side effects.
type Service = mirror.Engine

// App owns the wired dependencies for one invocation.
type App struct {
	Store  *store.Store
	Engine *engine.Engine
	Mirror *mirror.Service // nil unless IDLECAMPUS_API_URL is set
}

// New opens the store at dbPath and hydrates the engine from it. Warnings
// (corrupt snapshots, failed background syncs) go to stderr.
func New(ctx context.Context, dbPath string) (*App, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	warn := func(err error) {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	eng, err := engine.New(ctx, st.SnapshotRepo(), st.EventRepo(), engine.WithWarnFunc(warn))
	if err != nil {
		st.Close()
		return nil, err
	}

	a := &App{Store: st, Engine: eng}

	cfg, err := mirror.LoadConfig()
	if err != nil {
		warn(err)
	} else if cfg.Enabled() {
		a.Mirror = mirror.Wrap(eng, mirror.NewClient(cfg), warn)
	}

	return a, nil
}

// Service returns the mirror when one is configured, the bare engine
// otherwise.
func (a *App) Service() Service {
	if a.Mirror != nil {
		return a.Mirror
	}
	return a.Engine
}

// Close flushes in-flight mirror replays and releases the store.
func (a *App) Close() error {
	if a.Mirror != nil {
		a.Mirror.Close()
	}
	return a.Store.Close()
}
