package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charleschow/sportshunt/internal/core/registry"
	"github.com/charleschow/sportshunt/internal/core/snapshot"
	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type restoredMatch struct {
	summary game.Summary
	savedAt time.Time
	raw     string
}

// restore rebuilds a match from its snapshot without opening a live
// context, so nothing is written back.
func restore(ctx context.Context, reg *registry.Registry, store snapshot.Store, sport events.Sport) (restoredMatch, error) {
	data, err := store.Load(ctx, sport)
	if err != nil {
		return restoredMatch{}, err
	}
	m, err := reg.NewMatch(sport, nil)
	if err != nil {
		return restoredMatch{}, err
	}
	if err := m.RestoreSnapshot(data); err != nil {
		return restoredMatch{}, err
	}

	var meta struct {
		SavedAt time.Time       `json:"saved_at"`
		Journal json.RawMessage `json:"journal"`
	}
	_ = json.Unmarshal(data, &meta)
	return restoredMatch{summary: m.Summary(), savedAt: meta.SavedAt, raw: string(meta.Journal)}, nil
}
