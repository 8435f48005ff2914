package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thomasboyle/jackybot/internal/session"
	"github.com/thomasboyle/jackybot/pkg/jobmgr"
)

// newTestOrchestrator builds an orchestrator with no gateway and no audio
// backend client. Paths under test must reject before reaching either.
func newTestOrchestrator() (*Orchestrator, *session.Store) {
	store := session.NewStore()
	o := New(nil, store, jobmgr.NewManager(nil), nil, time.Second, time.Second, time.Second)
	return o, store
}

func TestPlayEmptyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"whitespace", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, store := newTestOrchestrator()

			_, err := o.Play(context.Background(), "guild", "user", "channel", tt.query, "someone")
			if !errors.Is(err, ErrEmptyQuery) {
				t.Fatalf("Play(%q) error = %v, want ErrEmptyQuery", tt.query, err)
			}
			if got := store.Len(); got != 0 {
				t.Errorf("Play(%q) created %d session(s), want none", tt.query, got)
			}
		})
	}
}

func TestPlayWithoutBackend(t *testing.T) {
	o, store := newTestOrchestrator()

	_, err := o.Play(context.Background(), "guild", "user", "channel", "some song", "someone")
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("Play without a backend node: error = %v, want ErrBackendUnavailable", err)
	}
	if got := store.Len(); got != 0 {
		t.Errorf("Play without a backend node created %d session(s), want none", got)
	}
}

func TestCommandsWithoutBackend(t *testing.T) {
	o, _ := newTestOrchestrator()
	ctx := context.Background()

	if _, err := o.Skip(ctx, "guild"); !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("Skip error = %v, want ErrBackendUnavailable", err)
	}
	if err := o.Stop(ctx, "guild"); !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("Stop error = %v, want ErrBackendUnavailable", err)
	}
	if err := o.SetPaused(ctx, "guild", true); !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("SetPaused error = %v, want ErrBackendUnavailable", err)
	}
	if _, _, err := o.SeekBy(ctx, "guild", 10); !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("SeekBy error = %v, want ErrBackendUnavailable", err)
	}
}
