package jobmgr

import (
	"context"
	"testing"
	"time"
)

func TestStartReplaceCancelsPrevious(t *testing.T) {
	m := NewManager(nil)

	firstCancelled := make(chan struct{})
	m.StartReplace("idle:1", func(ctx context.Context) error {
		<-ctx.Done()
		close(firstCancelled)
		return ctx.Err()
	})

	secondRunning := make(chan struct{})
	m.StartReplace("idle:1", func(ctx context.Context) error {
		close(secondRunning)
		<-ctx.Done()
		return ctx.Err()
	})

	select {
	case <-firstCancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("first job was not cancelled by its replacement")
	}

	select {
	case <-secondRunning:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement job never started")
	}

	if !m.Running("idle:1") {
		t.Error("expected replacement job to be tracked as running")
	}
	if got := len(m.List()); got != 1 {
		t.Errorf("expected exactly one live job, got %d", got)
	}
}

func TestStopUnknownJob(t *testing.T) {
	m := NewManager(nil)
	if err := m.Stop("nope"); err == nil {
		t.Error("expected error stopping a job that is not running")
	}
}

func TestJobRemovedOnCompletion(t *testing.T) {
	m := NewManager(nil)

	done := make(chan struct{})
	m.StartReplace("oneshot", func(ctx context.Context) error {
		close(done)
		return nil
	})

	<-done
	deadline := time.After(2 * time.Second)
	for m.Running("oneshot") {
		select {
		case <-deadline:
			t.Fatal("completed job still tracked as running")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStopAll(t *testing.T) {
	m := NewManager(nil)

	cancelled := make(chan string, 2)
	for _, name := range []string{"idle:1", "npupdate:1"} {
		name := name
		m.StartReplace(name, func(ctx context.Context) error {
			<-ctx.Done()
			cancelled <- name
			return ctx.Err()
		})
	}

	m.StopAll()

	for i := 0; i < 2; i++ {
		select {
		case <-cancelled:
		case <-time.After(2 * time.Second):
			t.Fatal("StopAll did not cancel every job")
		}
	}
	if got := len(m.List()); got != 0 {
		t.Errorf("expected no live jobs after StopAll, got %d", got)
	}
}

func TestReporterMessages(t *testing.T) {
	msgs := make(chan string, 4)
	m := NewManager(func(s string) { msgs <- s })

	m.StartReplace("report", func(ctx context.Context) error { return nil })

	want := map[string]bool{"running:report": false, "done:report": false}
	for i := 0; i < 2; i++ {
		select {
		case s := <-msgs:
			if _, ok := want[s]; !ok {
				t.Errorf("unexpected reporter message %q", s)
			}
			want[s] = true
		case <-time.After(2 * time.Second):
			t.Fatal("reporter messages not delivered")
		}
	}
}
