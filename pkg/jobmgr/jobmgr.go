// Package jobmgr provides named, cancellable background jobs with
// replace-and-cancel semantics and in-memory tracking.
//
// Typical usage:
//
//	jm := jobmgr.NewManager(func(msg string) {
//	    log.Println("JOB:", msg)
//	})
//
//	jm.StartReplace("idle:123", func(ctx context.Context) error {
//	    // do work until ctx is cancelled
//	    return nil
//	})
//
//	// later...
//	_ = jm.Stop("idle:123")
//
// At most one job per name is live at any time: starting a job under a name
// that is already running cancels the previous job first. The package is
// intentionally minimal: no retry logic, no workers, no persistence.
package jobmgr

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Job represents a running unit of work.
// Jobs are added and removed by Manager automatically.
type Job struct {
	Name   string
	Cancel context.CancelFunc
}

// StatusReporter receives lifecycle events for jobs.
// Example messages:
//
//	running:idle:123
//	error:idle:123:context canceled
//	done:idle:123
type StatusReporter func(string)

// Manager orchestrates starting, stopping and tracking jobs.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	jobs     map[string]*Job
	Reporter StatusReporter
}

// NewManager creates a new Manager.
// The reporter callback may be nil.
func NewManager(reporter StatusReporter) *Manager {
	return &Manager{
		jobs:     make(map[string]*Job),
		Reporter: reporter,
	}
}

// StartReplace runs a job in a separate goroutine and returns immediately.
// If a job with the same name is already running, it is cancelled and
// replaced, so at most one job per name is ever live.
// Jobs remove themselves after completion (success, failure or cancellation).
func (m *Manager) StartReplace(name string, runner func(ctx context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	job := &Job{Name: name, Cancel: cancel}

	m.mu.Lock()
	if prev, exists := m.jobs[name]; exists {
		prev.Cancel()
	}
	m.jobs[name] = job
	m.mu.Unlock()

	go func() {
		m.report("running:" + name)

		err := runner(ctx)
		if err != nil {
			m.report("error:" + name + ":" + err.Error())
		} else {
			m.report("done:" + name)
		}

		m.mu.Lock()
		// Only remove our own entry; a replacement may already be installed.
		if cur, ok := m.jobs[name]; ok && cur == job {
			delete(m.jobs, name)
		}
		m.mu.Unlock()
	}()
}

// Stop cancels a running job by name.
// If the job is not running, an error is returned.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job '%s' not running", name)
	}

	job.Cancel()
	delete(m.jobs, name)
	return nil
}

// StopAll cancels every running job. Used as a shutdown hook so no timer or
// updater outlives the process intent.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, job := range m.jobs {
		job.Cancel()
		delete(m.jobs, name)
	}
}

// Running reports whether a job with the given name is currently live.
func (m *Manager) Running(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.jobs[name]
	return ok
}

// List returns the list of active job names.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	return out
}

// Status returns a human-readable summary of active jobs.
// Example:
//
//	"Running jobs: idle:123, npupdate:123"
//
// If none are running: "No jobs are running."
func (m *Manager) Status() string {
	active := m.List()
	if len(active) == 0 {
		return "No jobs are running."
	}
	return fmt.Sprintf("Running jobs: %s", strings.Join(active, ", "))
}

// report delivers lifecycle messages to the reporter if present.
func (m *Manager) report(s string) {
	if m.Reporter != nil {
		m.Reporter(s)
	}
}
