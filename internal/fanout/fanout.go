// Package fanout runs independent upstream fetches concurrently and joins
// them before a page renders. Failures are isolated per task: one failing
// fetch never cancels or discards the others.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task is one independent fetch. Fn must only write to state it owns.
type Task struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Report holds the outcome of every task, in the order they were given.
type Report struct {
	names []string
	errs  []error
}

// Run starts every task on its own goroutine and waits for all of them.
func Run(ctx context.Context, tasks ...Task) *Report {
	r := &Report{
		names: make([]string, len(tasks)),
		errs:  make([]error, len(tasks)),
	}

	// A plain Group, not WithContext: a failure must not cancel its siblings.
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		r.names[i] = task.Name
		g.Go(func() error {
			r.errs[i] = task.Fn(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return r
}

// OK reports whether every task succeeded.
func (r *Report) OK() bool {
	return r.Err() == nil
}

// Failed returns the names of the tasks that failed.
func (r *Report) Failed() []string {
	var failed []string
	for i, err := range r.errs {
		if err != nil {
			failed = append(failed, r.names[i])
		}
	}
	return failed
}

// AllFailed reports whether there was at least one task and none succeeded.
func (r *Report) AllFailed() bool {
	return len(r.errs) > 0 && len(r.Failed()) == len(r.errs)
}

// Err joins every task error, each prefixed with its task name.
func (r *Report) Err() error {
	var joined []error
	for i, err := range r.errs {
		if err != nil {
			joined = append(joined, fmt.Errorf("%s: %w", r.names[i], err))
		}
	}
	return errors.Join(joined...)
}
