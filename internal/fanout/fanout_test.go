package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunAllSucceed(t *testing.T) {
	var users, spaces []string

	report := Run(context.Background(),
		Task{Name: "users", Fn: func(ctx context.Context) error {
			users = []string{"ana", "luis"}
			return nil
		}},
		Task{Name: "spaces", Fn: func(ctx context.Context) error {
			spaces = []string{"Sala A"}
			return nil
		}},
	)

	assert.True(t, report.OK())
	assert.Empty(t, report.Failed())
	assert.NoError(t, report.Err())
	assert.Len(t, users, 2)
	assert.Len(t, spaces, 1)
}

func TestRunIsolatesFailures(t *testing.T) {
	boom := errors.New("boom")
	var spaces []string

	report := Run(context.Background(),
		Task{Name: "users", Fn: func(ctx context.Context) error { return boom }},
		Task{Name: "spaces", Fn: func(ctx context.Context) error {
			// A sibling failure must not cancel this task.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(20 * time.Millisecond):
			}
			spaces = []string{"Sala A"}
			return nil
		}},
	)

	assert.False(t, report.OK())
	assert.False(t, report.AllFailed())
	assert.Equal(t, []string{"users"}, report.Failed())
	assert.ErrorIs(t, report.Err(), boom)
	assert.ErrorContains(t, report.Err(), "users: boom")
	assert.Equal(t, []string{"Sala A"}, spaces)
}

func TestRunWaitsForEveryTask(t *testing.T) {
	var done atomic.Int32
	tasks := make([]Task, 4)
	for i := range tasks {
		tasks[i] = Task{Name: "t", Fn: func(ctx context.Context) error {
			time.Sleep(10 * time.Millisecond)
			done.Add(1)
			return nil
		}}
	}

	Run(context.Background(), tasks...)
	assert.Equal(t, int32(4), done.Load())
}

func TestAllFailed(t *testing.T) {
	fail := func(ctx context.Context) error { return errors.New("x") }

	assert.True(t, Run(context.Background(), Task{Name: "a", Fn: fail}, Task{Name: "b", Fn: fail}).AllFailed())
	assert.False(t, Run(context.Background()).AllFailed())
}
