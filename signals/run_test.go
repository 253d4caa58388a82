//go:build unix

package signals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRunRequiresHandler(t *testing.T) {
	l := fakeListener(t, newFakeQueue(), 2)
	assert.ErrorIs(t, l.Run(context.Background(), nil), ErrNoHandler)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	q := newFakeQueue()
	l := fakeListener(t, q, 2)
	q.fired = []int{2}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []int
	err := l.Run(ctx, func(signo int) { got = append(got, signo) })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestDispatchRecoversPanic(t *testing.T) {
	var logged []string
	l := newListener(WithLogger(func(format string, args ...any) {
		logged = append(logged, format)
	}))

	require.NotPanics(t, func() {
		l.dispatch(func(int) { panic("boom") }, 2)
	})
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "panic in handler")

	logged = nil
	l.policy.LogPanics = false
	l.dispatch(func(int) { panic("quiet") }, 2)
	assert.Empty(t, logged)
}

func TestPollEvents(t *testing.T) {
	assert.NotZero(t, pollEvents(Readable))
	assert.EqualValues(t, unix.POLLIN, pollEvents(Readable))
	assert.Zero(t, pollEvents(0))
}

func TestPollTimeoutRoundsUp(t *testing.T) {
	assert.Equal(t, 0, pollTimeout(0))
	assert.Equal(t, 0, pollTimeout(-time.Second))
	assert.Equal(t, 1, pollTimeout(time.Nanosecond))
	assert.Equal(t, 1, pollTimeout(500*time.Microsecond))
	assert.Equal(t, 1, pollTimeout(time.Millisecond))
	assert.Equal(t, 2, pollTimeout(1001*time.Microsecond))
	assert.Equal(t, 100, pollTimeout(100*time.Millisecond))
}
