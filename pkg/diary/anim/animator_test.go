package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimator_ForwardRun(t *testing.T) {
	a := New(0, 100, 100*time.Millisecond, WithInterpolator(Linear))
	a.Start(Forward)

	require.True(t, a.IsRunning())
	assert.False(t, a.IsComplete())
	assert.Equal(t, 0.0, a.Value())

	assert.InDelta(t, 25.0, a.Tick(25*time.Millisecond), 1e-9)
	assert.InDelta(t, 25.0, a.Delta(), 1e-9)

	assert.InDelta(t, 75.0, a.Tick(50*time.Millisecond), 1e-9)
	assert.InDelta(t, 50.0, a.Delta(), 1e-9)

	assert.Equal(t, 100.0, a.Tick(time.Second))
	assert.True(t, a.IsComplete())
	assert.False(t, a.IsRunning())
}

func TestAnimator_ReverseRun(t *testing.T) {
	a := New(20, 175, 300*time.Millisecond)
	a.Start(Reverse)
	assert.Equal(t, 175.0, a.Value())

	for a.IsRunning() {
		a.Tick(16 * time.Millisecond)
		assert.LessOrEqual(t, a.Delta(), 0.0, "reverse run never moves upwards")
	}
	assert.Equal(t, 20.0, a.Value())
	assert.True(t, a.IsComplete())
}

func TestAnimator_RestartCancelsPreviousRun(t *testing.T) {
	a := New(0, 10, 100*time.Millisecond, WithInterpolator(Linear))
	a.Start(Forward)
	a.Tick(50 * time.Millisecond)

	a.Start(Forward)
	assert.Equal(t, 0.0, a.Value())
	assert.InDelta(t, 1.0, a.Tick(10*time.Millisecond), 1e-9)
}

func TestAnimator_IdleTickIsNoop(t *testing.T) {
	a := New(5, 10, time.Second)
	assert.Equal(t, 5.0, a.Tick(time.Second))
	assert.Equal(t, 0.0, a.Delta())
	assert.False(t, a.IsComplete())
}

func TestAnimator_ZeroDurationCompletesImmediately(t *testing.T) {
	a := New(0, 42, 0)
	a.Start(Forward)
	assert.True(t, a.IsComplete())
	assert.Equal(t, 42.0, a.Value())
}

func TestAnimator_EndAndCancel(t *testing.T) {
	a := New(0, 10, time.Second)
	a.Start(Forward)
	a.Tick(100 * time.Millisecond)
	a.End()
	assert.True(t, a.IsComplete())
	assert.Equal(t, 10.0, a.Value())

	a.Start(Reverse)
	a.Tick(100 * time.Millisecond)
	a.Cancel()
	assert.False(t, a.IsRunning())
	assert.False(t, a.IsComplete())
}

func TestAccelerateDecelerate(t *testing.T) {
	assert.InDelta(t, 0.0, AccelerateDecelerate(0), 1e-9)
	assert.InDelta(t, 0.5, AccelerateDecelerate(0.5), 1e-9)
	assert.InDelta(t, 1.0, AccelerateDecelerate(1), 1e-9)
	assert.Less(t, AccelerateDecelerate(0.1), 0.1)
}
