// Package anim provides time-stepped value animators. An Animator has no clock
// of its own: the owner advances it with Tick from its frame loop and reads the
// current value back, which keeps every transition on the caller's goroutine.
package anim

import (
	"math"
	"time"
)

// Direction selects which end of the range an animation starts from.
type Direction int

const (
	Forward Direction = iota // from -> to
	Reverse                  // to -> from
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Interpolator maps linear time progress in [0,1] to value progress in [0,1].
type Interpolator func(t float64) float64

// Linear moves at constant speed.
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly, moving fastest in the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// DefaultDuration matches the platform default for property animations.
const DefaultDuration = 300 * time.Millisecond

// Animator interpolates a scalar between two values over a fixed duration.
type Animator struct {
	from         float64
	to           float64
	duration     time.Duration
	interpolator Interpolator

	direction Direction
	elapsed   time.Duration
	running   bool
	completed bool
	value     float64
	last      float64
}

// Option customises a new Animator.
type Option func(*Animator)

// WithInterpolator replaces the default AccelerateDecelerate easing.
func WithInterpolator(i Interpolator) Option {
	return func(a *Animator) {
		if i != nil {
			a.interpolator = i
		}
	}
}

// New creates an idle animator resting at from.
func New(from, to float64, duration time.Duration, opts ...Option) *Animator {
	a := &Animator{
		from:         from,
		to:           to,
		duration:     duration,
		interpolator: AccelerateDecelerate,
		value:        from,
		last:         from,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start begins a run in the given direction. Starting while running cancels the
// previous run and restarts from the direction's start value.
func (a *Animator) Start(dir Direction) {
	a.direction = dir
	a.elapsed = 0
	a.completed = false
	a.running = true
	a.value = a.StartValue()
	a.last = a.value

	if a.duration <= 0 {
		a.End()
	}
}

// Tick advances a running animation by dt and returns the new value.
// Ticking an idle animator returns the current value and changes nothing.
func (a *Animator) Tick(dt time.Duration) float64 {
	if !a.running {
		a.last = a.value
		return a.value
	}
	if dt < 0 {
		dt = 0
	}

	a.last = a.value
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		a.value = a.EndValue()
		a.running = false
		a.completed = true
		return a.value
	}

	fraction := a.interpolator(float64(a.elapsed) / float64(a.duration))
	start, end := a.StartValue(), a.EndValue()
	a.value = start + (end-start)*fraction
	return a.value
}

// End jumps a running animation to its end value and marks it complete.
func (a *Animator) End() {
	if !a.running && a.completed {
		return
	}
	a.last = a.value
	a.elapsed = a.duration
	a.value = a.EndValue()
	a.running = false
	a.completed = true
}

// Cancel stops the animation where it is without completing it.
func (a *Animator) Cancel() {
	a.running = false
	a.completed = false
}

// Value is the current animated value.
func (a *Animator) Value() float64 {
	return a.value
}

// Delta is the change in value produced by the most recent Tick.
func (a *Animator) Delta() float64 {
	return a.value - a.last
}

// IsRunning reports whether a run is in flight.
func (a *Animator) IsRunning() bool {
	return a.running
}

// IsComplete reports whether the latest run reached its end value.
func (a *Animator) IsComplete() bool {
	return a.completed
}

// Direction is the direction of the current or most recent run.
func (a *Animator) Direction() Direction {
	return a.direction
}

// Duration is the length of one full run.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// StartValue is where the current direction begins.
func (a *Animator) StartValue() float64 {
	if a.direction == Reverse {
		return a.to
	}
	return a.from
}

// EndValue is where the current direction finishes.
func (a *Animator) EndValue() float64 {
	if a.direction == Reverse {
		return a.from
	}
	return a.to
}

// SetRange changes the animated range. A run in flight keeps going towards the new end.
func (a *Animator) SetRange(from, to float64) {
	a.from = from
	a.to = to
}
