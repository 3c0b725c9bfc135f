//go:build !linux

package internal

import (
	"context"
	"errors"
)

// ErrTouchUnsupported is returned by OpenTouch off Linux.
var ErrTouchUnsupported = errors.New("raw touch input requires linux evdev")

// TouchReader is unavailable on this platform.
type TouchReader struct{}

// OpenTouch always fails off Linux.
func OpenTouch(cfg TouchConfig) (*TouchReader, error) {
	return nil, ErrTouchUnsupported
}

// Run returns immediately.
func (r *TouchReader) Run(ctx context.Context, out chan<- TouchEvent) error {
	return ErrTouchUnsupported
}

// Close does nothing.
func (r *TouchReader) Close() {}
