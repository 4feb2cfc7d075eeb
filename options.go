// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aa

// CircleOption configures DrawCircle and FillCircle.
//
// Example:
//
//	// Smoother rim for a large circle
//	aa.DrawCircle(c, center, 200, color, aa.WithCircleSteps(90))
type CircleOption func(*circleOptions)

// circleOptions holds optional circle configuration.
type circleOptions struct {
	steps int // samples per quarter circle, 0 = automatic
}

func newCircleOptions(opts []CircleOption) circleOptions {
	var o circleOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCircleSteps sets the number of samples taken per quarter circle.
// Values <= 0 select the automatic count: one per pixel of radius,
// between 4 and 90.
func WithCircleSteps(n int) CircleOption {
	return func(o *circleOptions) {
		o.steps = n
	}
}
