// SPDX-License-Identifier: MIT
// Package: fsklab/analysis
//
// errors.go — sentinel errors for window analysis.

package analysis

import (
	"errors"
	"fmt"
)

// ErrTooFewSamples reports a spectrum request on fewer than MinSpectrumSamples samples.
var ErrTooFewSamples = errors.New("analysis: too few samples")

// ErrDegenerateSpan reports samples whose time span is zero or not finite, so
// no sample rate can be derived.
var ErrDegenerateSpan = errors.New("analysis: degenerate time span")

func analysisErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
