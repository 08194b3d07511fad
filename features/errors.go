// SPDX-License-Identifier: EPL-2.0

package features

import "errors"

var (
	// ErrEmptySignal indicates an empty sample buffer.
	ErrEmptySignal = errors.New("empty signal")

	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")

	// ErrInvalidConfig indicates non-positive FFT or hop lengths.
	ErrInvalidConfig = errors.New("invalid analysis config")
)
