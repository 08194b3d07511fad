// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize indicates a destination buffer whose length is not a
	// multiple of the channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidSegmentDuration indicates a non-positive segment duration.
	ErrInvalidSegmentDuration = errors.New("segment duration must be positive")

	// ErrUnknownNormMethod indicates an unrecognized normalization method.
	ErrUnknownNormMethod = errors.New("unknown normalization method")
)
