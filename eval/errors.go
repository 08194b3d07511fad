// SPDX-License-Identifier: EPL-2.0

package eval

import "errors"

var (
	// ErrLengthMismatch indicates scores and labels of different lengths.
	ErrLengthMismatch = errors.New("scores and labels differ in length")

	// ErrDegenerateLabels indicates labels containing only one class,
	// for which a ROC curve is undefined.
	ErrDegenerateLabels = errors.New("labels must contain both classes")

	// ErrBadProbabilityShape indicates probability rows that do not have
	// exactly two columns.
	ErrBadProbabilityShape = errors.New("probability rows must have exactly two columns")
)
