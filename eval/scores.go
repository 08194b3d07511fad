// SPDX-License-Identifier: EPL-2.0

package eval

// Scores is a vector of per-sample detector outputs. The two concrete
// forms are ScalarScores for a plain score per sample and
// ClassProbabilities for two-column class-probability rows; both resolve
// to the positive-class score via Positive. Resolution happens once at
// the API boundary so every metric below works on a flat float64 slice.
type Scores interface {
	// Positive returns the positive-class (class 1) score per sample.
	Positive() ([]float64, error)
}

// ScalarScores holds one score per sample, already expressing confidence
// in the positive class.
type ScalarScores []float64

func (s ScalarScores) Positive() ([]float64, error) {
	return s, nil
}

// ClassProbabilities holds one [P(human), P(AI)] row per sample. Column 1
// is the positive class.
type ClassProbabilities [][]float64

func (p ClassProbabilities) Positive() ([]float64, error) {
	out := make([]float64, len(p))
	for i, row := range p {
		if len(row) != 2 {
			return nil, ErrBadProbabilityShape
		}
		out[i] = row[1]
	}
	return out, nil
}
