// SPDX-License-Identifier: EPL-2.0

package eval

import (
	"math"
	"sort"
)

// Curve is a ROC curve: parallel FPR/TPR points for a descending sweep
// of decision thresholds. The first point is always (0,0) at a threshold
// above every score.
type Curve struct {
	FPR        []float64
	TPR        []float64
	Thresholds []float64
}

// ROC computes the ROC curve over all distinct score values, swept in
// descending order. Labels must contain at least one sample of each
// class, otherwise one of the rates is undefined.
func ROC(s Scores, labels []int) (Curve, error) {
	scores, err := s.Positive()
	if err != nil {
		return Curve{}, err
	}
	if len(scores) != len(labels) {
		return Curve{}, ErrLengthMismatch
	}

	positives, negatives := 0, 0
	for _, l := range labels {
		if l != 0 {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return Curve{}, ErrDegenerateLabels
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	curve := Curve{
		FPR:        []float64{0},
		TPR:        []float64{0},
		Thresholds: []float64{scores[order[0]] + 1},
	}

	tp, fp := 0, 0
	for i, idx := range order {
		if labels[idx] != 0 {
			tp++
		} else {
			fp++
		}
		// Emit one point per distinct score value, after all samples
		// tied at that score have been accumulated.
		if i+1 < len(order) && scores[order[i+1]] == scores[idx] {
			continue
		}
		curve.FPR = append(curve.FPR, float64(fp)/float64(negatives))
		curve.TPR = append(curve.TPR, float64(tp)/float64(positives))
		curve.Thresholds = append(curve.Thresholds, scores[idx])
	}

	return curve, nil
}

// AUC returns the area under the ROC curve by trapezoidal integration.
func AUC(s Scores, labels []int) (float64, error) {
	auc, _, err := ROCWithAUC(s, labels)
	return auc, err
}

// ROCWithAUC computes the ROC curve and its area in one pass, for
// callers that plot the curve alongside the score.
func ROCWithAUC(s Scores, labels []int) (float64, Curve, error) {
	curve, err := ROC(s, labels)
	if err != nil {
		return 0, Curve{}, err
	}
	auc := 0.0
	for i := 1; i < len(curve.FPR); i++ {
		auc += (curve.FPR[i] - curve.FPR[i-1]) * (curve.TPR[i] + curve.TPR[i-1]) / 2
	}
	return auc, curve, nil
}

// EER locates the equal error rate, the operating point where the false
// positive and false negative rates meet. It returns the rate and the
// threshold that produces it.
//
// The search is discrete: it picks the swept threshold minimizing
// |FPR-FNR| (first index on ties) and reports the mean of the two rates
// there. True EER lies where the two rate curves cross, so the result is
// an approximation at the resolution of the distinct score values.
func EER(s Scores, labels []int) (eer, threshold float64, err error) {
	curve, err := ROC(s, labels)
	if err != nil {
		return 0, 0, err
	}

	best := -1
	bestDiff := math.Inf(1)
	for i := range curve.FPR {
		fnr := 1 - curve.TPR[i]
		diff := math.Abs(curve.FPR[i] - fnr)
		if math.IsNaN(diff) {
			continue
		}
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	if best < 0 {
		return 0, 0, ErrDegenerateLabels
	}

	fnr := 1 - curve.TPR[best]
	return (curve.FPR[best] + fnr) / 2, curve.Thresholds[best], nil
}
