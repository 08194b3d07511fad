// SPDX-License-Identifier: EPL-2.0

package eval

// DefaultThreshold is the decision boundary used when callers have no
// tuned threshold of their own.
const DefaultThreshold = 0.5

// Binarize converts scores into 0/1 decisions using score >= threshold.
// The threshold is not range checked; values outside [0,1] are the
// caller's responsibility.
func Binarize(s Scores, threshold float64) ([]int, error) {
	scores, err := s.Positive()
	if err != nil {
		return nil, err
	}
	decisions := make([]int, len(scores))
	for i, score := range scores {
		if score >= threshold {
			decisions[i] = 1
		}
	}
	return decisions, nil
}

// ConfusionCounts holds the four cells of a binary confusion matrix.
// TP+TN+FP+FN always equals the number of samples.
type ConfusionCounts struct {
	TP int // AI classified as AI
	TN int // human classified as human
	FP int // human classified as AI
	FN int // AI classified as human
}

// Confusion tallies decisions against true labels. Any nonzero label
// counts as the positive class.
func Confusion(decisions, labels []int) (ConfusionCounts, error) {
	if len(decisions) != len(labels) {
		return ConfusionCounts{}, ErrLengthMismatch
	}
	var c ConfusionCounts
	for i, d := range decisions {
		switch {
		case labels[i] != 0 && d != 0:
			c.TP++
		case labels[i] != 0:
			c.FN++
		case d != 0:
			c.FP++
		default:
			c.TN++
		}
	}
	return c, nil
}

// Summary is the full set of threshold-dependent metrics for one
// scores/labels pair. Every ratio whose denominator is zero is reported
// as 0 rather than NaN; that is a deliberate policy, not an error.
type Summary struct {
	Accuracy    float64
	Precision   float64
	Recall      float64
	Specificity float64
	F1          float64
	FPR         float64
	FNR         float64
	Counts      ConfusionCounts
}

// Values returns the summary as a flat name-to-value map, confusion
// counts included as floats.
func (s Summary) Values() map[string]float64 {
	return map[string]float64{
		"accuracy":    s.Accuracy,
		"precision":   s.Precision,
		"recall":      s.Recall,
		"specificity": s.Specificity,
		"f1_score":    s.F1,
		"fpr":         s.FPR,
		"fnr":         s.FNR,
		"tp":          float64(s.Counts.TP),
		"tn":          float64(s.Counts.TN),
		"fp":          float64(s.Counts.FP),
		"fn":          float64(s.Counts.FN),
	}
}

// Metrics binarizes scores at the given threshold and derives the full
// Summary from the resulting confusion counts.
func Metrics(s Scores, labels []int, threshold float64) (Summary, error) {
	decisions, err := Binarize(s, threshold)
	if err != nil {
		return Summary{}, err
	}
	counts, err := Confusion(decisions, labels)
	if err != nil {
		return Summary{}, err
	}

	tp := float64(counts.TP)
	tn := float64(counts.TN)
	fp := float64(counts.FP)
	fn := float64(counts.FN)

	return Summary{
		Accuracy:    ratio(tp+tn, tp+tn+fp+fn),
		Precision:   ratio(tp, tp+fp),
		Recall:      ratio(tp, tp+fn),
		Specificity: ratio(tn, tn+fp),
		F1:          ratio(2*tp, 2*tp+fp+fn),
		FPR:         ratio(fp, fp+tn),
		FNR:         ratio(fn, fn+tp),
		Counts:      counts,
	}, nil
}

// Accuracy is the fraction of decisions matching labels at the given
// threshold. Empty input yields 0.
func Accuracy(s Scores, labels []int, threshold float64) (float64, error) {
	decisions, err := Binarize(s, threshold)
	if err != nil {
		return 0, err
	}
	if len(decisions) != len(labels) {
		return 0, ErrLengthMismatch
	}
	if len(labels) == 0 {
		return 0, nil
	}
	correct := 0
	for i, d := range decisions {
		want := 0
		if labels[i] != 0 {
			want = 1
		}
		if d == want {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
