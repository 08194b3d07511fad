// SPDX-License-Identifier: EPL-2.0

package eval

import (
	"fmt"
	"strings"
)

const reportRule = "============================================================"

// Report renders a human-readable evaluation summary for one model:
// threshold metrics at the default 0.5 boundary, error rates, AUC and
// EER, and the raw confusion counts. It composes Metrics, AUC and EER
// and does no computation of its own.
func Report(s Scores, labels []int, modelName string) (string, error) {
	summary, err := Metrics(s, labels, DefaultThreshold)
	if err != nil {
		return "", err
	}
	auc, err := AUC(s, labels)
	if err != nil {
		return "", err
	}
	eer, eerThreshold, err := EER(s, labels)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", reportRule)
	fmt.Fprintf(&b, "%s Evaluation Report\n", modelName)
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	b.WriteString("Classification Metrics:\n")
	b.WriteString("----------\n")
	fmt.Fprintf(&b, "Accuracy:    %.4f\n", summary.Accuracy)
	fmt.Fprintf(&b, "Precision:   %.4f\n", summary.Precision)
	fmt.Fprintf(&b, "Recall:      %.4f\n", summary.Recall)
	fmt.Fprintf(&b, "F1-Score:    %.4f\n", summary.F1)
	fmt.Fprintf(&b, "Specificity: %.4f\n\n", summary.Specificity)

	b.WriteString("Error Rates:\n")
	b.WriteString("----------\n")
	fmt.Fprintf(&b, "FPR: %.4f\n", summary.FPR)
	fmt.Fprintf(&b, "FNR: %.4f\n", summary.FNR)
	fmt.Fprintf(&b, "EER: %.4f (threshold: %.4f)\n\n", eer, eerThreshold)

	b.WriteString("ROC Analysis:\n")
	b.WriteString("----------\n")
	fmt.Fprintf(&b, "AUC-ROC: %.4f\n\n", auc)

	b.WriteString("Confusion Matrix:\n")
	b.WriteString("----------\n")
	fmt.Fprintf(&b, "True Positives  (AI as AI):       %d\n", summary.Counts.TP)
	fmt.Fprintf(&b, "True Negatives  (human as human): %d\n", summary.Counts.TN)
	fmt.Fprintf(&b, "False Positives (human as AI):    %d\n", summary.Counts.FP)
	fmt.Fprintf(&b, "False Negatives (AI as human):    %d\n\n", summary.Counts.FN)

	fmt.Fprintf(&b, "%s\n", reportRule)
	return b.String(), nil
}
