// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunjik/aimdkit/eval"
)

var (
	testScores = eval.ScalarScores{0.9, 0.1, 0.8, 0.2, 0.6, 0.4}
	testLabels = []int{1, 0, 1, 0, 1, 0}
)

func TestROCCurve(t *testing.T) {
	t.Parallel()

	p, err := ROCCurve(testScores, testLabels, "", DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, "ROC Curve", p.Title.Text)
	assert.Equal(t, "False Positive Rate", p.X.Label.Text)

	p, err = ROCCurve(testScores, testLabels, "Demo Model", DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, "Demo Model", p.Title.Text)
}

func TestROCCurve_DegenerateLabels(t *testing.T) {
	t.Parallel()

	_, err := ROCCurve(eval.ScalarScores{0.1, 0.9}, []int{1, 1}, "", DefaultStyle())
	assert.ErrorIs(t, err, eval.ErrDegenerateLabels)
}

func TestConfusionMatrix(t *testing.T) {
	t.Parallel()

	p, err := ConfusionMatrix(testScores, testLabels, 0.5, "", DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, "Confusion Matrix", p.Title.Text)
	assert.Equal(t, "Predicted Label", p.X.Label.Text)
	assert.Equal(t, "True Label", p.Y.Label.Text)
}

func TestConfusionMatrix_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := ConfusionMatrix(eval.ScalarScores{0.5}, []int{1, 0}, 0.5, "", DefaultStyle())
	assert.ErrorIs(t, err, eval.ErrLengthMismatch)
}

func TestSave(t *testing.T) {
	t.Parallel()

	p, err := ROCCurve(testScores, testLabels, "Saved", DefaultStyle())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roc.png")
	require.NoError(t, Save(p, path, DefaultStyle()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
