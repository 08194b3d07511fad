// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/sunjik/aimdkit/eval"
)

// confusionGrid adapts a 2x2 confusion matrix to the heatmap grid
// interface. Row index is the true label, column index the decision,
// with rows flipped so label 0 renders at the top.
type confusionGrid struct {
	cells [2][2]float64 // [true][predicted]
}

func (g confusionGrid) Dims() (c, r int)   { return 2, 2 }
func (g confusionGrid) X(c int) float64    { return float64(c) }
func (g confusionGrid) Y(r int) float64    { return float64(r) }
func (g confusionGrid) Z(c, r int) float64 { return g.cells[1-r][c] }

// ConfusionMatrix builds a 2x2 heatmap of decisions at the given
// threshold against true labels. Each cell is annotated with its count
// and its share of the true-label row.
func ConfusionMatrix(s eval.Scores, labels []int, threshold float64, title string, st Style) (*plot.Plot, error) {
	decisions, err := eval.Binarize(s, threshold)
	if err != nil {
		return nil, err
	}
	counts, err := eval.Confusion(decisions, labels)
	if err != nil {
		return nil, err
	}

	grid := confusionGrid{cells: [2][2]float64{
		{float64(counts.TN), float64(counts.FP)},
		{float64(counts.FN), float64(counts.TP)},
	}}

	p := plot.New()
	if title == "" {
		title = "Confusion Matrix"
	}
	p.Title.Text = title
	p.X.Label.Text = "Predicted Label"
	p.Y.Label.Text = "True Label"
	st.apply(p)

	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	classNames := []string{"Human (0)", "AI (1)"}
	xticks := make([]plot.Tick, 2)
	yticks := make([]plot.Tick, 2)
	for i, name := range classNames {
		xticks[i] = plot.Tick{Value: float64(i), Label: name}
		// Row 0 is drawn at the top of the grid.
		yticks[1-i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Min, p.X.Max = -0.5, 1.5
	p.Y.Min, p.Y.Max = -0.5, 1.5

	annotations := plotter.XYLabels{}
	for ti := 0; ti < 2; ti++ {
		rowTotal := grid.cells[ti][0] + grid.cells[ti][1]
		for pi := 0; pi < 2; pi++ {
			n := grid.cells[ti][pi]
			text := fmt.Sprintf("%.0f", n)
			if rowTotal > 0 {
				text = fmt.Sprintf("%.0f (%.1f%%)", n, 100*n/rowTotal)
			}
			annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(pi), Y: float64(1 - ti)})
			annotations.Labels = append(annotations.Labels, text)
		}
	}
	cellText, err := plotter.NewLabels(annotations)
	if err != nil {
		return nil, fmt.Errorf("cell labels: %w", err)
	}
	for i := range cellText.TextStyle {
		cellText.TextStyle[i].Font.Size = st.LabelSize
	}
	p.Add(cellText)

	return p, nil
}
