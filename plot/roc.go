// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sunjik/aimdkit/eval"
)

// ROCCurve builds a ROC chart for the given scores and labels: the curve
// itself with its AUC in the legend, the random-classifier diagonal, and
// a marker at the equal-error-rate operating point.
func ROCCurve(s eval.Scores, labels []int, title string, st Style) (*plot.Plot, error) {
	auc, curve, err := eval.ROCWithAUC(s, labels)
	if err != nil {
		return nil, err
	}
	eer, _, err := eval.EER(s, labels)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	if title == "" {
		title = "ROC Curve"
	}
	p.Title.Text = title
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	grid := plotter.NewGrid()
	gridColor := color.NRGBA{A: uint8(255 * st.GridAlpha)}
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)
	st.apply(p)

	pts := make(plotter.XYs, len(curve.FPR))
	for i := range pts {
		pts[i].X = curve.FPR[i]
		pts[i].Y = curve.TPR[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("roc line: %w", err)
	}
	line.LineStyle.Width = st.LineWidth
	line.LineStyle.Color = color.NRGBA{B: 255, A: 255}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("ROC Curve (AUC = %.3f)", auc), line)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	diag.LineStyle.Width = vg.Points(1)
	diag.LineStyle.Color = color.NRGBA{R: 255, A: 255}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diag)
	p.Legend.Add("Random Classifier", diag)

	// Mark the curve point closest to the EER rate.
	best := 0
	for i := range curve.FPR {
		if math.Abs(curve.FPR[i]-eer) < math.Abs(curve.FPR[best]-eer) {
			best = i
		}
	}
	marker, err := plotter.NewScatter(plotter.XYs{{X: curve.FPR[best], Y: curve.TPR[best]}})
	if err != nil {
		return nil, fmt.Errorf("eer marker: %w", err)
	}
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	marker.GlyphStyle.Radius = vg.Points(5)
	marker.GlyphStyle.Color = color.NRGBA{G: 180, A: 255}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("EER = %.3f", eer), marker)

	return p, nil
}
