// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Style controls the appearance of a single chart. Zero values are not
// usable; start from DefaultStyle and override fields as needed.
type Style struct {
	Width     vg.Length
	Height    vg.Length
	LineWidth vg.Length
	GridAlpha float64 // grid line opacity in [0,1]
	TitleSize vg.Length
	LabelSize vg.Length
}

// DefaultStyle returns the house style: a 10x8 inch canvas with a
// readable title and light grid.
func DefaultStyle() Style {
	return Style{
		Width:     10 * vg.Inch,
		Height:    8 * vg.Inch,
		LineWidth: vg.Points(2),
		GridAlpha: 0.3,
		TitleSize: vg.Points(14),
		LabelSize: vg.Points(12),
	}
}

func (st Style) apply(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = st.TitleSize
	p.X.Label.TextStyle.Font.Size = st.LabelSize
	p.Y.Label.TextStyle.Font.Size = st.LabelSize
}

// Save writes the plot to path at the style's canvas size. The image
// format is derived from the file extension (png, svg, pdf, ...).
func Save(p *plot.Plot, path string, st Style) error {
	return p.Save(st.Width, st.Height, path)
}
