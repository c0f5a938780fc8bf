package diagram

import (
	"github.com/guptarohit/asciigraph"
)

// DrawAgreementChart plots one fraction in [0, 1] per sweep start
// angle, typically the share of samples on which two hit tests agree.
func DrawAgreementChart(values []float64, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption(caption),
	)
}
