package viz

import (
	"strconv"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/scenekit/internal/xmltree"
)

// Stiffness collects k of every spring in document order. Springs with a
// non-numeric k are skipped.
func Stiffness(root *xmltree.Element) []float64 {
	var ks []float64
	root.Walk(func(el *xmltree.Element, _ int) {
		if el.Tag != "spring" {
			return
		}
		v, _ := el.Get("k")
		if k, err := strconv.ParseFloat(v, 64); err == nil {
			ks = append(ks, k)
		}
	})
	return ks
}

// StiffnessPlot graphs spring stiffness against spring index. It returns an
// empty string when there is nothing to plot.
func StiffnessPlot(ks []float64, width int) string {
	if len(ks) == 0 {
		return ""
	}
	if len(ks) == 1 {
		ks = []float64{ks[0], ks[0]}
	}
	return asciigraph.Plot(ks,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption("spring stiffness (k) by index"),
	)
}
