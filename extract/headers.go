package extract

import "sort"

// TargetHeaders are the column labels a tally sheet grid is recognized by:
// vessel (S.S), port of loading, port of discharge, operator code, and the
// per-ISO-type container count columns.
var TargetHeaders = []string{
	"S.S", "POL", "POD", "OPR",
	"2210", "4510", "45G0", "45G1", "4310", "4363", "4532",
	"E", "F",
}

var targetSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(TargetHeaders))
	for _, h := range TargetHeaders {
		set[h] = struct{}{}
	}
	return set
}()

// band is one detected column: the header label plus the horizontal range
// a cell word's left edge must fall into.
type band struct {
	label string
	x0    float64
	x1    float64
}

// detectBands scans a page's words for target header labels. Each match
// becomes a column band widened by pad on both sides to absorb sub-pixel
// offsets in the source PDF. Bands come back sorted left to right; that
// ordering is the page's column order, and on repeated labels the
// leftmost occurrence wins any band overlap downstream.
func detectBands(words []Word, pad float64) []band {
	var bands []band
	for _, w := range words {
		if _, ok := targetSet[w.Text]; ok {
			bands = append(bands, band{label: w.Text, x0: w.X0 - pad, x1: w.X1 + pad})
		}
	}
	sort.SliceStable(bands, func(i, j int) bool { return bands[i].x0 < bands[j].x0 })
	return bands
}

// labels returns the column labels of bands in band order.
func labels(bands []band) []string {
	out := make([]string, len(bands))
	for i, b := range bands {
		out[i] = b.label
	}
	return out
}
