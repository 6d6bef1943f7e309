// Package extract turns raw PDF bytes into tally sheet tables.
//
// It uses ledongthuc/pdf (BSD-3, pure Go, no CGO) for positioned text
// extraction. Column boundaries are inferred from the layout coordinates
// of known header labels; rows are rebuilt by clustering words with
// similar vertical position. There is no generalized table model — pages
// without the known headers are skipped.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	quaycheck "github.com/portmatic/quaycheck"
)

// Extractor extracts one Table per page that carries at least one
// recognized header and at least one surviving row.
type Extractor struct {
	rowTolerance  float64
	headerPad     float64
	lineTolerance float64
	gapFactor     float64
	logger        *slog.Logger
}

// New creates an Extractor with default layout tolerances.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		rowTolerance:  5.0,
		headerPad:     5.0,
		lineTolerance: 3.0,
		gapFactor:     0.3,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the PDF and returns its tables in page order. Extraction
// is all-or-nothing: a fault on any page fails the whole document, there
// is no partial result.
func (e *Extractor) Extract(content []byte) (tables []quaycheck.Table, err error) {
	if len(content) == 0 {
		return nil, &quaycheck.ErrNoContent{Reason: "empty PDF payload"}
	}

	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		words := assembleWords(page.Content().Text, e.lineTolerance, e.gapFactor)
		if len(words) == 0 {
			continue
		}

		bands := detectBands(words, e.headerPad)
		if len(bands) == 0 {
			e.logger.Debug("page has no tally headers", "page", i)
			continue
		}

		table, ok := buildTable(words, bands, e.rowTolerance)
		if !ok {
			continue
		}
		e.logger.Debug("extracted page table", "page", i, "columns", len(table.Columns), "rows", len(table.Rows))
		tables = append(tables, table)
	}

	return tables, nil
}

// buildTable buckets words into rows anchored at each distinct vertical
// position and assigns every word to the first band containing its left
// edge. ok is false when no row survives filtering.
func buildTable(words []Word, bands []band, rowTolerance float64) (quaycheck.Table, bool) {
	cols := labels(bands)

	var rows [][]string
	for _, y := range rowAnchors(words) {
		cells := make([]string, len(bands))
		for _, w := range words {
			if math.Abs(w.Top-y) >= rowTolerance {
				continue
			}
			for i, b := range bands {
				if b.x0 <= w.X0 && w.X0 <= b.x1 {
					if cells[i] == "" {
						cells[i] = w.Text
					} else {
						cells[i] += " " + w.Text
					}
					break
				}
			}
		}
		if anyCell(cells) {
			rows = append(rows, cells)
		}
	}

	rows = filterRows(rows, cols)
	if len(rows) == 0 {
		return quaycheck.Table{}, false
	}
	return quaycheck.Table{Columns: cols, Rows: rows}, true
}

// rowAnchors returns the distinct word tops in ascending order. Each
// anchor is a candidate row position.
func rowAnchors(words []Word) []float64 {
	seen := make(map[float64]struct{}, len(words))
	var anchors []float64
	for _, w := range words {
		if _, ok := seen[w.Top]; !ok {
			seen[w.Top] = struct{}{}
			anchors = append(anchors, w.Top)
		}
	}
	sort.Float64s(anchors)
	return anchors
}

// filterRows drops noise rows: fully empty rows, totals lines, rows that
// merely echo the header labels, and — when an OPR column was detected —
// rows with a blank operator code.
func filterRows(rows [][]string, cols []string) [][]string {
	oprIdx := -1
	for i, c := range cols {
		if c == "OPR" {
			oprIdx = i
			break
		}
	}

	kept := rows[:0]
	for _, row := range rows {
		if !anyCell(row) {
			continue
		}
		if containsTotal(row) {
			continue
		}
		if echoesHeaders(row, cols) {
			continue
		}
		if oprIdx >= 0 && strings.TrimSpace(row[oprIdx]) == "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

func anyCell(row []string) bool {
	for _, c := range row {
		if c != "" {
			return true
		}
	}
	return false
}

func containsTotal(row []string) bool {
	for _, c := range row {
		if strings.Contains(strings.ToLower(c), "total") {
			return true
		}
	}
	return false
}

// echoesHeaders reports whether every cell equals its column label, the
// artifact left when the header line itself clusters into a row.
func echoesHeaders(row, cols []string) bool {
	for i, c := range row {
		if c != cols[i] {
			return false
		}
	}
	return true
}
