package extract

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// Word is a positioned text token on a single page. X0 and X1 are the
// horizontal extent in page points; Top grows downward, so smaller values
// are nearer the top of the page.
type Word struct {
	Text string
	X0   float64
	X1   float64
	Top  float64
}

// assembleWords merges the character runs ledongthuc/pdf reports into
// words: runs are grouped into lines by Y proximity, sorted by X, and
// joined while the horizontal gap stays below a font-size-proportional
// threshold. Word text is NFKC-normalized so fullwidth or composed forms
// in the source PDF still match the plain header labels.
func assembleWords(texts []pdf.Text, lineTolerance, gapFactor float64) []Word {
	texts = filterRuns(texts)
	if len(texts) == 0 {
		return nil
	}

	// PDF Y grows upward; tops are measured down from the highest baseline.
	pageTop := texts[0].Y
	for _, t := range texts[1:] {
		if t.Y > pageTop {
			pageTop = t.Y
		}
	}

	var words []Word
	for _, line := range groupLines(texts, lineTolerance) {
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })

		var cur *Word
		var curFontSize float64
		for _, t := range line {
			if cur != nil {
				threshold := gapFactor * curFontSize
				if curFontSize == 0 {
					threshold = 3.0
				}
				if t.X-cur.X1 <= threshold {
					cur.Text += t.S
					if t.X+t.W > cur.X1 {
						cur.X1 = t.X + t.W
					}
					continue
				}
				words = append(words, finishWord(*cur))
			}
			cur = &Word{Text: t.S, X0: t.X, X1: t.X + t.W, Top: pageTop - t.Y}
			curFontSize = t.FontSize
		}
		if cur != nil {
			words = append(words, finishWord(*cur))
		}
	}
	return words
}

func finishWord(w Word) Word {
	w.Text = norm.NFKC.String(strings.TrimSpace(w.Text))
	return w
}

// filterRuns drops empty and whitespace-only runs.
func filterRuns(texts []pdf.Text) []pdf.Text {
	kept := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			kept = append(kept, t)
		}
	}
	return kept
}

// groupLines buckets runs whose Y coordinates sit within tolerance of an
// existing bucket. Buckets come back top of page first.
func groupLines(texts []pdf.Text, tolerance float64) [][]pdf.Text {
	type bucket struct {
		yMin, yMax float64
		runs       []pdf.Text
	}

	var buckets []bucket
	for _, t := range texts {
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].yMin-tolerance && t.Y <= buckets[i].yMax+tolerance {
				buckets[i].runs = append(buckets[i].runs, t)
				if t.Y < buckets[i].yMin {
					buckets[i].yMin = t.Y
				}
				if t.Y > buckets[i].yMax {
					buckets[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, runs: []pdf.Text{t}})
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].yMax > buckets[j].yMax })

	lines := make([][]pdf.Text, len(buckets))
	for i, b := range buckets {
		lines[i] = b.runs
	}
	return lines
}
