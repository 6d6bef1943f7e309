package extract

import "log/slog"

// Option configures an Extractor.
type Option func(*Extractor)

// WithRowTolerance sets the vertical distance within which words join the
// same row (default 5 points).
func WithRowTolerance(t float64) Option {
	return func(e *Extractor) { e.rowTolerance = t }
}

// WithHeaderPadding sets how far each column band is widened beyond the
// header word's extent (default 5 points).
func WithHeaderPadding(p float64) Option {
	return func(e *Extractor) { e.headerPad = p }
}

// WithLineTolerance sets the Y proximity for grouping character runs into
// lines during word assembly (default 3 points).
func WithLineTolerance(t float64) Option {
	return func(e *Extractor) { e.lineTolerance = t }
}

// WithWordGapFactor sets the fraction of the font size below which a
// horizontal gap still joins two runs into one word (default 0.3).
func WithWordGapFactor(f float64) Option {
	return func(e *Extractor) { e.gapFactor = f }
}

// WithLogger sets the logger for per-page debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}
