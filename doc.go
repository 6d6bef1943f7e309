// Package quaycheck reconciles container tally sheets across two carrier PDFs.
//
// Carrier tally PDFs carry a fixed-layout grid (vessel, port of loading,
// port of discharge, operator code, and per-ISO-type container counts).
// Quaycheck locates the known column headers by their text-layout
// coordinates, rebuilds rows by clustering words with similar vertical
// position, filters noise rows (totals, repeated headers, blank operator
// fields), and counts matching rows per requested section between the two
// documents.
//
// The root package defines the shared data types:
//
//   - [Table] — one page's extracted grid (columns plus rows)
//   - [Section] — a named lookup criterion (operator number, date)
//   - [SectionResult] — the per-section match report
//
// The extract subpackage turns raw PDF bytes into Tables; the match
// subpackage correlates two Table sequences by operator code. The
// cmd/quaycheck command serves both behind a single HTTP endpoint.
package quaycheck
