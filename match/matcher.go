// Package match correlates extracted tally tables across two documents.
//
// Matching joins on the OPR operator-code column: a row matches a section
// when its OPR cell contains the section's number as a substring
// (case-sensitive, unanchored). Tables with differing column sets combine
// permissively — rows from tables without an OPR column never match.
package match

import (
	"fmt"
	"strings"

	quaycheck "github.com/portmatic/quaycheck"
)

// Sections counts, for every requested section, the rows in each
// document whose operator code contains the section number. first and
// second are the page tables extracted from the two uploads; either may
// be empty, which reports zero matches. A document with rows but no OPR
// column anywhere is a *quaycheck.ErrMissingColumn.
func Sections(first, second []quaycheck.Table, sections map[string]quaycheck.Section) (map[string]quaycheck.SectionResult, error) {
	results := make(map[string]quaycheck.SectionResult, len(sections))
	for name, section := range sections {
		firstCount, err := countMatches(first, section.Number)
		if err != nil {
			return nil, fmt.Errorf("document 1, section %s: %w", name, err)
		}
		secondCount, err := countMatches(second, section.Number)
		if err != nil {
			return nil, fmt.Errorf("document 2, section %s: %w", name, err)
		}
		results[name] = quaycheck.SectionResult{
			Result: fmt.Sprintf("Found %d matches in PDF1 and %d matches in PDF2 for section %s", firstCount, secondCount, name),
		}
	}
	return results, nil
}

// countMatches scans the concatenation of tables for rows whose OPR cell
// contains number. Concatenation is row-wise and permissive: each table
// is read against its own columns, and a table lacking OPR contributes
// nothing. Only when no table at all carries OPR — and rows exist — is
// the column reported missing.
func countMatches(tables []quaycheck.Table, number string) (int, error) {
	count := 0
	rows := 0
	hasOPR := false
	for _, t := range tables {
		rows += len(t.Rows)
		idx := t.ColumnIndex("OPR")
		if idx < 0 {
			continue
		}
		hasOPR = true
		for _, row := range t.Rows {
			if strings.Contains(row[idx], number) {
				count++
			}
		}
	}
	if rows > 0 && !hasOPR {
		return 0, &quaycheck.ErrMissingColumn{Column: "OPR"}
	}
	return count, nil
}
