package quaycheck

import (
	"reflect"
	"testing"
)

func TestTableColumn(t *testing.T) {
	table := Table{
		Columns: []string{"S.S", "POL", "OPR", "2210"},
		Rows: [][]string{
			{"MV ATLAS", "SGSIN", "MSC", "12"},
			{"MV ATLAS", "NLRTM", "ONE", "3"},
		},
	}

	values, ok := table.Column("OPR")
	if !ok {
		t.Fatal("expected OPR column to exist")
	}
	want := []string{"MSC", "ONE"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("Column(OPR) = %v, want %v", values, want)
	}

	if _, ok := table.Column("POD"); ok {
		t.Error("expected missing column to report ok=false")
	}
}

func TestTableColumnIndexFirstOccurrenceWins(t *testing.T) {
	table := Table{
		Columns: []string{"OPR", "POL", "OPR"},
		Rows:    [][]string{{"MSC", "SGSIN", "HLC"}},
	}
	if got := table.ColumnIndex("OPR"); got != 0 {
		t.Errorf("ColumnIndex(OPR) = %d, want 0", got)
	}
	values, _ := table.Column("OPR")
	if len(values) != 1 || values[0] != "MSC" {
		t.Errorf("Column(OPR) = %v, want [MSC]", values)
	}
}

func TestTableEmpty(t *testing.T) {
	if !(Table{Columns: []string{"OPR"}}).Empty() {
		t.Error("table without rows should be empty")
	}
	full := Table{Columns: []string{"OPR"}, Rows: [][]string{{"MSC"}}}
	if full.Empty() {
		t.Error("table with rows should not be empty")
	}
}
