package observer

import (
	"context"
	"errors"
	"testing"

	quaycheck "github.com/portmatic/quaycheck"
)

// mockExtractor for observer tests.
type mockExtractor struct {
	tables []quaycheck.Table
	err    error
}

func (m *mockExtractor) Extract(_ []byte) ([]quaycheck.Table, error) {
	return m.tables, m.err
}

// testInstruments creates a no-op Instruments using the global OTEL providers
// (which are no-ops by default). This is safe for testing delegation behavior
// without any real OTEL backend.
func testInstruments(t *testing.T) *Instruments {
	t.Helper()
	inst, err := newInstruments()
	if err != nil {
		t.Fatalf("newInstruments: %v", err)
	}
	return inst
}

func TestObservedExtractorDelegates(t *testing.T) {
	tables := []quaycheck.Table{{
		Columns: []string{"OPR"},
		Rows:    [][]string{{"MSC"}, {"ONE"}},
	}}
	o := WrapExtractor(&mockExtractor{tables: tables}, testInstruments(t))

	got, err := o.Extract(context.Background(), "pdf1", []byte("content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || len(got[0].Rows) != 2 {
		t.Errorf("tables not passed through: %+v", got)
	}
}

func TestObservedExtractorPropagatesError(t *testing.T) {
	wantErr := errors.New("open pdf: bad xref")
	o := WrapExtractor(&mockExtractor{err: wantErr}, testInstruments(t))

	_, err := o.Extract(context.Background(), "pdf2", nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}
