package quaycheck

import "testing"

func TestErrMissingColumnError(t *testing.T) {
	e := &ErrMissingColumn{Column: "OPR"}
	want := `column "OPR" not present in extracted data`
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrMissingColumnImplementsError(t *testing.T) {
	var _ error = (*ErrMissingColumn)(nil)
}

func TestErrNoContentError(t *testing.T) {
	e := &ErrNoContent{Reason: "empty PDF payload"}
	want := "no content: empty PDF payload"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrNoContentImplementsError(t *testing.T) {
	var _ error = (*ErrNoContent)(nil)
}
