package quaycheck

import "fmt"

// ErrMissingColumn reports that a required column was absent from every
// extracted table of a non-empty document.
type ErrMissingColumn struct {
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("column %q not present in extracted data", e.Column)
}

// ErrNoContent reports that a document carried no parseable PDF content.
type ErrNoContent struct {
	Reason string
}

func (e *ErrNoContent) Error() string {
	return fmt.Sprintf("no content: %s", e.Reason)
}
