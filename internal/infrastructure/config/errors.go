package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks a document that cannot be used at all
	ErrMalformed = errors.New("malformed document")

	// ErrInvalidPiece marks a single record that was skipped
	ErrInvalidPiece = errors.New("invalid piece")
)

// PieceError describes a skipped record. Index is the record's position in
// the document (pieces or actions).
type PieceError struct {
	Index  int
	Type   string
	Reason string
}

func (e *PieceError) Error() string {
	return fmt.Sprintf("record %d (%s): %s", e.Index, e.Type, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidPiece)
func (e *PieceError) Unwrap() error {
	return ErrInvalidPiece
}

// NewPieceError builds a PieceError with a formatted reason
func NewPieceError(index int, typ, format string, args ...any) *PieceError {
	return &PieceError{Index: index, Type: typ, Reason: fmt.Sprintf(format, args...)}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
