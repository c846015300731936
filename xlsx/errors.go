package xlsx

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	// ErrInvalidArchive indicates the input bytes are not a valid zip archive.
	ErrInvalidArchive = errors.New("xlsx: invalid or corrupted archive")
	// ErrMissingWorksheet indicates the resolved worksheet part does not
	// exist in the archive.
	ErrMissingWorksheet = errors.New("xlsx: worksheet part not found")
	// ErrInvalidWorksheet indicates the worksheet part is not parseable XML.
	ErrInvalidWorksheet = errors.New("xlsx: worksheet part is not valid XML")
)

// Phase identifies the decode stage that failed.
type Phase string

// Decode phases, in order of execution.
const (
	PhaseArchive  Phase = "archive open"
	PhasePart     Phase = "part lookup"
	PhaseXMLParse Phase = "xml parse"
)

// DecodeError is the single fatal failure a decode can produce. It
// names the phase that failed and, where relevant, the archive part
// involved. Per-cell anomalies never produce a DecodeError; they
// degrade to empty cell values.
type DecodeError struct {
	Phase Phase
	Part  string // archive member path, if the failure concerns one
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("xlsx: decode failed during %s of %q: %v", e.Phase, e.Part, e.Err)
	}
	return fmt.Sprintf("xlsx: decode failed during %s: %v", e.Phase, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
