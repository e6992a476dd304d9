// Package classinfo describes the embedded per-class metadata record: its
// header, method and field tables, and the interned pointer table that the
// entries reference by index. It also provides the binary codec for records.
package classinfo

import (
	"errors"
	"fmt"
)

// Sentinel errors for record decoding.
var (
	// ErrBadMagic indicates the data does not start with a record signature.
	ErrBadMagic = errors.New("classinfo: invalid record signature")

	// ErrUnsupportedVersion indicates a record built for another format version.
	ErrUnsupportedVersion = errors.New("classinfo: unsupported metadata version")

	// ErrTruncated indicates the record ends before its declared tables do.
	ErrTruncated = errors.New("classinfo: truncated record")

	// ErrTableTooLarge indicates a table that does not fit the record format.
	ErrTableTooLarge = errors.New("classinfo: table too large")
)

// FormatError describes where decoding of a record failed.
type FormatError struct {
	Section string // Record section being decoded
	Offset  int    // Byte offset within the record
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("classinfo: bad record in %s at offset 0x%x: %v", e.Section, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
