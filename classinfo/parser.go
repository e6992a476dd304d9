package classinfo

import (
	"errors"
	"fmt"

	"github.com/skdltmxn/refmeta/internal/stream"
)

// Encoded sizes
const (
	HeaderSize      = 4 + 2*4 + 4 + 2*6
	MethodEntrySize = 2*2 + 4 + 2*4
	FieldEntrySize  = 2*2 + 4 + 2*2
)

// Parse decodes a binary record.
//
// The version tag is checked before anything else is read; a mismatch yields
// ErrUnsupportedVersion and no record.
func Parse(data []byte) (*Record, error) {
	r := stream.NewReader(data)

	magic, err := r.ReadFixedString(len(Magic))
	if err != nil {
		return nil, formatErr("header", r, err)
	}
	if magic != Magic {
		return nil, ErrBadMagic
	}

	rec := &Record{}
	if err := rec.parseHeader(r); err != nil {
		return nil, err
	}

	// Entry tables have fixed sizes; reject counts the data cannot hold
	// before allocating for them.
	tables := int(rec.header.MethodCount)*MethodEntrySize + int(rec.header.FieldCount)*FieldEntrySize
	if r.Remaining() < tables {
		return nil, formatErr("entry tables", r, ErrTruncated)
	}

	rec.methods = make([]MethodEntry, rec.header.MethodCount)
	for i := range rec.methods {
		if err := parseMethodEntry(r, &rec.methods[i]); err != nil {
			return nil, formatErr(fmt.Sprintf("method %d", i), r, err)
		}
	}

	rec.fields = make([]FieldEntry, rec.header.FieldCount)
	for i := range rec.fields {
		if err := parseFieldEntry(r, &rec.fields[i]); err != nil {
			return nil, formatErr(fmt.Sprintf("field %d", i), r, err)
		}
	}

	rec.ptrs = make([]string, rec.header.PtrCount)
	for i := range rec.ptrs {
		s, err := r.ReadPString()
		if err != nil {
			return nil, formatErr(fmt.Sprintf("pointer table entry %d", i), r, err)
		}
		rec.ptrs[i] = s
	}

	return rec, nil
}

func (rec *Record) parseHeader(r *stream.Reader) error {
	h := &rec.header
	var err error

	h.Version, err = r.ReadU16()
	if err != nil {
		return formatErr("header", r, err)
	}

	// Validate version
	if h.Version != CurrentVersion {
		return fmt.Errorf("%w: %d (want %d)", ErrUnsupportedVersion, h.Version, CurrentVersion)
	}

	for _, dst := range []*uint16{&h.MethodCount, &h.FieldCount, &h.PtrCount} {
		if *dst, err = r.ReadU16(); err != nil {
			return formatErr("header", r, err)
		}
	}

	mods, err := r.ReadU32()
	if err != nil {
		return formatErr("header", r, err)
	}
	h.Modifiers = Modifiers(mods)

	indices := []*Index{
		&h.TypeNameIdx,
		&h.PackageNameIdx,
		&h.EnclosingNameIdx,
		&h.GenericSignatureIdx,
		&h.InnerClassesIdx,
		&h.EnclosingMethodIdx,
	}
	return readIndices(r, "header", indices...)
}

func parseMethodEntry(r *stream.Reader, e *MethodEntry) error {
	if err := readIndices(r, "", &e.KeyIdx, &e.ReturnTypeIdx); err != nil {
		return err
	}
	mods, err := r.ReadU32()
	if err != nil {
		return err
	}
	e.Modifiers = Modifiers(mods)
	return readIndices(r, "", &e.ParamsIdx, &e.GenericSignatureIdx, &e.NameIdx, &e.ExceptionsIdx)
}

func parseFieldEntry(r *stream.Reader, e *FieldEntry) error {
	if err := readIndices(r, "", &e.KeyIdx, &e.TypeIdx); err != nil {
		return err
	}
	mods, err := r.ReadU32()
	if err != nil {
		return err
	}
	e.Modifiers = Modifiers(mods)
	return readIndices(r, "", &e.NameIdx, &e.GenericSignatureIdx)
}

func readIndices(r *stream.Reader, section string, dst ...*Index) error {
	for _, d := range dst {
		v, err := r.ReadI16()
		if err != nil {
			if section != "" {
				return formatErr(section, r, err)
			}
			return err
		}
		*d = Index(v)
	}
	return nil
}

func formatErr(section string, r *stream.Reader, err error) error {
	if errors.Is(err, stream.ErrUnexpectedEOF) {
		err = ErrTruncated
	}
	return &FormatError{Section: section, Offset: r.Offset(), Err: err}
}
