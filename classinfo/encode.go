package classinfo

import (
	"fmt"
	"math"

	"github.com/skdltmxn/refmeta/internal/stream"
)

// Encode serializes a record into the binary form read by Parse.
// The header counts are derived from the tables; the header's version tag is kept.
func Encode(rec *Record) ([]byte, error) {
	if len(rec.methods) > math.MaxUint16 || len(rec.fields) > math.MaxUint16 || len(rec.ptrs) > math.MaxInt16 {
		return nil, ErrTableTooLarge
	}

	size := HeaderSize + len(rec.methods)*MethodEntrySize + len(rec.fields)*FieldEntrySize
	for _, p := range rec.ptrs {
		size += 2 + len(p)
	}
	w := stream.NewWriter(size)

	h := rec.header
	w.WriteFixedString(Magic)
	w.WriteU16(h.Version)
	w.WriteU16(uint16(len(rec.methods)))
	w.WriteU16(uint16(len(rec.fields)))
	w.WriteU16(uint16(len(rec.ptrs)))
	w.WriteU32(uint32(h.Modifiers))
	writeIndices(w,
		h.TypeNameIdx,
		h.PackageNameIdx,
		h.EnclosingNameIdx,
		h.GenericSignatureIdx,
		h.InnerClassesIdx,
		h.EnclosingMethodIdx,
	)

	for i := range rec.methods {
		e := &rec.methods[i]
		writeIndices(w, e.KeyIdx, e.ReturnTypeIdx)
		w.WriteU32(uint32(e.Modifiers))
		writeIndices(w, e.ParamsIdx, e.GenericSignatureIdx, e.NameIdx, e.ExceptionsIdx)
	}

	for i := range rec.fields {
		e := &rec.fields[i]
		writeIndices(w, e.KeyIdx, e.TypeIdx)
		w.WriteU32(uint32(e.Modifiers))
		writeIndices(w, e.NameIdx, e.GenericSignatureIdx)
	}

	for i, p := range rec.ptrs {
		if err := w.WritePString(p); err != nil {
			return nil, fmt.Errorf("classinfo: pointer table entry %d: %w", i, err)
		}
	}

	return w.Bytes(), nil
}

func writeIndices(w *stream.Writer, indices ...Index) {
	for _, idx := range indices {
		w.WriteI16(int16(idx))
	}
}
