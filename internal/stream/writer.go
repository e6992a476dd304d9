package stream

import "encoding/binary"

// Writer accumulates little-endian binary data.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the written data.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteU16 appends an unsigned 16-bit integer.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends an unsigned 32-bit integer.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteI16 appends a signed 16-bit integer.
func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v))
}

// WriteFixedString appends the raw bytes of s.
func (w *Writer) WriteFixedString(s string) {
	w.buf = append(w.buf, s...)
}

// WritePString appends s prefixed by its 16-bit length.
func (w *Writer) WritePString(s string) error {
	if len(s) > 0xFFFF {
		return ErrStringTooLong
	}
	w.WriteU16(uint16(len(s)))
	w.WriteFixedString(s)
	return nil
}
