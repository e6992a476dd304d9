package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter(16)
	w.WriteU16(0xBEEF)
	w.WriteI16(-1)
	w.WriteU32(0xDEADBEEF)
	require.NoError(t, w.WritePString("fooWithInt:"))

	r := NewReader(w.Bytes())

	u16, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	i16, err := r.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	s, err := r.ReadPString()
	require.NoError(t, err)
	assert.Equal(t, "fooWithInt:", s)
	assert.Zero(t, r.Remaining())
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01})

	_, err := r.ReadU16()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = r.ReadBytesRef(-1)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	r = NewReader([]byte{0x05, 0x00, 'a', 'b'})
	_, err = r.ReadPString()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReaderOffsets(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	_, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Offset())
	assert.Equal(t, 2, r.Remaining())

	s, err := r.ReadFixedString(2)
	require.NoError(t, err)
	assert.Equal(t, "\x03\x04", s)
	assert.Zero(t, r.Remaining())

	_, err = r.ReadFixedString(1)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Equal(t, 4, r.Offset())
}

func TestWritePStringTooLong(t *testing.T) {
	w := NewWriter(0)
	long := make([]byte, 0x10000)
	assert.ErrorIs(t, w.WritePString(string(long)), ErrStringTooLong)
	assert.Zero(t, w.Len())
}
