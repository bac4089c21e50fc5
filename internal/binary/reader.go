// Package binary provides low-level binary decoding for Igor binary wave
// parsing.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
)

// ErrShortBuffer is returned when a read would run past the end of the
// underlying buffer.
var ErrShortBuffer = errors.New("read past end of buffer")

// Reader provides methods for reading fixed-layout binary structures from
// an in-memory buffer with a configurable byte order.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a reader over buf using the given byte order.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying buffer but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{buf: r.buf, order: r.order, pos: offset}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// Skip advances the position by n bytes without bounds checking; the
// following read reports ErrShortBuffer if the skip overran the buffer.
func (r *Reader) Skip(n int) {
	r.pos += n
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos < 0 || r.pos+n > len(r.buf) {
		return nil, ErrShortBuffer
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads an IEEE 754 single-precision float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE 754 double-precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(b)), nil
}

// ReadString reads a fixed-width character field of n bytes and returns
// the text up to the first NUL, with surrounding whitespace removed.
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return TrimFixed(b), nil
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// TrimFixed converts a fixed-width NUL-padded character field to a string,
// dropping everything from the first NUL and trimming whitespace.
func TrimFixed(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}
