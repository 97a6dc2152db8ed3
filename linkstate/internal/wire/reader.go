package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader reads fixed-width network-byte-order fields from a byte slice with
// position tracking.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over data. The Reader does not copy data;
// callers that need isolation copy first.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.truncated(1)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes, returning a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &ParseError{Position: r.pos, Err: fmt.Errorf("negative length %d", n)}
	}
	if r.Remaining() < n {
		return nil, r.truncated(n)
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:r.pos+n])
	r.pos += n
	return buf, nil
}

// ReadU16 reads a big-endian uint16 (fixed 2 bytes).
func (r *Reader) ReadU16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, r.truncated(2)
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, r.truncated(4)
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadRemaining reads all remaining bytes, returning a copy.
func (r *Reader) ReadRemaining() ([]byte, error) {
	return r.ReadBytes(r.Remaining())
}

func (r *Reader) truncated(need int) error {
	return &ParseError{
		Position: r.pos,
		Err:      fmt.Errorf("need %d bytes, have %d", need, r.Remaining()),
	}
}

// ParseError represents an error during wire parsing with position information.
type ParseError struct {
	Err      error
	Field    string
	Position int
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("linkstate: %s at position %d: %v", e.Field, e.Position, e.Err)
	}
	return fmt.Sprintf("linkstate: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError for the named field at the current position.
func (r *Reader) WrapError(field string, err error) error {
	return &ParseError{
		Position: r.pos,
		Field:    field,
		Err:      err,
	}
}
