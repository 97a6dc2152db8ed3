package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(data)

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if r.Position() != 3 {
		t.Errorf("final position: got %d, want 3", r.Position())
	}

	if _, err := r.ReadByte(); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(data)

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}

	if r.Position() != 3 {
		t.Errorf("position: got %d, want 3", r.Position())
	}

	if _, err = r.ReadBytes(10); err == nil {
		t.Error("expected error for reading past end")
	}
}

func TestReaderReadBytesIsCopy(t *testing.T) {
	data := []byte{0x01, 0x02}
	r := NewReader(data)

	got, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	data[0] = 0xFF
	if got[0] != 0x01 {
		t.Error("ReadBytes result aliases input")
	}
}

func TestReaderReadU16(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x00, 0x01}, 1},
		{[]byte{0x10, 0x05}, 0x1005},
		{[]byte{0xFF, 0xFF}, 0xFFFF},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded)
		got, err := r.ReadU16()
		if err != nil {
			t.Errorf("ReadU16(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU16(%v): got 0x%04x, want 0x%04x", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadU16Truncated(t *testing.T) {
	r := NewReader([]byte{0x10})
	_, err := r.ReadU16()
	if err == nil {
		t.Fatal("expected error for truncated u16")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if perr.Position != 0 {
		t.Errorf("Position = %d, want 0", perr.Position)
	}
}

func TestReaderReadU32(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	got, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0x01020304 {
		t.Errorf("ReadU32: got 0x%08x, want 0x01020304", got)
	}
}

func TestReaderReadRemaining(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	if _, err := r.ReadU16(); err != nil {
		t.Fatalf("ReadU16: %v", err)
	}

	rest, err := r.ReadRemaining()
	if err != nil {
		t.Fatalf("ReadRemaining: %v", err)
	}
	if !bytes.Equal(rest, []byte{0x03, 0x04}) {
		t.Errorf("ReadRemaining: got %v, want [3 4]", rest)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining after drain: got %d, want 0", r.Remaining())
	}
}

func TestReaderWrapError(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01})
	if _, err := r.ReadU16(); err != nil {
		t.Fatalf("ReadU16: %v", err)
	}

	inner := errors.New("boom")
	err := r.WrapError("mt-id word", inner)
	if !errors.Is(err, inner) {
		t.Error("wrapped error should match inner with errors.Is")
	}
	want := "linkstate: mt-id word at position 2: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU16(0x1005)
	w.Byte(0xAA)
	w.WriteU32(0xDEADBEEF)
	w.WriteBytes([]byte{0x01, 0x02})

	want := []byte{0x10, 0x05, 0xAA, 0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes: got %v, want %v", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len: got %d, want %d", w.Len(), len(want))
	}

	r := NewReader(w.Bytes())
	u16, err := r.ReadU16()
	if err != nil || u16 != 0x1005 {
		t.Errorf("ReadU16: got 0x%04x, %v", u16, err)
	}
	b, err := r.ReadByte()
	if err != nil || b != 0xAA {
		t.Errorf("ReadByte: got 0x%02x, %v", b, err)
	}
	u32, err := r.ReadU32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Errorf("ReadU32: got 0x%08x, %v", u32, err)
	}
}
