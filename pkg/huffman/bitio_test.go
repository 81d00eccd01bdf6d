package huffman

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBitWriterMSBFirst(t *testing.T) {
	w := NewBitWriter()
	for _, b := range []bool{false, true, false, true, true, false, true, false, true} {
		if err := w.WriteBit(b); err != nil {
			t.Fatalf("WriteBit: %v", err)
		}
	}
	if w.Len() != 9 {
		t.Fatalf("len = %d, want 9", w.Len())
	}
	got, valid, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if !bytes.Equal(got, []byte{0x5A, 0x80}) || valid != 1 {
		t.Fatalf("got % x valid=%d, want 5a 80 valid=1", got, valid)
	}
}

func TestBitWriterUnalignedByte(t *testing.T) {
	w := NewBitWriter()
	_ = w.WriteBit(true)
	_ = w.WriteByte(0xFF)
	_ = w.WriteCode("0")
	got, valid, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if !bytes.Equal(got, []byte{0xFF, 0x80}) || valid != 2 {
		t.Fatalf("got % x valid=%d", got, valid)
	}
}

func TestBitWriterEmptyAndAligned(t *testing.T) {
	got, valid, err := NewBitWriter().Finish()
	if err != nil || len(got) != 0 || valid != 0 {
		t.Fatalf("empty writer: % x valid=%d err=%v", got, valid, err)
	}
	w := NewBitWriter()
	_ = w.WriteByte(0xA5)
	got, valid, _ = w.Finish()
	if !bytes.Equal(got, []byte{0xA5}) || valid != 0 {
		t.Fatalf("aligned writer: % x valid=%d", got, valid)
	}
}

func TestBitReaderStopsAtLimit(t *testing.T) {
	r := NewBitReader([]byte{0xA5, 0xFF}, 10)
	var bits []bool
	for !r.AtEnd() {
		b, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit: %v", err)
		}
		bits = append(bits, b)
	}
	want := []bool{true, false, true, false, false, true, false, true, true, true}
	if len(bits) != len(want) {
		t.Fatalf("read %d bits, want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("bit %d = %v, want %v", i, bits[i], want[i])
		}
	}
	if _, err := r.ReadBit(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF past limit, got %v", err)
	}
}

func TestBitReaderByteNeedsEightBits(t *testing.T) {
	r := NewBitReader([]byte{0x12, 0x34}, 12)
	if _, err := r.ReadBit(); err != nil {
		t.Fatalf("ReadBit: %v", err)
	}
	v, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if v != 0x24 { // 0001 0010 0011 -> bits 1..8 = 0010 0100
		t.Fatalf("ReadByte = %#x, want 0x24", v)
	}
	if _, err := r.ReadByte(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestValidBits(t *testing.T) {
	cases := []struct {
		body []byte
		last uint8
		want int
	}{
		{nil, 0, 0},
		{[]byte{0}, 0, 8},
		{[]byte{0}, 3, 3},
		{[]byte{0, 0, 0}, 1, 17},
	}
	for _, c := range cases {
		if got := validBits(c.body, c.last); got != c.want {
			t.Fatalf("validBits(%d bytes, %d) = %d, want %d", len(c.body), c.last, got, c.want)
		}
	}
}
