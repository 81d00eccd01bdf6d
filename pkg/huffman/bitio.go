package huffman

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

/*** ---------- MSB-first 비트 라이터 ---------- ***/

// BitWriter packs bits MSB-first into a growable buffer and tracks the
// logical bit length explicitly.
type BitWriter struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   int // 기록한 비트 수
}

func NewBitWriter() *BitWriter {
	bw := &BitWriter{}
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// Len returns the number of bits written so far.
func (bw *BitWriter) Len() int { return bw.n }

func (bw *BitWriter) WriteBit(b bool) error {
	if err := bw.w.WriteBool(b); err != nil {
		return err
	}
	bw.n++
	return nil
}

func (bw *BitWriter) WriteByte(v byte) error {
	if err := bw.w.WriteByte(v); err != nil {
		return err
	}
	bw.n += 8
	return nil
}

// WriteCode writes a code given as a string of '0' and '1'.
func (bw *BitWriter) WriteCode(code string) error {
	for i := 0; i < len(code); i++ {
		if err := bw.WriteBit(code[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}

// Finish flushes the partial last byte and returns the packed bytes together
// with the number of valid bits in the last byte (0 means all 8).
func (bw *BitWriter) Finish() ([]byte, uint8, error) {
	if _, err := bw.w.Align(); err != nil {
		return nil, 0, err
	}
	return bw.buf.Bytes(), uint8(bw.n % 8), nil
}

/*** ---------- MSB-first 비트 리더 ---------- ***/

// BitReader reads bits MSB-first from a fixed slice, stopping at a logical
// bit limit so that trailing padding is never interpreted as data.
type BitReader struct {
	r     *bitio.Reader
	limit int
	pos   int
}

// NewBitReader reads at most bits bits from data.
func NewBitReader(data []byte, bits int) *BitReader {
	if total := len(data) * 8; bits > total || bits < 0 {
		bits = total
	}
	return &BitReader{r: bitio.NewReader(bytes.NewReader(data)), limit: bits}
}

// validBits는 trailer 값으로 유효 비트 수 계산 (0 = 마지막 바이트 8비트 전부)
func validBits(body []byte, last uint8) int {
	if len(body) == 0 {
		return 0
	}
	if last == 0 {
		return len(body) * 8
	}
	return (len(body)-1)*8 + int(last)
}

func (br *BitReader) ReadBit() (bool, error) {
	if br.pos >= br.limit {
		return false, io.ErrUnexpectedEOF
	}
	b, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.pos++
	return b, nil
}

func (br *BitReader) ReadByte() (byte, error) {
	if br.pos+8 > br.limit {
		return 0, io.ErrUnexpectedEOF
	}
	v, err := br.r.ReadByte()
	if err != nil {
		return 0, err
	}
	br.pos += 8
	return v, nil
}

// Pos returns the number of bits consumed.
func (br *BitReader) Pos() int { return br.pos }

func (br *BitReader) AtEnd() bool { return br.pos >= br.limit }
