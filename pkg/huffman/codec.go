package huffman

import (
	"fmt"
)

/*** ---------- 공개 API ---------- ***/
// 파일 포맷: [트리 비트][페이로드 비트][마지막 바이트의 유효 비트 수 1바이트, 0 = 8비트 전부]
// 트리와 페이로드 사이에 정렬 패딩 없음.

// Stats describes one compression run.
type Stats struct {
	InputBytes      int
	OutputBytes     int
	DistinctSymbols int
	TreeBits        int
	PayloadBits     int
}

// Ratio returns output size over input size.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

func (s Stats) String() string {
	return fmt.Sprintf("in=%dB out=%dB ratio=%.3f symbols=%d tree=%dbit payload=%dbit",
		s.InputBytes, s.OutputBytes, s.Ratio(), s.DistinctSymbols, s.TreeBits, s.PayloadBits)
}

func Compress(data []byte) ([]byte, error) {
	out, _, err := CompressWithStats(data)
	return out, err
}

func CompressWithStats(data []byte) ([]byte, Stats, error) {
	freqs := CountFrequencies(data)
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, Stats{}, err
	}
	codes := GenerateCodes(root)

	w := NewBitWriter()
	if err := SerializeTree(w, root); err != nil {
		return nil, Stats{}, fmt.Errorf("serialize tree: %w", err)
	}
	treeBits := w.Len()
	if err := writePayload(w, data, codes); err != nil {
		return nil, Stats{}, err
	}
	out, err := finish(w)
	if err != nil {
		return nil, Stats{}, err
	}
	return out, Stats{
		InputBytes:      len(data),
		OutputBytes:     len(out),
		DistinctSymbols: len(freqs),
		TreeBits:        treeBits,
		PayloadBits:     w.Len() - treeBits,
	}, nil
}

// Encode packs data with codes only, without a tree header, followed by the
// trailing valid-bit byte.
func Encode(data []byte, codes CodeTable) ([]byte, error) {
	w := NewBitWriter()
	if err := writePayload(w, data, codes); err != nil {
		return nil, err
	}
	return finish(w)
}

func writePayload(w *BitWriter, data []byte, codes CodeTable) error {
	for i, b := range data {
		code, ok := codes[b]
		if !ok {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrCharacterNotInCodeTable, b, i)
		}
		if err := w.WriteCode(code); err != nil {
			return err
		}
	}
	return nil
}

func finish(w *BitWriter) ([]byte, error) {
	body, valid, err := w.Finish()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(body)+1)
	copy(out, body)
	out[len(body)] = valid
	return out, nil
}

func Decompress(data []byte) ([]byte, error) {
	r, err := openStream(data)
	if err != nil {
		return nil, err
	}
	root, err := DeserializeTree(r)
	if err != nil {
		return nil, err
	}
	out, err := decodePayload(r, root)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no payload after tree", ErrTruncatedStream)
	}
	return out, nil
}

// Decode is the inverse of Encode for a known tree.
func Decode(root *Node, data []byte) ([]byte, error) {
	if root == nil {
		return nil, ErrCorruptTree
	}
	r, err := openStream(data)
	if err != nil {
		return nil, err
	}
	return decodePayload(r, root)
}

// openStream은 trailer를 떼고 유효 비트만큼의 리더를 만들어요.
func openStream(data []byte) (*BitReader, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing trailer", ErrTruncatedStream)
	}
	body, last := data[:len(data)-1], data[len(data)-1]
	if last > 7 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrailer, last)
	}
	if len(body) == 0 && last != 0 {
		return nil, fmt.Errorf("%w: trailer %d with no body", ErrInvalidTrailer, last)
	}
	return NewBitReader(body, validBits(body, last)), nil
}

/*** ---------- 디코딩 ---------- ***/
func decodePayload(r *BitReader, root *Node) ([]byte, error) {
	out := make([]byte, 0, 1024)
	if root.IsLeaf() {
		// 리프 하나뿐인 트리: 비트 하나당 심볼 하나
		for !r.AtEnd() {
			if _, err := r.ReadBit(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
			}
			out = append(out, root.Byte)
		}
		return out, nil
	}

	n := root
	for !r.AtEnd() {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: %v (decoded=%d)", ErrTruncatedStream, err, len(out))
		}
		if bit {
			n = n.Right
		} else {
			n = n.Left
		}
		if n == nil {
			return nil, fmt.Errorf("%w: dead end at bit %d", ErrCorruptTree, r.Pos())
		}
		if n.IsLeaf() {
			out = append(out, n.Byte)
			n = root
		}
	}
	if n != root {
		return nil, fmt.Errorf("%w: stream ends inside a code (decoded=%d)", ErrTruncatedStream, len(out))
	}
	return out, nil
}
