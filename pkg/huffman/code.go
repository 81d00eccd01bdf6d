package huffman

import "strings"

// CodeTable maps a byte to its code written as a string of '0' and '1'.
type CodeTable map[byte]string

// GenerateCodes walks the tree depth-first, appending '0' for a left edge and
// '1' for a right edge.
func GenerateCodes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	var walk func(n *Node, prefix []byte)
	walk = func(n *Node, prefix []byte) {
		if n.IsLeaf() {
			if len(prefix) == 0 {
				// 루트 하나짜리 트리
				codes[n.Byte] = "0"
				return
			}
			codes[n.Byte] = string(prefix)
			return
		}
		walk(n.Left, append(prefix, '0'))
		walk(n.Right, append(prefix, '1'))
	}
	walk(root, make([]byte, 0, 32))
	return codes
}

// IsPrefixFree reports whether no code in t is a prefix of another.
func (t CodeTable) IsPrefixFree() bool {
	for a, ca := range t {
		for b, cb := range t {
			if a != b && strings.HasPrefix(cb, ca) {
				return false
			}
		}
	}
	return true
}

// Bits returns the payload length in bits for data encoded with t.
func (t CodeTable) Bits(freqs Frequencies) int {
	total := 0
	for b, c := range freqs {
		total += len(t[b]) * int(c)
	}
	return total
}
