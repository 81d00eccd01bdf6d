package huffman

/*** ---------- 데이터 구조 ---------- ***/

// Node는 허프만 트리의 노드. 자식이 둘 다 없으면 리프이고, 리프만 Byte가 의미를 가져요.
// 내부 노드는 항상 자식 두 개를 가져요 (full binary tree).
type Node struct {
	Byte        byte
	Freq        uint64
	Left, Right *Node
}

func newLeaf(b byte, f uint64) *Node { return &Node{Byte: b, Freq: f} }

func newInternal(left, right *Node) *Node {
	return &Node{Freq: left.Freq + right.Freq, Left: left, Right: right}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }
