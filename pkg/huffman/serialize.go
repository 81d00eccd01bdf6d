package huffman

import "fmt"

const (
	maxTreeDepth  = 255 // 256개 심볼 트리의 최대 깊이
	maxTreeLeaves = 256
)

/*** ---------- 트리 직렬화 (pre-order) ---------- ***/
// 내부 노드: 0, 왼쪽, 오른쪽
// 리프:     1, 8비트 바이트 값

func SerializeTree(w *BitWriter, root *Node) error {
	if root == nil {
		return ErrEmptyInput
	}
	if root.IsLeaf() {
		if err := w.WriteBit(true); err != nil {
			return err
		}
		return w.WriteByte(root.Byte)
	}
	if err := w.WriteBit(false); err != nil {
		return err
	}
	if err := SerializeTree(w, root.Left); err != nil {
		return err
	}
	return SerializeTree(w, root.Right)
}

// DeserializeTree rebuilds a tree written by SerializeTree. The tree
// boundary is found by descent alone; the reader is left positioned on the
// first bit after the tree. Frequencies are not restored.
func DeserializeTree(r *BitReader) (*Node, error) {
	d := &treeDecoder{r: r}
	return d.node(0)
}

type treeDecoder struct {
	r      *BitReader
	leaves int
}

func (d *treeDecoder) node(depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: deeper than %d levels", ErrCorruptTree, maxTreeDepth)
	}
	leaf, err := d.r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("%w: bit %d: %v", ErrCorruptTree, d.r.Pos(), err)
	}
	if leaf {
		d.leaves++
		if d.leaves > maxTreeLeaves {
			return nil, fmt.Errorf("%w: more than %d leaves", ErrCorruptTree, maxTreeLeaves)
		}
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: leaf byte at bit %d: %v", ErrCorruptTree, d.r.Pos(), err)
		}
		return newLeaf(b, 0), nil
	}
	left, err := d.node(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := d.node(depth + 1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
