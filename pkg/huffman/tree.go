package huffman

/*** ---------- 트리 구성 (바이트 오름차순으로 push) ---------- ***/

// BuildTree merges the two lowest-weight nodes until one root remains.
// The first node extracted becomes the left child.
//
// A table with a single distinct byte yields a root whose left child is that
// byte and whose right child is a zero-weight phantom leaf, so the byte is
// still reachable by one bit ("0").
func BuildTree(freqs Frequencies) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}
	h := NewMinHeap()
	for _, b := range freqs.sortedBytes() {
		h.Insert(newLeaf(b, freqs[b]))
	}
	if h.Len() == 1 {
		only := h.ExtractMin()
		return newInternal(only, newLeaf(only.Byte^1, 0)), nil
	}
	for h.Len() > 1 {
		left := h.ExtractMin()
		right := h.ExtractMin()
		h.Insert(newInternal(left, right))
	}
	return h.ExtractMin(), nil
}
