package huffman

/*** ---------- MinHeap (빈도만 비교) ---------- ***/

const initialHeapCap = 16

// MinHeap is a binary min-heap of nodes ordered by Freq only.
// Ties are resolved by heap mechanics, so callers wanting a stable tree
// must insert in a fixed order.
type MinHeap struct {
	arr []*Node
	n   int
}

func NewMinHeap() *MinHeap {
	return &MinHeap{arr: make([]*Node, initialHeapCap)}
}

func (h *MinHeap) Len() int { return h.n }

func lt(a, b *Node) bool { // a < b (빈도만)
	return a.Freq < b.Freq
}

// grow는 용량을 두 배로
func (h *MinHeap) grow() {
	c := len(h.arr) * 2
	if c == 0 {
		c = initialHeapCap
	}
	arr := make([]*Node, c)
	copy(arr, h.arr[:h.n])
	h.arr = arr
}

func (h *MinHeap) Insert(n *Node) {
	if h.n == len(h.arr) {
		h.grow()
	}
	h.arr[h.n] = n
	i := h.n
	h.n++
	for i > 0 {
		parent := (i - 1) / 2
		if !lt(h.arr[i], h.arr[parent]) { // child >= parent 이면 stop
			return
		}
		h.arr[parent], h.arr[i] = h.arr[i], h.arr[parent]
		i = parent
	}
}

// ExtractMin removes and returns the node with the smallest frequency,
// or nil if the heap is empty.
func (h *MinHeap) ExtractMin() *Node {
	if h.n == 0 {
		return nil
	}
	out := h.arr[0]
	h.n--
	h.arr[0] = h.arr[h.n]
	h.arr[h.n] = nil

	parent := 0
	for {
		smallest := parent
		l, r := 2*parent+1, 2*parent+2
		if l < h.n && lt(h.arr[l], h.arr[smallest]) {
			smallest = l
		}
		if r < h.n && lt(h.arr[r], h.arr[smallest]) {
			smallest = r
		}
		if smallest == parent {
			return out
		}
		h.arr[parent], h.arr[smallest] = h.arr[smallest], h.arr[parent]
		parent = smallest
	}
}
