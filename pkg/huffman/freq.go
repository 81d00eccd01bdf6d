package huffman

import "sort"

// Frequencies maps each byte value present in the input to its count.
type Frequencies map[byte]uint64

func CountFrequencies(data []byte) Frequencies {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	freqs := make(Frequencies)
	for i, c := range counts {
		if c > 0 {
			freqs[byte(i)] = c
		}
	}
	return freqs
}

// Total returns the sum of all counts.
func (f Frequencies) Total() uint64 {
	var sum uint64
	for _, c := range f {
		sum += c
	}
	return sum
}

// sortedBytes는 바이트 값 오름차순 (트리 구성 순서 고정용)
func (f Frequencies) sortedBytes() []byte {
	keys := make([]byte, 0, len(f))
	for b := range f {
		keys = append(keys, b)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
