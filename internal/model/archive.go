package model

import "time"

// Archive는 압축 결과 하나. Data는 huffman 파일 포맷 그대로.
type Archive struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	OriginalSize    int       `json:"original_size"`
	CompressedSize  int       `json:"compressed_size"`
	DistinctSymbols int       `json:"distinct_symbols"`
	Ratio           float64   `json:"ratio"`
	CreatedAt       time.Time `json:"created_at"`
	Data            []byte    `json:"-"`
}
