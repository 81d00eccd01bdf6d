package huffman

import "errors"

var (
	ErrEmptyInput              = errors.New("huffman: empty input")
	ErrCharacterNotInCodeTable = errors.New("huffman: character not in code table")
	ErrCorruptTree             = errors.New("huffman: corrupt tree")
	ErrTruncatedStream         = errors.New("huffman: truncated stream")
	ErrInvalidTrailer          = errors.New("huffman: invalid trailing bit count")
)
