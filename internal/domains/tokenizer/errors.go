package tokenizer

import "errors"

var (
	ErrTokenizer         = errors.New("tokenizer")
	ErrCantParseFilename = errors.New("can't parse filename")
)
