package domains

import "source.hodakov.me/hdkv/animetree/internal/domains/tokenizer/dto"

const TokenizerName = "tokenizer"

type Tokenizer interface {
	Tokenize(filename string) (*dto.TokenBag, error)
}
