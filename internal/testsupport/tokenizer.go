package testsupport

import (
	"errors"
	"sync"

	"source.hodakov.me/hdkv/animetree/internal/domains"
	"source.hodakov.me/hdkv/animetree/internal/domains/tokenizer/dto"
)

var ErrFakeTokenizer = errors.New("fake tokenizer failure")

var (
	_ domains.Tokenizer = new(FakeTokenizer)
	_ domains.Domain    = new(FakeTokenizer)
)

// FakeTokenizer returns fixed token bags keyed by filename. Filenames listed
// in Failing make Tokenize fail.
type FakeTokenizer struct {
	Bags    map[string]*dto.TokenBag
	Failing map[string]bool

	callsMutex sync.Mutex
	calls      []string
}

func NewFakeTokenizer() *FakeTokenizer {
	return &FakeTokenizer{
		Bags:    make(map[string]*dto.TokenBag),
		Failing: make(map[string]bool),
	}
}

func (f *FakeTokenizer) ConnectDependencies() error {
	return nil
}

func (f *FakeTokenizer) Start() error {
	return nil
}

func (f *FakeTokenizer) Tokenize(filename string) (*dto.TokenBag, error) {
	f.callsMutex.Lock()
	f.calls = append(f.calls, filename)
	f.callsMutex.Unlock()

	if f.Failing[filename] {
		return nil, ErrFakeTokenizer
	}

	if bag, ok := f.Bags[filename]; ok {
		copied := *bag

		return &copied, nil
	}

	return new(dto.TokenBag), nil
}

// Calls returns the filenames Tokenize was called with, in order.
func (f *FakeTokenizer) Calls() []string {
	f.callsMutex.Lock()
	defer f.callsMutex.Unlock()

	return append([]string(nil), f.calls...)
}
