package mock

import (
	"context"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/poiesic/lingcomp/nlp"
)

// MockTagger is a test double for nlp.Tagger.
type MockTagger struct {
	// Docs maps an exact input text to the document returned for it.
	Docs map[string]*nlp.Doc

	// TagFunc is called by Tag if set and no scripted doc matches.
	TagFunc func(ctx context.Context, text string) (*nlp.Doc, error)

	mu        sync.RWMutex
	callCount atomic.Int64
}

// NewMockTagger creates a mock tagger with default tokenization.
func NewMockTagger() *MockTagger {
	return &MockTagger{Docs: make(map[string]*nlp.Doc)}
}

// Script registers the document returned for text. Safe for concurrent use.
func (m *MockTagger) Script(text string, doc *nlp.Doc) *MockTagger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Docs[text] = doc
	return m
}

// Tag returns the scripted document, the TagFunc result, or a default tokenization.
func (m *MockTagger) Tag(ctx context.Context, text string) (*nlp.Doc, error) {
	m.callCount.Add(1)

	m.mu.RLock()
	doc, ok := m.Docs[text]
	m.mu.RUnlock()
	if ok {
		return doc, nil
	}
	if m.TagFunc != nil {
		return m.TagFunc(ctx, text)
	}
	return &nlp.Doc{Tokens: Tokenize(text)}, nil
}

// CallCount returns the number of Tag calls.
func (m *MockTagger) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and scripted behavior.
func (m *MockTagger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount.Store(0)
	m.Docs = make(map[string]*nlp.Doc)
	m.TagFunc = nil
}

// Tokenize splits text into runs of letters and digits, with every other
// non-space rune as its own PUNCT token. Words are tagged NOUN.
func Tokenize(text string) []nlp.Token {
	var tokens []nlp.Token
	var word []rune
	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		tokens = append(tokens, nlp.Token{Text: w, Tag: "NN", POS: nlp.POSNoun, Dep: nlp.DepOther, IsAlpha: nlp.IsAlpha(w)})
		word = word[:0]
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word = append(word, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, nlp.Token{Text: string(r), Tag: ".", POS: nlp.POSPunct, Dep: nlp.DepPunct})
		}
	}
	flush()
	return tokens
}
