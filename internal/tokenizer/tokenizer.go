// Package tokenizer counts tokens exactly the way the billing side does.
//
// Prices are quoted per million tokens and token counts vary between
// encodings, so counting must be byte-identical to the reference tiktoken
// p50k_base implementation. A chars-per-token heuristic is not acceptable
// here: a few percent of drift on a large document is real money.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding is the fixed BPE scheme used for all token counting.
const Encoding = "p50k_base"

// Error wraps a tokenizer failure, typically an unavailable vocabulary.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("tokenizer: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Counter counts p50k_base tokens. The zero value is not usable; call New.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// New loads the p50k_base encoding. tiktoken-go fetches the vocabulary on
// first use and caches it afterwards (TIKTOKEN_CACHE_DIR controls where), so
// this can fail without network access and a cold cache.
func New() (*Counter, error) {
	enc, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("load %s encoding: %w", Encoding, err)}
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens in text. Counting itself cannot fail
// once the encoding is loaded; every byte sequence has a tokenization.
func (c *Counter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}
