// Package arena manages the raw byte buffer backing a memory pool and
// the word-granular address math layered over it.
package arena

import (
	"fmt"

	"github.com/joshuapare/memkit/internal/buf"
)

// Arena is a fixed-size, word-addressed byte buffer. It holds no
// region bookkeeping of its own; callers track which words are in use.
type Arena struct {
	data     []byte
	words    int
	wordSize int
	release  func() error
}

// New creates an arena of words * wordSize bytes. A zero-word arena is
// valid and holds no storage.
func New(words, wordSize int) (*Arena, error) {
	if wordSize <= 0 {
		return nil, fmt.Errorf("arena: word size %d must be positive", wordSize)
	}
	if words < 0 {
		return nil, fmt.Errorf("arena: negative word count %d", words)
	}
	size, ok := buf.MulOverflowSafe(words, wordSize)
	if !ok {
		return nil, fmt.Errorf("arena: %d words of %d bytes overflows", words, wordSize)
	}
	data, release, err := mapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("arena: map %d bytes: %w", size, err)
	}
	return &Arena{data: data, words: words, wordSize: wordSize, release: release}, nil
}

// Release returns the arena's storage to the OS and empties the arena.
// Safe to call more than once.
func (a *Arena) Release() error {
	if a == nil || a.release == nil {
		return nil
	}
	rel := a.release
	a.release = nil
	a.data = nil
	a.words = 0
	return rel()
}

// Words returns the capacity in words.
func (a *Arena) Words() int { return a.words }

// WordSize returns the word size in bytes.
func (a *Arena) WordSize() int { return a.wordSize }

// Capacity returns the capacity in bytes.
func (a *Arena) Capacity() int { return a.words * a.wordSize }

// Bytes returns the full backing buffer. The slice is a live view and
// goes stale after Release.
func (a *Arena) Bytes() []byte { return a.data }

// Contains reports whether the word offset falls inside the arena.
func (a *Arena) Contains(wordOff int) bool {
	return wordOff >= 0 && wordOff < a.words
}

// Slice returns the view covering n words starting at word offset off.
// Returns nil when the span does not fit in the arena.
func (a *Arena) Slice(off, n int) []byte {
	if off < 0 || n < 0 || off+n > a.words {
		return nil
	}
	return a.data[off*a.wordSize : (off+n)*a.wordSize]
}

// BytesToWords converts a byte count to whole words, rounding up. One
// byte still costs a full word; reuse is never byte-granular.
func (a *Arena) BytesToWords(n int) int {
	return (n + a.wordSize - 1) / a.wordSize
}
