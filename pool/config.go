package pool

import "github.com/joshuapare/memkit/pool/fit"

// Config describes how a Manager carves up its arena.
type Config struct {
	// WordSize is the allocation granularity in bytes. Every request is
	// rounded up to whole words of this size.
	WordSize int

	// Strategy picks the free region that satisfies each request.
	Strategy fit.Strategy
}

// DefaultConfig allocates in 8-byte words with best-fit placement.
var DefaultConfig = Config{
	WordSize: 8,
	Strategy: fit.BestFit{},
}

// NewFromConfig creates an uninitialized Manager from cfg.
func NewFromConfig(cfg Config) (*Manager, error) {
	return New(cfg.WordSize, cfg.Strategy)
}
