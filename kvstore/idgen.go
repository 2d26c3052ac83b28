package kvstore

import (
	"github.com/godruoyi/go-snowflake"
	"go.uber.org/atomic"
)

// NewSequenceIDGenerator hands out start, start+1, ... and is safe for concurrent use.
func NewSequenceIDGenerator(start uint64) IDGenerator {
	return &sequenceIDGenerator{
		next: atomic.NewUint64(start),
	}
}

type sequenceIDGenerator struct {
	next *atomic.Uint64
}

func (g *sequenceIDGenerator) NextID() uint64 {
	return g.next.Inc() - 1
}

func NewSnowflakeIDGenerator() IDGenerator {
	return snowflakeIDGenerator{}
}

type snowflakeIDGenerator struct{}

func (snowflakeIDGenerator) NextID() uint64 {
	return snowflake.ID()
}
