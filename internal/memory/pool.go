// Package memory simulates partition allocation against a single pool that
// is split on demand and never coalesced.
package memory

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"os-simulator/internal/core"
)

var (
	ErrInvalidSize     = errors.New("size must be greater than zero")
	ErrOutOfMemory     = errors.New("no free block large enough")
	ErrUnknownStrategy = errors.New("unknown placement strategy")
)

// Pool is an ordered, contiguous list of blocks covering [0, capacity).
type Pool struct {
	capacity int
	blocks   []core.MemoryBlock
	nextID   int
}

func New(capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidSize, capacity)
	}
	return &Pool{
		capacity: capacity,
		blocks:   []core.MemoryBlock{core.FreeBlock(1, 0, capacity)},
		nextID:   2,
	}, nil
}

func (p *Pool) Capacity() int {
	return p.capacity
}

// Allocate places size units for owner using strategy. On error the pool is
// left exactly as it was.
func (p *Pool) Allocate(owner, size int, strategy Strategy) error {
	if !strategy.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	if size <= 0 {
		return fmt.Errorf("%w: request %d for owner %d", ErrInvalidSize, size, owner)
	}

	i := strategy.find(p.blocks, size)
	if i < 0 {
		zap.L().Debug("allocation failed",
			zap.Int("owner", owner),
			zap.Int("size", size),
			zap.Stringer("strategy", strategy))
		return fmt.Errorf("%w: request %d for owner %d", ErrOutOfMemory, size, owner)
	}

	chosen := &p.blocks[i]
	remainder := chosen.Size - size
	chosen.Size = size
	chosen.Occupy(owner)
	if remainder > 0 {
		free := core.FreeBlock(p.nextID, chosen.End(), remainder)
		p.nextID++
		p.blocks = slices.Insert(p.blocks, i+1, free)
	}
	zap.L().Debug("allocated",
		zap.Int("owner", owner),
		zap.Int("size", size),
		zap.Int("offset", p.blocks[i].Offset),
		zap.Stringer("strategy", strategy))
	return nil
}

// Snapshot returns a copy of the current layout ordered by offset.
func (p *Pool) Snapshot() []core.MemoryBlock {
	out := make([]core.MemoryBlock, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.Clone()
	}
	return out
}

// FreeSpace is the total size of all free blocks.
func (p *Pool) FreeSpace() int {
	var free int
	for _, b := range p.blocks {
		if b.Free {
			free += b.Size
		}
	}
	return free
}

// LargestFree is the size of the biggest free block, 0 when memory is full.
func (p *Pool) LargestFree() int {
	var largest int
	for _, b := range p.blocks {
		if b.Free {
			largest = max(largest, b.Size)
		}
	}
	return largest
}
