package memory

import (
	"fmt"
	"strings"

	"os-simulator/internal/core"
)

// Strategy chooses which free block serves a request.
type Strategy int

const (
	FirstFit Strategy = iota + 1
	BestFit
)

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first-fit", "firstfit", "first":
		return FirstFit, nil
	case "best-fit", "bestfit", "best":
		return BestFit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool {
	return s == FirstFit || s == BestFit
}

// find returns the index of the block that should serve size, or -1.
func (s Strategy) find(blocks []core.MemoryBlock, size int) int {
	chosen := -1
	for i, b := range blocks {
		if !b.Free || b.Size < size {
			continue
		}
		if s == FirstFit {
			return i
		}
		// strict improvement keeps the lowest offset on ties
		if chosen == -1 || b.Size-size < blocks[chosen].Size-size {
			chosen = i
		}
	}
	return chosen
}
