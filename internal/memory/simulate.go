package memory

import "os-simulator/internal/core"

type Request struct {
	OwnerID int
	Size    int
}

// Step is the outcome of one request together with the layout after it.
type Step struct {
	Request Request
	Err     error
	Blocks  []core.MemoryBlock
}

func (s Step) Succeeded() bool {
	return s.Err == nil
}

// Simulate creates a pool and applies requests in order. Failed requests do
// not stop the run; their error is recorded on the step. Only an invalid
// capacity or strategy fails the whole simulation.
func Simulate(capacity int, strategy Strategy, requests []Request) ([]Step, error) {
	if !strategy.valid() {
		return nil, ErrUnknownStrategy
	}
	pool, err := New(capacity)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, len(requests))
	for i, r := range requests {
		steps[i] = Step{
			Request: r,
			Err:     pool.Allocate(r.OwnerID, r.Size, strategy),
			Blocks:  pool.Snapshot(),
		}
	}
	return steps, nil
}
