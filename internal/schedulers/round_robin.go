package schedulers

import (
	"fmt"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// RoundRobin gives each ready process at most Quantum units of cpu per turn
// and then moves it to the back of a FIFO queue.
type RoundRobin struct {
	Quantum int
}

func (RoundRobin) Name() string {
	return "rr"
}

func (r RoundRobin) validate() error {
	if r.Quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, r.Quantum)
	}
	return nil
}

func (r RoundRobin) run(s *simulation) {
	zap.L().Debug("running round robin", zap.Int("quantum", r.Quantum))

	var queue deque.Deque[*job]
	enqueue := func(j *job) {
		queue.PushBack(j)
	}

	for {
		s.admit(enqueue)
		if queue.Len() == 0 {
			if !s.hasPending() {
				return
			}
			s.wait()
			continue
		}

		j := queue.PopFront()
		zap.L().Debug("dispatch", zap.Int("pid", j.process.ID), zap.Int("clock", s.cpu.Clock()))
		if s.run(j, r.Quantum) {
			continue
		}
		// arrivals during the slice go ahead of the preempted process
		s.admit(enqueue)
		zap.L().Debug("context switch", zap.Int("pid", j.process.ID), zap.Int("remaining", j.process.RemainingTime))
		queue.PushBack(j)
	}
}
