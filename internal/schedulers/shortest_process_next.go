package schedulers

import (
	"cmp"

	"github.com/addrummond/heap"
	"go.uber.org/zap"
)

// ShortestProcessNext is non-preemptive shortest-job-next: whenever the cpu
// is free the ready process with the smallest service time runs to the end.
type ShortestProcessNext struct{}

func (ShortestProcessNext) Name() string {
	return "spn"
}

func (ShortestProcessNext) validate() error {
	return nil
}

// readyJob orders the ready set by service time, then arrival, then input order.
type readyJob struct {
	*job
}

func (a *readyJob) Cmp(b *readyJob) int {
	if c := cmp.Compare(a.process.ServiceTime, b.process.ServiceTime); c != 0 {
		return c
	}
	if c := cmp.Compare(a.process.ArrivalTime, b.process.ArrivalTime); c != 0 {
		return c
	}
	return cmp.Compare(a.order, b.order)
}

func (ShortestProcessNext) run(s *simulation) {
	var ready heap.Heap[readyJob, heap.Min]
	enqueue := func(j *job) {
		heap.PushOrderable(&ready, readyJob{j})
	}

	for {
		s.admit(enqueue)
		next, ok := heap.PopOrderable(&ready)
		if !ok {
			if !s.hasPending() {
				return
			}
			s.wait()
			continue
		}
		zap.L().Debug("dispatch shortest process",
			zap.Int("pid", next.process.ID),
			zap.Int("service", next.process.ServiceTime),
			zap.Int("clock", s.cpu.Clock()))
		s.run(next.job, 0)
	}
}
