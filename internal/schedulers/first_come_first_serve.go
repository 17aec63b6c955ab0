package schedulers

import (
	"cmp"
	"slices"

	"go.uber.org/zap"
)

// FirstComeFirstServe runs processes to completion in order of arrival.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string {
	return "fcfs"
}

func (FirstComeFirstServe) validate() error {
	return nil
}

func (FirstComeFirstServe) run(s *simulation) {
	// sort jobs by arrival time, ties keep input order
	jobs := s.pending
	s.pending = nil
	slices.SortStableFunc(jobs, func(a, b *job) int {
		return cmp.Compare(a.process.ArrivalTime, b.process.ArrivalTime)
	})

	for _, j := range jobs {
		s.cpu.IdleUntil(j.process.ArrivalTime)
		zap.L().Debug("dispatch", zap.Int("pid", j.process.ID), zap.Int("clock", s.cpu.Clock()))
		s.run(j, 0)
	}
}
