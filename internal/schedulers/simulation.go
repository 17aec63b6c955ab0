package schedulers

import "os-simulator/internal/core"

// idlePolicy decides how the clock moves when nothing is ready to run.
type idlePolicy int

const (
	// jumpToNextArrival moves the clock straight to the earliest pending arrival.
	jumpToNextArrival idlePolicy = iota
	// pollEveryTick advances the clock one unit at a time.
	pollEveryTick
)

// job is a process owned by the running simulation together with its
// position in the caller's input, used to break ties.
type job struct {
	process *core.Process
	order   int
}

// simulation is the complete state of one run: the cpu (and its clock), the
// processes that have not arrived yet, and the completion log.
type simulation struct {
	cpu       *core.Cpu
	pending   []*job
	completed []*job
	idle      idlePolicy
}

func newSimulation(processes []core.Process, idle idlePolicy) *simulation {
	pending := make([]*job, len(processes))
	for i, p := range processes {
		fresh := p.Reset()
		pending[i] = &job{process: &fresh, order: i}
	}
	return &simulation{
		cpu:       core.NewCpu(),
		pending:   pending,
		completed: make([]*job, 0, len(processes)),
		idle:      idle,
	}
}

// admit drains every pending job that has arrived by the current clock into
// enqueue, in input order. Jobs that have not arrived stay pending.
func (s *simulation) admit(enqueue func(*job)) {
	clock := s.cpu.Clock()
	remaining := s.pending[:0]
	for _, j := range s.pending {
		if j.process.ArrivalTime <= clock {
			enqueue(j)
		} else {
			remaining = append(remaining, j)
		}
	}
	clear(s.pending[len(remaining):])
	s.pending = remaining
}

func (s *simulation) hasPending() bool {
	return len(s.pending) > 0
}

// wait idles the cpu because nothing is ready. Must only be called while
// jobs are still pending.
func (s *simulation) wait() {
	if s.idle == pollEveryTick {
		s.cpu.Tick()
		return
	}
	next := s.pending[0].process.ArrivalTime
	for _, j := range s.pending[1:] {
		next = min(next, j.process.ArrivalTime)
	}
	s.cpu.IdleUntil(next)
}

// run gives the job up to limit units of cpu (limit <= 0 runs it to the end)
// and records it as completed when it finishes.
func (s *simulation) run(j *job, limit int) bool {
	done := s.cpu.Execute(j.process, limit)
	if done {
		s.completed = append(s.completed, j)
	}
	return done
}

func (s *simulation) result(algorithm string) Result {
	processes := make([]core.Process, len(s.completed))
	for i, j := range s.completed {
		processes[i] = *j.process
	}
	return Result{
		Algorithm: algorithm,
		Processes: processes,
		Slices:    s.cpu.Slices(),
		Cpu:       s.cpu.Metric(),
	}
}
