package core

import "fmt"

// Process is a synthetic process record. Start and finish times stay unset
// until the scheduler dispatches and completes the process.
type Process struct {
	ID            int
	ArrivalTime   int
	ServiceTime   int
	RemainingTime int

	startTime  *int
	finishTime *int
}

func NewProcess(id, arrivalTime, serviceTime int) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrivalTime,
		ServiceTime:   serviceTime,
		RemainingTime: serviceTime,
	}
}

// Reset returns a copy with the timing fields cleared, ready for a fresh run.
func (p Process) Reset() Process {
	return NewProcess(p.ID, p.ArrivalTime, p.ServiceTime)
}

func (p *Process) StartTime() (int, bool) {
	if p.startTime == nil {
		return 0, false
	}
	return *p.startTime, true
}

func (p *Process) FinishTime() (int, bool) {
	if p.finishTime == nil {
		return 0, false
	}
	return *p.finishTime, true
}

func (p *Process) Started() bool {
	return p.startTime != nil
}

func (p *Process) Finished() bool {
	return p.finishTime != nil
}

// dispatch records the first dispatch; later dispatches keep the original start.
func (p *Process) dispatch(clock int) {
	if p.startTime != nil {
		return
	}
	start := clock
	p.startTime = &start
}

func (p *Process) complete(clock int) {
	if p.finishTime != nil {
		panic(fmt.Sprintf("pid %d: finish time already set", p.ID))
	}
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("pid %d: completed with %d units remaining", p.ID, p.RemainingTime))
	}
	finish := clock
	p.finishTime = &finish
}

// ResponseTime is the time from arrival to first dispatch.
func (p *Process) ResponseTime() int {
	start, _ := p.StartTime()
	return start - p.ArrivalTime
}

// WaitTime is the time spent ready but not running.
func (p *Process) WaitTime() int {
	return p.TurnaroundTime() - p.ServiceTime
}

// TurnaroundTime is the time from arrival to completion.
func (p *Process) TurnaroundTime() int {
	finish, _ := p.FinishTime()
	return finish - p.ArrivalTime
}

func (p Process) String() string {
	return fmt.Sprintf("pid:%d(arrival=%d, service=%d)", p.ID, p.ArrivalTime, p.ServiceTime)
}
