package core

import (
	"fmt"

	"go.uber.org/zap"
)

// Slice is one contiguous stretch of CPU time given to a process.
type Slice struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

func (s Slice) Duration() int {
	return s.End - s.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is the simulated processor. It owns the clock of a single run and
// records every slice it executes.
type Cpu struct {
	clock  int
	busy   int
	idle   int
	slices []Slice
}

func NewCpu() *Cpu {
	return &Cpu{}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t, counting the gap as idle time.
// It is a no-op when the clock is already at or past t.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.idle += t - c.clock
	c.clock = t
}

// Tick idles the CPU for a single time unit.
func (c *Cpu) Tick() {
	c.IdleUntil(c.clock + 1)
}

// Execute runs the process for at most limit units (limit <= 0 means run to
// completion) and reports whether the process finished.
func (c *Cpu) Execute(p *Process, limit int) bool {
	if p.RemainingTime <= 0 {
		panic(fmt.Sprintf("pid %d: dispatched with no remaining time", p.ID))
	}
	if c.clock < p.ArrivalTime {
		panic(fmt.Sprintf("pid %d: dispatched at %d before arrival %d", p.ID, c.clock, p.ArrivalTime))
	}
	p.dispatch(c.clock)

	run := p.RemainingTime
	if limit > 0 {
		run = min(limit, p.RemainingTime)
	}
	c.slices = append(c.slices, Slice{ProcessID: p.ID, Start: c.clock, End: c.clock + run})
	c.clock += run
	c.busy += run
	p.RemainingTime -= run
	zap.L().Debug("cpu slice",
		zap.Int("pid", p.ID),
		zap.Int("start", c.clock-run),
		zap.Int("end", c.clock),
		zap.Int("remaining", p.RemainingTime))

	if p.RemainingTime > 0 {
		return false
	}
	p.complete(c.clock)
	return true
}

func (c *Cpu) Slices() []Slice {
	out := make([]Slice, len(c.slices))
	copy(out, c.slices)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.idle,
	}
}
