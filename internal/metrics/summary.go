// Package metrics derives per-process and aggregate timing figures from a
// completed schedule.
package metrics

import (
	"errors"
	"fmt"

	"os-simulator/internal/core"
	"os-simulator/internal/util"
)

var (
	ErrEmptyProcessSet   = errors.New("no completed processes to summarize")
	ErrIncompleteProcess = errors.New("process has not completed")
)

type ProcessMetrics struct {
	ProcessID   int
	ArrivalTime int
	ServiceTime int
	StartTime   int
	FinishTime  int
	Response    int
	Wait        int
	Turnaround  int
}

func (m ProcessMetrics) WaitTime() int       { return m.Wait }
func (m ProcessMetrics) ResponseTime() int   { return m.Response }
func (m ProcessMetrics) TurnaroundTime() int { return m.Turnaround }

type Summary struct {
	PerProcess            []ProcessMetrics
	AverageResponseTime   float64
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	// Throughput is completed processes per unit of time over the makespan.
	Throughput     float64
	Makespan       int
	BusyTime       int
	IdleTime       int
	CpuUtilization float64
}

// Summarize computes the metrics for completed, in the order given.
func Summarize(completed []core.Process) (Summary, error) {
	if len(completed) == 0 {
		return Summary{}, ErrEmptyProcessSet
	}

	perProcess := make([]ProcessMetrics, len(completed))
	var makespan, busy int
	for i := range completed {
		p := &completed[i]
		start, started := p.StartTime()
		finish, finished := p.FinishTime()
		if !started || !finished {
			return Summary{}, fmt.Errorf("%w: pid %d", ErrIncompleteProcess, p.ID)
		}
		perProcess[i] = ProcessMetrics{
			ProcessID:   p.ID,
			ArrivalTime: p.ArrivalTime,
			ServiceTime: p.ServiceTime,
			StartTime:   start,
			FinishTime:  finish,
			Response:    p.ResponseTime(),
			Wait:        p.WaitTime(),
			Turnaround:  p.TurnaroundTime(),
		}
		makespan = max(makespan, finish)
		busy += p.ServiceTime
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(perProcess)
	return Summary{
		PerProcess:            perProcess,
		AverageResponseTime:   averageResponseTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Throughput:            float64(len(completed)) / float64(makespan),
		Makespan:              makespan,
		BusyTime:              busy,
		IdleTime:              makespan - busy,
		CpuUtilization:        float64(busy) / float64(makespan),
	}, nil
}
