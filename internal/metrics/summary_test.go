package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
	"os-simulator/internal/metrics"
	"os-simulator/internal/schedulers"
)

func TestSummarizeFirstComeFirstServe(t *testing.T) {
	chk := require.New(t)

	result, err := schedulers.Schedule([]core.Process{
		core.NewProcess(1, 0, 5),
		core.NewProcess(2, 1, 3),
		core.NewProcess(3, 2, 1),
	}, schedulers.FirstComeFirstServe{})
	chk.NoError(err)

	summary, err := metrics.Summarize(result.Processes)
	chk.NoError(err)
	chk.Equal([]metrics.ProcessMetrics{
		{ProcessID: 1, ArrivalTime: 0, ServiceTime: 5, StartTime: 0, FinishTime: 5, Response: 0, Wait: 0, Turnaround: 5},
		{ProcessID: 2, ArrivalTime: 1, ServiceTime: 3, StartTime: 5, FinishTime: 8, Response: 4, Wait: 4, Turnaround: 7},
		{ProcessID: 3, ArrivalTime: 2, ServiceTime: 1, StartTime: 8, FinishTime: 9, Response: 6, Wait: 6, Turnaround: 7},
	}, summary.PerProcess)
	chk.InDelta(10.0/3, summary.AverageResponseTime, 1e-9)
	chk.InDelta(10.0/3, summary.AverageWaitingTime, 1e-9)
	chk.InDelta(19.0/3, summary.AverageTurnAroundTime, 1e-9)
	chk.Equal(9, summary.Makespan)
	chk.InDelta(3.0/9, summary.Throughput, 1e-9)
	chk.Equal(0, summary.IdleTime)
	chk.InDelta(1.0, summary.CpuUtilization, 1e-9)
}

func TestSummarizeRoundRobinWaitIncludesPreemption(t *testing.T) {
	chk := require.New(t)

	result, err := schedulers.Schedule([]core.Process{
		core.NewProcess(1, 0, 5),
		core.NewProcess(2, 1, 3),
		core.NewProcess(3, 2, 1),
	}, schedulers.RoundRobin{Quantum: 2})
	chk.NoError(err)

	summary, err := metrics.Summarize(result.Processes)
	chk.NoError(err)
	// completion order: C finishes 5, B finishes 8, A finishes 9
	chk.Equal(3, summary.PerProcess[0].ProcessID)
	chk.Equal(2, summary.PerProcess[0].Wait)
	chk.Equal(4, summary.PerProcess[1].Wait)
	chk.Equal(1, summary.PerProcess[1].Response)
	chk.Equal(4, summary.PerProcess[2].Wait)
	chk.Equal(9, summary.Makespan)
}

func TestSummarizeIdleCpu(t *testing.T) {
	chk := require.New(t)

	result, err := schedulers.Schedule([]core.Process{
		core.NewProcess(1, 2, 2),
		core.NewProcess(2, 8, 2),
	}, schedulers.ShortestProcessNext{})
	chk.NoError(err)

	summary, err := metrics.Summarize(result.Processes)
	chk.NoError(err)
	chk.Equal(10, summary.Makespan)
	chk.Equal(4, summary.BusyTime)
	chk.Equal(6, summary.IdleTime)
	chk.InDelta(0.4, summary.CpuUtilization, 1e-9)
	chk.InDelta(0.2, summary.Throughput, 1e-9)
}

func TestSummarizeErrors(t *testing.T) {
	chk := require.New(t)

	_, err := metrics.Summarize(nil)
	chk.ErrorIs(err, metrics.ErrEmptyProcessSet)

	_, err = metrics.Summarize([]core.Process{core.NewProcess(1, 0, 1)})
	chk.ErrorIs(err, metrics.ErrIncompleteProcess)
}
