package schedulers

import (
	"go.uber.org/zap"

	"os-simulator/internal/metrics"
	"os-simulator/internal/responses"
)

// GenerateResponse turns a finished run into the API response shape. An
// empty run has no metrics and yields metrics.ErrEmptyProcessSet.
func GenerateResponse(runID string, result Result) (responses.ScheduleResponse, error) {
	summary, err := metrics.Summarize(result.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	details := make([]responses.ProcessResponse, len(summary.PerProcess))
	for i, m := range summary.PerProcess {
		details[i] = generateProcessDetails(m)
	}

	response := responses.ScheduleResponse{
		RunId:                 runID,
		Algorithm:             result.Algorithm,
		TotalTime:             summary.Makespan,
		IdleTime:              summary.IdleTime,
		AverageWaitingTime:    summary.AverageWaitingTime,
		AverageResponseTime:   summary.AverageResponseTime,
		AverageTurnAroundTime: summary.AverageTurnAroundTime,
		CpuUtilization:        summary.CpuUtilization,
		CpuThroughput:         summary.Throughput,
		Details:               details,
		Gantt:                 result.Slices,
	}
	zap.L().Debug("schedule response",
		zap.String("run_id", runID),
		zap.String("algorithm", result.Algorithm),
		zap.Int("total_time", response.TotalTime))
	return response, nil
}

func generateProcessDetails(m metrics.ProcessMetrics) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      m.ProcessID,
		ArrivalTime:    m.ArrivalTime,
		ServiceTime:    m.ServiceTime,
		StartTime:      m.StartTime,
		FinishTime:     m.FinishTime,
		ResponseTime:   m.Response,
		TurnAroundTime: m.Turnaround,
		WaitingTime:    m.Wait,
	}
}
