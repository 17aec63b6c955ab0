package util

// Timing is any record that exposes per-process waiting, response and
// turnaround times.
type Timing interface {
	WaitTime() int
	ResponseTime() int
	TurnaroundTime() int
}

// CalculateAverage returns the mean waiting, response and turnaround times.
// Callers must pass at least one record.
func CalculateAverage[T Timing](proccessDetails []T) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitTime())
		responseTimeSum += float64(proccess.ResponseTime())
		turnAroundTimeSum += float64(proccess.TurnaroundTime())
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}
