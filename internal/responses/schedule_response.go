package responses

import "os-simulator/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	ServiceTime    int `json:"service_time"`
	StartTime      int `json:"start_time"`
	FinishTime     int `json:"finish_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []core.Slice      `json:"gantt"`
}

type AllAlgorithmsResponse struct {
	RunId   string             `json:"run_id"`
	Results []ScheduleResponse `json:"results"`
}
