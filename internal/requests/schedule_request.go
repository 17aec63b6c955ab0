package requests

import (
	"fmt"

	"os-simulator/internal/core"
)

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	ServiceTime int `json:"service_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured round robin quantum when set.
	TimeQuantum int `json:"time_quantum,omitempty"`
}

// Processes converts the jobs into fresh process records.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.NewProcess(job.ProcessId, job.ArrivalTime, job.ServiceTime)
	}
	return processes
}

// FromServiceTimes builds jobs the way the console simulator numbers them:
// ids start at 1 and each job arrives at its 0-based input position.
func FromServiceTimes(serviceTimes []int) []Job {
	jobs := make([]Job, len(serviceTimes))
	for i, service := range serviceTimes {
		jobs[i] = Job{ProcessId: i + 1, ArrivalTime: i, ServiceTime: service}
	}
	return jobs
}

func (j Job) String() string {
	return fmt.Sprintf("pid:%d arrival:%d service:%d", j.ProcessId, j.ArrivalTime, j.ServiceTime)
}
