package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"os-simulator/internal/core"
)

var (
	ErrInvalidQuantum   = errors.New("round robin quantum must be greater than zero")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrDuplicateProcess = errors.New("duplicate process id")
)

// Algorithm selects one scheduling discipline. The set of variants is closed:
// FirstComeFirstServe, ShortestProcessNext and RoundRobin.
type Algorithm interface {
	Name() string
	validate() error
	run(s *simulation)
}

// Result is the outcome of one simulation run.
type Result struct {
	Algorithm string
	// Processes in completion order, with all timing fields set.
	Processes []core.Process
	Slices    []core.Slice
	Cpu       core.CpuMetric
}

// ParseAlgorithm maps a driver selector to an algorithm. The quantum is only
// used for round robin and is validated when the algorithm runs.
func ParseAlgorithm(name string, quantum int) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve":
		return FirstComeFirstServe{}, nil
	case "spn", "sjf", "shortest-process-next", "shortest-job-first":
		return ShortestProcessNext{}, nil
	case "rr", "round-robin":
		return RoundRobin{Quantum: quantum}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// All returns every supported algorithm, round robin using the given quantum.
func All(quantum int) []Algorithm {
	return []Algorithm{
		FirstComeFirstServe{},
		ShortestProcessNext{},
		RoundRobin{Quantum: quantum},
	}
}

// Schedule runs the algorithm over private copies of processes. The input
// slice is never modified.
func Schedule(processes []core.Process, algorithm Algorithm) (Result, error) {
	return schedule(processes, algorithm, jumpToNextArrival)
}

func schedule(processes []core.Process, algorithm Algorithm, idle idlePolicy) (Result, error) {
	if algorithm == nil {
		return Result{}, ErrUnknownAlgorithm
	}
	if err := algorithm.validate(); err != nil {
		return Result{}, err
	}
	if err := validateProcesses(processes); err != nil {
		return Result{}, err
	}

	zap.L().Debug("running scheduler",
		zap.String("algorithm", algorithm.Name()),
		zap.Int("processes", len(processes)))

	s := newSimulation(processes, idle)
	algorithm.run(s)
	return s.result(algorithm.Name()), nil
}

func validateProcesses(processes []core.Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if p.ServiceTime <= 0 {
			return fmt.Errorf("%w: pid %d has non-positive service time %d", ErrInvalidProcess, p.ID, p.ServiceTime)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
