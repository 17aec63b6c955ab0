// Command ossim runs the scheduling and memory simulations from the console.
//
//	ossim schedule --algorithm all --service 5,3,1
//	ossim schedule --algorithm rr --quantum 2 --input jobs.csv
//	ossim memory --capacity 100 --strategy best-fit --request 1:30,2:80
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"os-simulator/config"
	"os-simulator/internal/logging"
	"os-simulator/internal/memory"
	"os-simulator/internal/metrics"
	"os-simulator/internal/report"
	"os-simulator/internal/requests"
	"os-simulator/internal/schedulers"
)

var errUsage = errors.New("usage: ossim <schedule|memory> [flags]")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(stderr, errUsage)
		return 2
	}

	cfg, err := config.Load("")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	var cmd func([]string, *config.SchedulerConfig, io.Writer) error
	switch args[0] {
	case "schedule":
		cmd = scheduleCommand
	case "memory":
		cmd = memoryCommand
	default:
		_, _ = fmt.Fprintln(stderr, errUsage)
		return 2
	}

	if err := cmd(args[1:], cfg, stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func newLogger(verbose bool, level string) (func(), error) {
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, true)
	if err != nil {
		return nil, err
	}
	return logging.Install(logger.With(zap.String("run_id", uuid.New().String()))), nil
}

func scheduleCommand(args []string, cfg *config.SchedulerConfig, w io.Writer) error {
	flags := pflag.NewFlagSet("schedule", pflag.ContinueOnError)
	algorithm := flags.StringP("algorithm", "a", "all", "fcfs, spn, rr or all")
	quantum := flags.IntP("quantum", "q", cfg.RoundRobinTimeQuantum, "round robin time quantum")
	input := flags.StringP("input", "i", "", "CSV file with service or arrival,service rows")
	services := flags.IntSliceP("service", "s", nil, "service times; process i arrives at time i")
	verbose := flags.BoolP("verbose", "v", false, "log every dispatch")
	if err := flags.Parse(args); err != nil {
		return err
	}

	restore, err := newLogger(*verbose, "warn")
	if err != nil {
		return err
	}
	defer restore()

	jobs, err := loadJobs(*input, *services)
	if err != nil {
		return err
	}
	processes := requests.ScheduleRequests{Jobs: jobs}.Processes()

	var algorithms []schedulers.Algorithm
	if strings.EqualFold(*algorithm, "all") {
		algorithms = schedulers.All(*quantum)
	} else {
		a, err := schedulers.ParseAlgorithm(*algorithm, *quantum)
		if err != nil {
			return err
		}
		algorithms = []schedulers.Algorithm{a}
	}

	for _, a := range algorithms {
		result, err := schedulers.Schedule(processes, a)
		if err != nil {
			return err
		}
		summary, err := metrics.Summarize(result.Processes)
		if err != nil {
			return err
		}
		report.Title(w, title(a))
		report.Gantt(w, result.Slices)
		report.Schedule(w, summary)
	}
	return nil
}

func memoryCommand(args []string, cfg *config.SchedulerConfig, w io.Writer) error {
	flags := pflag.NewFlagSet("memory", pflag.ContinueOnError)
	capacity := flags.IntP("capacity", "c", cfg.MemoryCapacity, "total pool size")
	strategyName := flags.StringP("strategy", "s", cfg.MemoryStrategy, "first-fit or best-fit")
	input := flags.StringP("input", "i", "", "CSV file with owner,size rows")
	pairs := flags.StringSliceP("request", "r", nil, "owner:size allocation requests")
	verbose := flags.BoolP("verbose", "v", false, "log every allocation")
	if err := flags.Parse(args); err != nil {
		return err
	}

	restore, err := newLogger(*verbose, "warn")
	if err != nil {
		return err
	}
	defer restore()

	strategy, err := memory.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}
	allocations, err := loadAllocations(*input, *pairs)
	if err != nil {
		return err
	}
	steps, err := memory.Simulate(*capacity, strategy, requests.MemoryRequest{Allocations: allocations}.Requests())
	if err != nil {
		return err
	}
	report.Title(w, fmt.Sprintf("Memory pool of %d", *capacity))
	report.Allocations(w, strategy, steps)
	return nil
}

func title(a schedulers.Algorithm) string {
	switch a := a.(type) {
	case schedulers.FirstComeFirstServe:
		return "First-come, first-serve"
	case schedulers.ShortestProcessNext:
		return "Shortest process next"
	case schedulers.RoundRobin:
		return fmt.Sprintf("Round-robin (quantum %d)", a.Quantum)
	}
	return a.Name()
}

func loadJobs(path string, services []int) ([]requests.Job, error) {
	if path == "" {
		if len(services) == 0 {
			return nil, fmt.Errorf("%w: --input or --service is required", requests.ErrInvalidInput)
		}
		return requests.FromServiceTimes(services), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return requests.LoadJobs(f)
}

func loadAllocations(path string, pairs []string) ([]requests.Allocation, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return requests.LoadAllocations(f)
	}
	allocations := make([]requests.Allocation, 0, len(pairs))
	for _, pair := range pairs {
		owner, size, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: request %q, want owner:size", requests.ErrInvalidInput, pair)
		}
		o, err := strconv.Atoi(owner)
		if err != nil {
			return nil, fmt.Errorf("%w: owner in %q", requests.ErrInvalidInput, pair)
		}
		s, err := strconv.Atoi(size)
		if err != nil {
			return nil, fmt.Errorf("%w: size in %q", requests.ErrInvalidInput, pair)
		}
		allocations = append(allocations, requests.Allocation{OwnerId: o, Size: s})
	}
	return allocations, nil
}
