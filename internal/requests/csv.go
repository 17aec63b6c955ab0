package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// LoadJobs reads one job per CSV row. A row is either "service" or
// "arrival,service"; a third column, when present, is the process id.
// Ids default to the 1-based row number and arrivals to the 0-based one.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidInput, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		fields := make([]int, len(row))
		for k := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[k]))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInvalidInput, i+1, k+1, err)
			}
			fields[k] = v
		}
		job := Job{ProcessId: i + 1, ArrivalTime: i}
		switch len(fields) {
		case 1:
			job.ServiceTime = fields[0]
		case 2:
			job.ArrivalTime, job.ServiceTime = fields[0], fields[1]
		case 3:
			job.ArrivalTime, job.ServiceTime, job.ProcessId = fields[0], fields[1], fields[2]
		default:
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidInput, i+1, len(fields))
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// LoadAllocations reads "owner,size" rows.
func LoadAllocations(r io.Reader) ([]Allocation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidInput, err)
	}
	allocations := make([]Allocation, len(rows))
	for i, row := range rows {
		owner, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d owner: %v", ErrInvalidInput, i+1, err)
		}
		size, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d size: %v", ErrInvalidInput, i+1, err)
		}
		allocations[i] = Allocation{OwnerId: owner, Size: size}
	}
	return allocations, nil
}
