// Package report renders simulation results as text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-simulator/internal/core"
	"os-simulator/internal/memory"
	"os-simulator/internal/metrics"
)

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints one cell per slice followed by the slice boundaries.
func Gantt(w io.Writer, slices []core.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(slices) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, s := range slices {
		pid := strconv.Itoa(s.ProcessID)
		padding := strings.Repeat(" ", max(0, 8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range slices {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(slices)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule prints the per-process table with averages and throughput in the footer.
func Schedule(w io.Writer, summary metrics.Summary) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Service", "Start", "Finish", "Response", "Wait", "Turnaround"})
	for _, m := range summary.PerProcess {
		table.Append([]string{
			strconv.Itoa(m.ProcessID),
			strconv.Itoa(m.ArrivalTime),
			strconv.Itoa(m.ServiceTime),
			strconv.Itoa(m.StartTime),
			strconv.Itoa(m.FinishTime),
			strconv.Itoa(m.Response),
			strconv.Itoa(m.Wait),
			strconv.Itoa(m.Turnaround),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", summary.Throughput),
		fmt.Sprintf("Average\n%.2f", summary.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", summary.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", summary.AverageTurnAroundTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "cpu busy %d, idle %d, utilization %.2f%%\n\n",
		summary.BusyTime, summary.IdleTime, summary.CpuUtilization*100)
}

// Blocks prints the pool layout.
func Blocks(w io.Writer, blocks []core.MemoryBlock) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Block", "Offset", "Size", "State", "Owner"})
	for _, b := range blocks {
		state, owner := "free", "-"
		if id, ok := b.Owner(); ok {
			state, owner = "used", strconv.Itoa(id)
		}
		table.Append([]string{
			strconv.Itoa(b.ID),
			strconv.Itoa(b.Offset),
			strconv.Itoa(b.Size),
			state,
			owner,
		})
	}
	table.Render()
}

// Allocations prints every request outcome and the final layout.
func Allocations(w io.Writer, strategy memory.Strategy, steps []memory.Step) {
	_, _ = fmt.Fprintf(w, "Allocation requests (%s)\n", strategy)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Owner", "Size", "Result"})
	for i, step := range steps {
		outcome := "ok"
		if step.Err != nil {
			outcome = step.Err.Error()
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(step.Request.OwnerID),
			strconv.Itoa(step.Request.Size),
			outcome,
		})
	}
	table.Render()
	if len(steps) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "Final layout")
	Blocks(w, steps[len(steps)-1].Blocks)
}
