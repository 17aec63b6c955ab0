package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixed struct {
	wait, response, turnaround int
}

func (f fixed) WaitTime() int       { return f.wait }
func (f fixed) ResponseTime() int   { return f.response }
func (f fixed) TurnaroundTime() int { return f.turnaround }

func TestCalculateAverage(t *testing.T) {
	chk := require.New(t)

	wait, response, turnaround := CalculateAverage([]fixed{{1, 0, 4}, {2, 3, 5}})
	chk.InDelta(1.5, wait, 1e-9)
	chk.InDelta(1.5, response, 1e-9)
	chk.InDelta(4.5, turnaround, 1e-9)
}
