package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleCommand(t *testing.T) {
	chk := require.New(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"schedule", "--algorithm", "all", "--quantum", "2", "--service", "5,3,1"}, &stdout, &stderr)
	chk.Equal(0, code, stderr.String())
	out := stdout.String()
	chk.Contains(out, "First-come, first-serve")
	chk.Contains(out, "Shortest process next")
	chk.Contains(out, "Round-robin (quantum 2)")
}

func TestScheduleCommandFromFile(t *testing.T) {
	chk := require.New(t)

	path := filepath.Join(t.TempDir(), "jobs.csv")
	chk.NoError(os.WriteFile(path, []byte("0,5\n1,3\n2,1\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"schedule", "-a", "spn", "-i", path}, &stdout, &stderr)
	chk.Equal(0, code, stderr.String())
	chk.Contains(stdout.String(), "0\t5\t6\t9")
}

func TestScheduleCommandErrors(t *testing.T) {
	chk := require.New(t)

	var stdout, stderr bytes.Buffer
	chk.Equal(1, run([]string{"schedule", "-a", "rr", "-q", "0", "-s", "1,2"}, &stdout, &stderr))
	chk.Contains(stderr.String(), "quantum")

	stderr.Reset()
	chk.Equal(1, run([]string{"schedule", "-a", "lottery", "-s", "1"}, &stdout, &stderr))
	chk.Contains(stderr.String(), "unknown scheduling algorithm")

	stderr.Reset()
	chk.Equal(1, run([]string{"schedule"}, &stdout, &stderr))
	chk.Contains(stderr.String(), "--input or --service")

	chk.Equal(2, run(nil, &stdout, &stderr))
	chk.Equal(2, run([]string{"defrag"}, &stdout, &stderr))
}

func TestMemoryCommand(t *testing.T) {
	chk := require.New(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"memory", "--capacity", "100", "--strategy", "first-fit", "--request", "1:30,2:80"}, &stdout, &stderr)
	chk.Equal(0, code, stderr.String())
	out := stdout.String()
	chk.Contains(out, "Memory pool of 100")
	chk.Contains(out, "no free block")

	stderr.Reset()
	chk.Equal(1, run([]string{"memory", "-r", "1-30"}, &stdout, &stderr))
	chk.Contains(stderr.String(), "owner:size")
}
