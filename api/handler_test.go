package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"os-simulator/config"
	"os-simulator/internal/responses"
)

func newApp() *fiber.App {
	app := fiber.New()
	Register(app.Group("/api/v1"), NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MemoryCapacity:        100,
		MemoryStrategy:        "first-fit",
	}))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

const abcJobs = `{"jobs":[
	{"process_id":1,"arrival_time":0,"service_time":5},
	{"process_id":2,"arrival_time":1,"service_time":3},
	{"process_id":3,"arrival_time":2,"service_time":1}]`

func TestShortestProcessNextEndpoint(t *testing.T) {
	chk := require.New(t)

	var response responses.ScheduleResponse
	chk.Equal(http.StatusOK, post(t, newApp(), "/api/v1/spn", abcJobs+"}", &response))
	chk.NotEmpty(response.RunId)
	chk.Equal("spn", response.Algorithm)
	chk.Equal(9, response.TotalTime)
	chk.Len(response.Details, 3)
	chk.Equal(3, response.Details[1].ProcessId)
	chk.Equal(5, response.Details[1].StartTime)
	chk.Equal(6, response.Details[1].FinishTime)
	chk.InDelta(3.0/9, response.CpuThroughput, 1e-9)
}

func TestRoundRobinEndpointQuantum(t *testing.T) {
	chk := require.New(t)
	app := newApp()

	var configured responses.ScheduleResponse
	chk.Equal(http.StatusOK, post(t, app, "/api/v1/rr", abcJobs+"}", &configured))
	chk.Len(configured.Gantt, 6)

	var override responses.ScheduleResponse
	chk.Equal(http.StatusOK, post(t, app, "/api/v1/rr", abcJobs+`,"time_quantum":10}`, &override))
	chk.Len(override.Gantt, 3)

	var failure map[string]string
	chk.Equal(http.StatusBadRequest, post(t, app, "/api/v1/rr", abcJobs+`,"time_quantum":-1}`, &failure))
	chk.Contains(failure["error"], "quantum")
	chk.NotEmpty(failure["run_id"])
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	chk := require.New(t)

	var response responses.AllAlgorithmsResponse
	chk.Equal(http.StatusOK, post(t, newApp(), "/api/v1/all", abcJobs+"}", &response))
	chk.Len(response.Results, 3)
	for i, algorithm := range []string{"fcfs", "spn", "rr"} {
		chk.Equal(algorithm, response.Results[i].Algorithm)
		chk.Equal(response.RunId, response.Results[i].RunId)
		chk.Equal(9, response.Results[i].TotalTime)
	}
}

func TestScheduleEndpointErrors(t *testing.T) {
	chk := require.New(t)
	app := newApp()

	var failure map[string]string
	chk.Equal(http.StatusBadRequest, post(t, app, "/api/v1/fcfs", "{not json", &failure))
	chk.Equal("invalid request format", failure["error"])

	chk.Equal(http.StatusBadRequest, post(t, app, "/api/v1/fcfs",
		`{"jobs":[{"process_id":1,"arrival_time":0,"service_time":0}]}`, &failure))
	chk.Contains(failure["error"], "invalid process")

	chk.Equal(http.StatusUnprocessableEntity, post(t, app, "/api/v1/fcfs", `{"jobs":[]}`, &failure))
	chk.Contains(failure["error"], "no completed processes")
}

func TestMemoryEndpoint(t *testing.T) {
	chk := require.New(t)

	var response responses.MemoryResponse
	chk.Equal(http.StatusOK, post(t, newApp(), "/api/v1/memory",
		`{"allocations":[{"owner_id":1,"size":30},{"owner_id":2,"size":80}]}`, &response))
	chk.Equal(100, response.Capacity)
	chk.Equal("first-fit", response.Strategy)
	chk.Len(response.Steps, 2)

	first := response.Steps[0]
	chk.True(first.Success)
	chk.Len(first.Blocks, 2)
	chk.Equal(30, first.Blocks[0].Size)
	owner, ok := first.Blocks[0].Owner()
	chk.True(ok)
	chk.Equal(1, owner)
	chk.True(first.Blocks[1].Free)
	chk.Equal(70, first.Blocks[1].Size)

	second := response.Steps[1]
	chk.False(second.Success)
	chk.Contains(second.Error, "no free block")
	chk.Equal(first.Blocks, second.Blocks)
}

func TestMemoryEndpointErrors(t *testing.T) {
	chk := require.New(t)
	app := newApp()

	var failure map[string]string
	chk.Equal(http.StatusBadRequest, post(t, app, "/api/v1/memory",
		`{"strategy":"worst-fit","allocations":[]}`, &failure))
	chk.Contains(failure["error"], "unknown placement strategy")

	chk.Equal(http.StatusBadRequest, post(t, app, "/api/v1/memory",
		`{"capacity":-1,"allocations":[]}`, &failure))
	chk.Contains(failure["error"], "size must be greater than zero")
}
