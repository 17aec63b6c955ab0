package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"os-simulator/config"
	"os-simulator/internal/memory"
	"os-simulator/internal/metrics"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestProcessNext(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Memory(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handler routes on router.
func Register(router fiber.Router, h SchedulerHandler) {
	router.Post("/fcfs", h.FirstComeFirstServe)
	router.Post("/rr", h.RoundRobin)
	router.Post("/spn", h.ShortestProcessNext)
	router.Post("/sjf", h.ShortestProcessNext)
	router.Post("/all", h.AllAlgorithms)
	router.Post("/memory", h.Memory)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequests) schedulers.Algorithm {
		return schedulers.FirstComeFirstServe{}
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request requests.ScheduleRequests) schedulers.Algorithm {
		return schedulers.RoundRobin{Quantum: s.quantum(request)}
	})
}

func (s *SchedulerHandlerImpl) ShortestProcessNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequests) schedulers.Algorithm {
		return schedulers.ShortestProcessNext{}
	})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	runID := uuid.New().String()
	response := responses.AllAlgorithmsResponse{RunId: runID}
	for _, algorithm := range schedulers.All(s.quantum(request)) {
		result, err := s.run(runID, request, algorithm)
		if err != nil {
			return failed(ctx, runID, err)
		}
		response.Results = append(response.Results, result)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Memory(ctx *fiber.Ctx) error {
	var request requests.MemoryRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	runID := uuid.New().String()

	capacity := request.Capacity
	if capacity == 0 {
		capacity = s.config.MemoryCapacity
	}
	strategyName := request.Strategy
	if strategyName == "" {
		strategyName = s.config.MemoryStrategy
	}
	strategy, err := memory.ParseStrategy(strategyName)
	if err != nil {
		return failed(ctx, runID, err)
	}

	steps, err := memory.Simulate(capacity, strategy, request.Requests())
	if err != nil {
		return failed(ctx, runID, err)
	}

	response := responses.MemoryResponse{
		RunId:    runID,
		Capacity: capacity,
		Strategy: strategy.String(),
		Steps:    make([]responses.AllocationStep, len(steps)),
	}
	for i, step := range steps {
		response.Steps[i] = responses.AllocationStep{
			OwnerId: step.Request.OwnerID,
			Size:    step.Request.Size,
			Success: step.Succeeded(),
			Blocks:  step.Blocks,
		}
		if step.Err != nil {
			response.Steps[i].Error = step.Err.Error()
		}
	}
	zap.L().Info("memory simulation done",
		zap.String("run_id", runID),
		zap.Int("capacity", capacity),
		zap.Stringer("strategy", strategy),
		zap.Int("requests", len(steps)))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, pick func(requests.ScheduleRequests) schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	runID := uuid.New().String()
	response, err := s.run(runID, request, pick(request))
	if err != nil {
		return failed(ctx, runID, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(runID string, request requests.ScheduleRequests, algorithm schedulers.Algorithm) (responses.ScheduleResponse, error) {
	result, err := schedulers.Schedule(request.Processes(), algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response, err := schedulers.GenerateResponse(runID, result)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Info("schedule done",
		zap.String("run_id", runID),
		zap.String("algorithm", algorithm.Name()),
		zap.Int("processes", len(request.Jobs)),
		zap.Int("total_time", response.TotalTime))
	return response, nil
}

func (s *SchedulerHandlerImpl) quantum(request requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// failed reports a simulation error. Every error the core returns is caused
// by the input, so all of them are client errors.
func failed(ctx *fiber.Ctx, runID string, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, metrics.ErrEmptyProcessSet) {
		status = fiber.StatusUnprocessableEntity
	}
	zap.L().Info("simulation rejected", zap.String("run_id", runID), zap.Error(err))
	return ctx.Status(status).JSON(fiber.Map{
		"run_id": runID,
		"error":  err.Error(),
	})
}
