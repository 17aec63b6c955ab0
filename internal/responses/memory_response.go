package responses

import "os-simulator/internal/core"

type AllocationStep struct {
	OwnerId int                `json:"owner_id"`
	Size    int                `json:"size"`
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Blocks  []core.MemoryBlock `json:"blocks"`
}

type MemoryResponse struct {
	RunId    string           `json:"run_id"`
	Capacity int              `json:"capacity"`
	Strategy string           `json:"strategy"`
	Steps    []AllocationStep `json:"steps"`
}
