package requests

import "os-simulator/internal/memory"

type Allocation struct {
	OwnerId int `json:"owner_id"`
	Size    int `json:"size"`
}

type MemoryRequest struct {
	// Capacity and Strategy fall back to the configured values when empty.
	Capacity    int          `json:"capacity,omitempty"`
	Strategy    string       `json:"strategy,omitempty"`
	Allocations []Allocation `json:"allocations"`
}

func (r MemoryRequest) Requests() []memory.Request {
	out := make([]memory.Request, len(r.Allocations))
	for i, a := range r.Allocations {
		out[i] = memory.Request{OwnerID: a.OwnerId, Size: a.Size}
	}
	return out
}
