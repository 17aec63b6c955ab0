package core

import "fmt"

// MemoryBlock is a contiguous partition of the memory pool. OwnerID is set
// exactly when the block is occupied.
type MemoryBlock struct {
	ID      int  `json:"id"`
	Offset  int  `json:"offset"`
	Size    int  `json:"size"`
	Free    bool `json:"free"`
	OwnerID *int `json:"owner_id,omitempty"`
}

func FreeBlock(id, offset, size int) MemoryBlock {
	return MemoryBlock{ID: id, Offset: offset, Size: size, Free: true}
}

// End is the first offset past the block.
func (b MemoryBlock) End() int {
	return b.Offset + b.Size
}

func (b MemoryBlock) Owner() (int, bool) {
	if b.OwnerID == nil {
		return 0, false
	}
	return *b.OwnerID, true
}

// Occupy marks the block as owned by owner.
func (b *MemoryBlock) Occupy(owner int) {
	b.Free = false
	b.OwnerID = &owner
}

// Clone returns a copy that shares no memory with b.
func (b MemoryBlock) Clone() MemoryBlock {
	if b.OwnerID != nil {
		owner := *b.OwnerID
		b.OwnerID = &owner
	}
	return b
}

func (b MemoryBlock) String() string {
	if owner, ok := b.Owner(); ok {
		return fmt.Sprintf("block %d [%d,%d) owner %d", b.ID, b.Offset, b.End(), owner)
	}
	return fmt.Sprintf("block %d [%d,%d) free", b.ID, b.Offset, b.End())
}
