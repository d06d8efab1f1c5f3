package interp

import (
	"fmt"

	"github.com/lumascript/luma/internal/ast"
)

// HeapObject is a heap-resident object addressed by a Handle: a Table or a
// Closure.
type HeapObject interface {
	heapObject()
}

// Closure is a function value capturing the environment stack that existed
// at the point of its definition.
type Closure struct {
	Parameters []*ast.Name
	Body       *ast.Block
	Captured   *EnvStack
}

func (*Closure) heapObject() {}

// Heap is an append-only store of HeapObjects addressed by opaque Handles.
// There is no reclamation: allocations live for the process lifetime.
type Heap struct {
	objects []HeapObject
}

// NewHeap creates an empty Heap.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc stores obj and returns a fresh Handle distinct from every
// previously issued handle.
func (h *Heap) Alloc(obj HeapObject) Handle {
	h.objects = append(h.objects, obj)
	return Handle(len(h.objects) - 1)
}

// Get dereferences a Handle. It panics on an out-of-range handle, which
// can only happen from an interpreter bug (handles are never user-supplied
// as raw integers), not from user input.
func (h *Heap) Get(handle Handle) HeapObject {
	return h.objects[handle]
}

// Table dereferences handle and asserts it names a Table, returning ok=false
// if it names a Closure instead.
func (h *Heap) Table(handle Handle) (*Table, bool) {
	t, ok := h.objects[handle].(*Table)
	return t, ok
}

// Closure dereferences handle and asserts it names a Closure.
func (h *Heap) Closure(handle Handle) (*Closure, bool) {
	c, ok := h.objects[handle].(*Closure)
	return c, ok
}

// displayHandle renders the opaque, stable textual tag for a handle:
// `table: 0x...` or `function: 0x...`.
func displayHandle(h HandleValue) string {
	return fmt.Sprintf("%s: 0x%012x", h.Kind, uint64(h.Handle))
}
