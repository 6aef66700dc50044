package input

import (
	"sync"

	"github.com/agiangrant/uikit"
)

// ============================================================================
// Node Slice Pooling
// ============================================================================
//
// Hover reconciliation snapshots the hovered list before issuing exits, and
// it does so for every pointer every frame a target changes. Pooling the
// scratch slices keeps that allocation-free in steady state.

var nodeSlicePool = sync.Pool{
	New: func() any {
		return make([]*uikit.Node, 0, 16)
	},
}

// acquireNodeSlice gets a slice with len == n from the pool. Callers must
// release it when done.
func acquireNodeSlice(n int) []*uikit.Node {
	s := nodeSlicePool.Get().([]*uikit.Node)
	if cap(s) < n {
		nodeSlicePool.Put(s[:0])
		return make([]*uikit.Node, n, n*2)
	}
	return s[:n]
}

// releaseNodeSlice returns a slice to the pool, dropping node references so
// the pool does not pin destroyed subtrees.
func releaseNodeSlice(s []*uikit.Node) {
	if s == nil {
		return
	}
	for i := range s {
		s[i] = nil
	}
	if cap(s) <= 256 {
		nodeSlicePool.Put(s[:0])
	}
}
