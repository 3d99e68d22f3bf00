package mcf

import (
	"math"

	"github.com/katalvlaran/cargoflow/cargo"
)

// Kind selects which ordering the Dijkstra run scores paths by.
type Kind int

const (
	// KindDistance scores by cumulative distance, smaller is better; used
	// by pass 1 to saturate the shortest paths first.
	KindDistance Kind = iota

	// KindCapacity scores by a fixed-point free-capacity/capacity ratio,
	// larger is better; used by pass 2 to spread remaining demand over
	// the least-saturated paths.
	KindCapacity
)

// capacityRatio computes the fixed-point ratio used to rank paths by
// capacity annotation: free capacity as a fraction of nominal capacity,
// left-shifted 4 bits to keep one decimal digit of precision in integer
// arithmetic. The shift width is fixed at 4 bits so two implementations
// of this comparison always agree.
func capacityRatio(freeCap, capacity int64) int64 {
	return (freeCap << 4) / (capacity + 1)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// isBetter reports whether forking dest off base with a new hop of
// nominal capacity cap, free capacity freeCap, and distance dist would
// improve on dest's current path under the given annotation kind.
func isBetter(kind Kind, dest, base *cargo.Path, cap, freeCap int64, dist uint32) bool {
	switch kind {
	case KindDistance:
		if base.Distance == math.MaxUint32 {
			return false
		}
		if dest.Distance == math.MaxUint32 {
			return true
		}
		if freeCap > 0 && base.FreeCapacity > 0 {
			if dest.FreeCapacity > 0 {
				return base.Distance+dist < dest.Distance
			}
			return true
		}
		if dest.FreeCapacity > 0 {
			return false
		}
		return base.Distance+dist < dest.Distance
	default: // KindCapacity
		minRatio := capacityRatio(min64(base.FreeCapacity, freeCap), min64(base.Capacity, cap))
		curRatio := capacityRatio(dest.FreeCapacity, dest.Capacity)
		if minRatio == curRatio {
			if base.Distance == math.MaxUint32 {
				return false
			}
			return base.Distance+dist < dest.Distance
		}
		return minRatio > curRatio
	}
}

// less orders two paths for the priority queue: the "best to process
// next" path sorts first. For KindDistance that is the smallest distance;
// for KindCapacity the largest capacity ratio. Ties break on node index
// for a deterministic total order.
func less(kind Kind, a, b *cargo.Path) bool {
	switch kind {
	case KindDistance:
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Node < b.Node
	default:
		ra := capacityRatio(a.FreeCapacity, a.Capacity)
		rb := capacityRatio(b.FreeCapacity, b.Capacity)
		if ra != rb {
			return ra > rb
		}
		return a.Node < b.Node
	}
}
