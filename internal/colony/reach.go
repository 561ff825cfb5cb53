package colony

import (
	"sort"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// maxRings bounds ring expansion beyond the base reachable set.
const maxRings = 3

// Reachability partitions the annexable systems into the base supply set and
// up to three successive BFS rings beyond it. Rings are disjoint; their
// union is Systems.
type Reachability struct {
	Base    map[int]bool
	Rings   [maxRings]map[int]bool
	Systems map[int]bool
	Planets []int
}

// SupplyDistance derives the ring expansion depth from completed
// range-extension techs plus an aggression bonus. Always at least 1.
func SupplyDistance(e *galaxy.Empire) int {
	d := 1
	for _, tech := range supplyRangeTechs {
		if e.TechComplete(tech) {
			d++
		}
	}
	if e.Aggression >= galaxy.AggressionAggressive {
		d++
	}
	return d
}

// ExpandSupply computes the reachable-system ring partition. The base set is
// the fleet-supplyable systems plus their immediate neighbors; each further
// ring is the neighbor frontier of the previous one minus everything
// already accumulated. Expansion stops after min(supplyDistance-1, 3)
// rings. A system with no known neighbors contributes nothing outward.
func ExpandSupply(snap *galaxy.Snapshot, supplyDistance int) *Reachability {
	r := &Reachability{
		Base:    make(map[int]bool),
		Systems: make(map[int]bool),
	}
	for i := range r.Rings {
		r.Rings[i] = make(map[int]bool)
	}

	for _, sid := range snap.Empire.SupplySystems {
		r.Base[sid] = true
		for _, n := range snap.Adjacent(sid) {
			r.Base[n] = true
		}
	}
	for sid := range r.Base {
		r.Systems[sid] = true
	}

	rings := supplyDistance - 1
	if rings > maxRings {
		rings = maxRings
	}
	prev := r.Base
	for i := 0; i < rings; i++ {
		ring := r.Rings[i]
		for sid := range prev {
			for _, n := range snap.Adjacent(sid) {
				if !r.Systems[n] {
					ring[n] = true
				}
			}
		}
		for sid := range ring {
			r.Systems[sid] = true
		}
		prev = ring
	}

	sysIDs := make([]int, 0, len(r.Systems))
	for sid := range r.Systems {
		sysIDs = append(sysIDs, sid)
	}
	sort.Ints(sysIDs)
	r.Planets = snap.PlanetsInSystems(sysIDs)
	return r
}

// Ring returns 0 for base systems, 1..3 for ring systems, and -1 for
// systems outside the reachable set.
func (r *Reachability) Ring(systemID int) int {
	if r.Base[systemID] {
		return 0
	}
	for i := range r.Rings {
		if r.Rings[i][systemID] {
			return i + 1
		}
	}
	return -1
}

// SystemIDs returns the sorted ids of one ring (0 = base).
func (r *Reachability) SystemIDs(ring int) []int {
	var set map[int]bool
	switch {
	case ring == 0:
		set = r.Base
	case ring >= 1 && ring <= maxRings:
		set = r.Rings[ring-1]
	default:
		return nil
	}
	ids := make([]int, 0, len(set))
	for sid := range set {
		ids = append(ids, sid)
	}
	sort.Ints(ids)
	return ids
}
