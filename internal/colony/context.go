package colony

import (
	"math"
	"sort"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// defaultMilShipRating is assumed when the military module has not yet
// reported a best warship rating.
const defaultMilShipRating = 20.0

// PlanningContext bundles everything the scorer needs for one cycle. It is
// rebuilt wholesale at the start of every cycle and threaded explicitly
// through each call; nothing in it is shared across turns.
type PlanningContext struct {
	Snap   *galaxy.Snapshot
	Census *Census
	Reach  *Reachability

	// ClaimedStars maps star type to the systems of that type the empire
	// owns or has already targeted this cycle. First-claimant star bonuses
	// consult this registry.
	ClaimedStars map[galaxy.StarType][]int

	// BestMilShipRating normalizes threat tallies.
	BestMilShipRating float64

	// DiscountMultiplier scales every time-discounted value term.
	DiscountMultiplier float64

	ColonyTargeted  map[int]bool // planet ids targeted by colony missions
	OutpostTargeted map[int]bool // planet ids targeted by outpost missions
}

// NewPlanningContext assembles the per-cycle context. The claimed-star
// registry is seeded from owned systems plus systems already targeted by
// in-flight colony/outpost missions.
func NewPlanningContext(snap *galaxy.Snapshot, census *Census, reach *Reachability, bestMilShipRating float64) *PlanningContext {
	ctx := &PlanningContext{
		Snap:               snap,
		Census:             census,
		Reach:              reach,
		ClaimedStars:       make(map[galaxy.StarType][]int),
		BestMilShipRating:  bestMilShipRating,
		DiscountMultiplier: 30.0,
		ColonyTargeted:     make(map[int]bool),
		OutpostTargeted:    make(map[int]bool),
	}
	if ctx.BestMilShipRating <= 0 {
		ctx.BestMilShipRating = defaultMilShipRating
	}
	if snap.Empire.ID%2 == 1 {
		ctx.DiscountMultiplier = 40.0
	}

	for star, systems := range census.EmpireStars {
		ctx.ClaimedStars[star] = append(ctx.ClaimedStars[star], systems...)
	}

	fleetIDs := make([]int, 0, len(snap.Fleets))
	for fid := range snap.Fleets {
		fleetIDs = append(fleetIDs, fid)
	}
	sort.Ints(fleetIDs)
	targetedSystems := make(map[int]bool)
	for _, fid := range fleetIDs {
		fleet := snap.Fleets[fid]
		if fleet.Idle() {
			continue
		}
		switch fleet.Mission {
		case galaxy.MissionColonize:
			ctx.ColonyTargeted[fleet.TargetID] = true
		case galaxy.MissionOutpost, galaxy.MissionOutpostBase:
			ctx.OutpostTargeted[fleet.TargetID] = true
		default:
			continue
		}
		if planet := snap.Planet(fleet.TargetID); planet != nil {
			targetedSystems[planet.SystemID] = true
		}
	}
	sysIDs := make([]int, 0, len(targetedSystems))
	for sid := range targetedSystems {
		sysIDs = append(sysIDs, sid)
	}
	sort.Ints(sysIDs)
	for _, sid := range sysIDs {
		sys := snap.System(sid)
		if sys == nil {
			continue
		}
		ctx.ClaimedStars[sys.Star] = append(ctx.ClaimedStars[sys.Star], sid)
	}

	return ctx
}

// backupFactor scales the value of claiming a second instance of an
// already-claimed rare resource by empire production capacity.
func (ctx *PlanningContext) backupFactor() float64 {
	pp := ctx.Snap.Empire.ProductionPoints
	if pp < 100 {
		return 0.0
	}
	return math.Min(1.0, (pp/200.0)*(pp/200.0))
}

// starClaimed reports whether any system of the given star types is in the
// claimed registry.
func (ctx *PlanningContext) starClaimed(stars ...galaxy.StarType) bool {
	for _, s := range stars {
		if len(ctx.ClaimedStars[s]) > 0 {
			return true
		}
	}
	return false
}

// systemClaims reports whether this particular system is among the claimed
// systems for any of the given star types.
func (ctx *PlanningContext) systemClaims(sysID int, stars ...galaxy.StarType) bool {
	for _, s := range stars {
		for _, sid := range ctx.ClaimedStars[s] {
			if sid == sysID {
				return true
			}
		}
	}
	return false
}

// existingPresence reports whether the empire holds planets in the system
// other than the candidate itself.
func (ctx *PlanningContext) existingPresence(sysID, planetID int) bool {
	held := ctx.Census.ColonizedSystems[sysID]
	if len(held) == 0 {
		return false
	}
	if len(held) == 1 && held[0] == planetID {
		return false
	}
	return true
}
