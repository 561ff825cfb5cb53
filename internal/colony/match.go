package colony

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// Monster-threat ceilings above which a target system is skipped entirely.
const (
	monsterThreatLimit      = 2000.0
	earlyMonsterThreatLimit = 200.0
	earlyGameTurns          = 20
)

// Assignment records one fleet matched to one target planet.
type Assignment struct {
	FleetID  int
	PlanetID int
	Mission  galaxy.Mission
	Species  string
	Score    float64
}

// missionCost estimates what a colony/outpost attempt costs, for the
// minimum-value cutoff. Early-game colony value is underestimated while
// tech moves fast, so the cost is scaled down.
func missionCost(ctx *PlanningContext, mission galaxy.Mission) float64 {
	popCenters := float64(len(ctx.Census.PopCenters))
	if mission == galaxy.MissionOutpost || mission == galaxy.MissionOutpostBase {
		return 20 + outpostPodCost*(1+popCenters*colonyPodUpkeep)
	}
	cost := 20 + colonyPodCost*(1+popCenters*colonyPodUpkeep)
	switch {
	case ctx.Snap.Turn < 50:
		cost *= 0.4
	case ctx.Snap.Turn < 80:
		cost *= 0.8
	}
	return cost
}

// colonyOpportunities widens the candidate list for colony matching: every
// species option scoring at least 75% of its planet's best is kept, so a
// fleet carrying a second-choice species can still claim a good planet.
func colonyOpportunities(values map[int][]ScoredTarget, minScore float64) []ScoredTarget {
	var out []ScoredTarget
	pids := make([]int, 0, len(values))
	for pid := range values {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	for _, pid := range pids {
		options := values[pid]
		if len(options) == 0 || options[0].Score <= 0 || options[0].Score <= minScore {
			continue
		}
		best := options[0].Score
		for _, opt := range options {
			if opt.Score >= 0.75*best {
				out = append(out, opt)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// MatchFleets greedily pairs idle fleets to the best remaining candidates.
// The candidate list is consumed front-to-back as an explicit worklist; an
// assigned planet goes into the targeted set and is never matched twice in
// a cycle. A candidate with no capable, reachable fleet is dropped and the
// loop moves on. Orders are issued through the sink as matches are made.
func MatchFleets(ctx *PlanningContext, sink galaxy.OrderSink, mission galaxy.Mission,
	candidates []ScoredTarget, fleetIDs []int) []Assignment {
	pool := make([]int, len(fleetIDs))
	copy(pool, fleetIDs)
	worklist := make([]ScoredTarget, len(candidates))
	copy(worklist, candidates)

	role := galaxy.RoleColonyPod
	if mission == galaxy.MissionOutpost {
		role = galaxy.RoleOutpostPod
	}

	var assignments []Assignment
	targeted := make(map[int]bool)
	for len(pool) > 0 && len(worklist) > 0 {
		target := worklist[0]
		worklist = worklist[1:]
		if targeted[target.PlanetID] {
			continue
		}
		planet := ctx.Snap.Planet(target.PlanetID)
		if planet == nil {
			continue
		}
		sysID := planet.SystemID
		monster := ctx.Snap.Status[sysID].MonsterThreat
		if monster > monsterThreatLimit ||
			(ctx.Snap.Turn < earlyGameTurns && monster > earlyMonsterThreatLimit) {
			log.Info().Int("systemId", sysID).Float64("monsterThreat", monster).
				Msg("Skipping colonization target guarded by big monster")
			targeted[target.PlanetID] = true
			continue
		}

		matched := -1
		for i, fid := range pool {
			fleet := ctx.Snap.Fleet(fid)
			if fleet == nil || !fleet.HasRole(role) {
				continue
			}
			if mission == galaxy.MissionColonize && fleet.PodSpecies() != target.Species {
				continue
			}
			if !ctx.Snap.Connected(fleet.SystemID, sysID) {
				continue
			}
			matched = i
			break
		}
		if matched < 0 {
			continue
		}
		fleetID := pool[matched]
		pool = append(pool[:matched], pool[matched+1:]...)
		targeted[target.PlanetID] = true
		sink.AssignMission(fleetID, mission, target.PlanetID)
		assignments = append(assignments, Assignment{
			FleetID:  fleetID,
			PlanetID: target.PlanetID,
			Mission:  mission,
			Species:  target.Species,
			Score:    target.Score,
		})
	}
	return assignments
}
