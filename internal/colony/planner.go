package colony

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fatman2021/orionai/internal/results"
	"github.com/fatman2021/orionai/pkg/galaxy"
)

// baseEnqueueMinScore is the outpost score below which a same-system base
// is not worth a production slot.
const baseEnqueueMinScore = 100.0

// matchCostMargin scales the mission cost into the minimum score a target
// must clear before a pod is sent.
const matchCostMargin = 0.8

// Planner runs one colonization planning cycle per turn. Everything
// derived from the snapshot is rebuilt each cycle; the only state carried
// across turns is the previous cycle's populated-planet set (to detect
// newly settled colonies) and the planets already given a queued base.
type Planner struct {
	sink      galaxy.OrderSink
	publisher results.Publisher

	// BestMilShipRating is fed in from military planning; zero means use
	// the built-in default.
	BestMilShipRating float64
	// MinColonizeValue is the floor a colony target must clear regardless
	// of mission cost.
	MinColonizeValue float64

	prevPopCenters map[int]bool
	baseTargeted   map[int]bool
}

// NewPlanner wires a planner to its order sink and result publisher. The
// publisher may be nil when nothing consumes cycle results out of process.
func NewPlanner(sink galaxy.OrderSink, publisher results.Publisher) *Planner {
	return &Planner{
		sink:           sink,
		publisher:      publisher,
		prevPopCenters: make(map[int]bool),
		baseTargeted:   make(map[int]bool),
	}
}

// CycleReport is the planner's per-turn output: the ranked target lists,
// the reachability partition, issued assignments, and the colony systems
// currently contested. Published out of process via results.Cycle.
type CycleReport struct {
	Turn               int
	Reach              results.RingPartition
	ColonyTargets      []ScoredTarget
	OutpostTargets     []ScoredTarget
	ColonyBaseSpecies  map[int]string
	QueuedOutpostBases []int
	Assignments        []Assignment
	UnderAttack        []int
	UnderThreat        []int
}

// RunCycle executes one full planning pass over the snapshot: expand
// reachability, take the census, score and rank every annexable planet,
// queue outpost bases, match idle pod fleets to targets, and publish the
// results. Orders flow through the sink as they are decided.
func (p *Planner) RunCycle(ctx context.Context, snap *galaxy.Snapshot) *CycleReport {
	start := time.Now()

	reach := ExpandSupply(snap, SupplyDistance(snap.Empire))
	census := BuildCensus(snap, p.sink, p.prevPopCenters)
	pctx := NewPlanningContext(snap, census, reach, p.BestMilShipRating)

	unowned := annexablePlanets(snap, reach)
	baseLocs, colonyBases := qualifyBaseTargets(pctx, unowned)
	baseScores, queuedBases := p.enqueueOutpostBases(pctx, baseLocs)

	colonyIDs := colonyCandidates(pctx, unowned)
	colonyValues := AssignValues(pctx, colonyIDs, galaxy.MissionColonize, AllColonizers())
	colonyRanked := RankTargets(colonyValues)

	outpostIDs := outpostCandidates(pctx, unowned, baseLocs)
	outpostValues := AssignValues(pctx, outpostIDs, galaxy.MissionOutpost, NoSpecies())
	outpostRanked := RankTargets(outpostValues)

	p.publish(ctx, snap.Turn, reach, colonyRanked, outpostRanked)

	colonyFleets, outpostFleets, baseFleets := idleFleetsByRole(snap)

	minVal := p.MinColonizeValue
	if snap.Empire.Aggression < galaxy.AggressionTypical {
		minVal *= 3
	}
	colonyCut := math.Max(minVal, matchCostMargin*missionCost(pctx, galaxy.MissionColonize))
	assignments := MatchFleets(pctx, p.sink, galaxy.MissionColonize,
		colonyOpportunities(colonyValues, colonyCut), colonyFleets)
	for _, a := range assignments {
		pctx.ColonyTargeted[a.PlanetID] = true
	}

	outpostCut := matchCostMargin * missionCost(pctx, galaxy.MissionOutpost)
	var outpostCands []ScoredTarget
	for _, t := range outpostRanked {
		if t.Score > outpostCut && !pctx.ColonyTargeted[t.PlanetID] {
			outpostCands = append(outpostCands, t)
		}
	}
	assignments = append(assignments,
		MatchFleets(pctx, p.sink, galaxy.MissionOutpost, outpostCands, outpostFleets)...)

	assignments = append(assignments, p.matchBaseFleets(pctx, baseFleets, baseScores)...)

	p.prevPopCenters = census.PopCenters

	report := &CycleReport{
		Turn:               snap.Turn,
		Reach:              ringPartition(reach),
		ColonyTargets:      colonyRanked,
		OutpostTargets:     outpostRanked,
		ColonyBaseSpecies:  colonyBases,
		QueuedOutpostBases: queuedBases,
		Assignments:        assignments,
		UnderAttack:        census.UnderAttack,
		UnderThreat:        census.UnderThreat,
	}
	log.Info().
		Int("turn", snap.Turn).
		Int("colonyTargets", len(colonyRanked)).
		Int("outpostTargets", len(outpostRanked)).
		Int("assignments", len(assignments)).
		Int("queuedBases", len(queuedBases)).
		Dur("elapsed", time.Since(start)).
		Msg("Colonization cycle complete")
	return report
}

// annexablePlanets filters the reachable planet list down to unowned,
// unpopulated worlds.
func annexablePlanets(snap *galaxy.Snapshot, reach *Reachability) []int {
	var out []int
	for _, pid := range reach.Planets {
		planet := snap.Planet(pid)
		if planet == nil {
			continue
		}
		if planet.Unowned() && planet.Population <= 0 {
			out = append(out, pid)
		}
	}
	return out
}

// colonyCandidates are the unowned reachable planets plus the empire's own
// outposts (an outpost can be upgraded to a colony), minus anything a
// colony fleet is already flying toward.
func colonyCandidates(pctx *PlanningContext, unowned []int) []int {
	seen := make(map[int]bool, len(unowned))
	var out []int
	for _, pid := range unowned {
		if pctx.ColonyTargeted[pid] {
			continue
		}
		seen[pid] = true
		out = append(out, pid)
	}
	for pid := range pctx.Census.Outposts {
		if seen[pid] || pctx.ColonyTargeted[pid] {
			continue
		}
		out = append(out, pid)
	}
	sort.Ints(out)
	return out
}

// outpostCandidates excludes planets already targeted by any mission and
// planets served by a queued same-system base.
func outpostCandidates(pctx *PlanningContext, unowned []int, baseLocs map[int]int) []int {
	var out []int
	for _, pid := range unowned {
		if pctx.OutpostTargeted[pid] || pctx.ColonyTargeted[pid] {
			continue
		}
		if _, ok := baseLocs[pid]; ok {
			continue
		}
		out = append(out, pid)
	}
	return out
}

// qualifyBaseTargets finds unowned planets sharing a system with an
// existing colony. Such planets can be taken with a cheap base built
// locally instead of a pod shipped across the map. Returns the build
// location (lowest-id populated planet in the system) per target, and the
// species able to crew a colony base there where local production could
// fund one.
func qualifyBaseTargets(pctx *PlanningContext, unowned []int) (baseLocs map[int]int, colonyBases map[int]string) {
	baseLocs = make(map[int]int)
	colonyBases = make(map[int]string)
	for _, pid := range unowned {
		planet := pctx.Snap.Planet(pid)
		if planet == nil {
			continue
		}
		residents := pctx.Census.SpeciesSystems[planet.SystemID]
		if len(residents) == 0 {
			continue
		}
		loc := residents[0]
		for _, rp := range residents[1:] {
			if rp < loc {
				loc = rp
			}
		}
		baseLocs[pid] = loc

		sysPP := pctx.Snap.Empire.SystemPP[planet.SystemID]
		if colonyPodCost >= 120*sysPP {
			continue
		}
		for _, rp := range residents {
			name := pctx.Census.SpeciesByPlanet[rp]
			if _, ok := pctx.Census.Colonizers[name]; !ok {
				continue
			}
			species := pctx.Snap.SpeciesNamed(name)
			if species == nil || species.PlanetEnvironment(planet.Type) < galaxy.EnvPoor {
				continue
			}
			colonyBases[pid] = name
			break
		}
	}
	return baseLocs, colonyBases
}

// enqueueOutpostBases scores every qualifying base target and queues
// production for the best ones, up to a cap scaled by empire production.
// Returns the per-target scores (for later fleet matching) and the planet
// ids actually enqueued this cycle.
func (p *Planner) enqueueOutpostBases(pctx *PlanningContext, baseLocs map[int]int) (map[int]float64, []int) {
	scores := make(map[int]float64, len(baseLocs))
	if len(baseLocs) == 0 || !pctx.Snap.Empire.TechComplete(outpostingTech) {
		return scores, nil
	}

	pids := make([]int, 0, len(baseLocs))
	for pid := range baseLocs {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	for _, pid := range pids {
		score, _ := EvaluatePlanet(pctx, pid, galaxy.MissionOutpostBase, "")
		scores[pid] = score
	}
	sort.SliceStable(pids, func(i, j int) bool { return scores[pids[i]] > scores[pids[j]] })

	queued := 0
	for _, q := range pctx.Snap.Empire.Production {
		if q.Role == galaxy.RoleOutpostBase {
			queued++
		}
	}
	maxQueued := int(2 * pctx.Snap.Empire.ProductionPoints / outpostPodCost)
	if maxQueued < 1 {
		maxQueued = 1
	}

	var enqueued []int
	for _, pid := range pids {
		if queued >= maxQueued {
			break
		}
		if scores[pid] < baseEnqueueMinScore {
			break
		}
		if p.baseTargeted[pid] || pctx.OutpostTargeted[pid] || pctx.ColonyTargeted[pid] {
			continue
		}
		p.sink.EnqueueShip(galaxy.RoleOutpostBase, baseLocs[pid])
		p.baseTargeted[pid] = true
		pctx.OutpostTargeted[pid] = true
		enqueued = append(enqueued, pid)
		queued++
		log.Debug().Int("planetId", pid).Int("buildLoc", baseLocs[pid]).
			Float64("score", scores[pid]).Msg("Queued outpost base")
	}
	return scores, enqueued
}

// matchBaseFleets sends idle base fleets to the best-scoring base target
// in their own system. Bases cannot travel, so there is no reachability
// search; a fleet with no local target stays idle.
func (p *Planner) matchBaseFleets(pctx *PlanningContext, fleetIDs []int, baseScores map[int]float64) []Assignment {
	basePIDs := make([]int, 0, len(baseScores))
	for pid := range baseScores {
		basePIDs = append(basePIDs, pid)
	}
	sort.Ints(basePIDs)

	var assignments []Assignment
	claimed := make(map[int]bool)
	for _, fid := range fleetIDs {
		fleet := pctx.Snap.Fleet(fid)
		if fleet == nil {
			continue
		}
		bestPID, bestScore := -1, 0.0
		for _, pid := range basePIDs {
			if claimed[pid] || baseScores[pid] <= bestScore {
				continue
			}
			planet := pctx.Snap.Planet(pid)
			if planet == nil || planet.SystemID != fleet.SystemID {
				continue
			}
			bestPID, bestScore = pid, baseScores[pid]
		}
		if bestPID < 0 {
			continue
		}
		claimed[bestPID] = true
		p.sink.AssignMission(fid, galaxy.MissionOutpostBase, bestPID)
		assignments = append(assignments, Assignment{
			FleetID:  fid,
			PlanetID: bestPID,
			Mission:  galaxy.MissionOutpostBase,
			Score:    bestScore,
		})
	}
	return assignments
}

// idleFleetsByRole partitions the idle fleets into colony-pod, outpost-pod
// and outpost-base carriers, each sorted by fleet id.
func idleFleetsByRole(snap *galaxy.Snapshot) (colony, outpost, base []int) {
	fids := make([]int, 0, len(snap.Fleets))
	for fid := range snap.Fleets {
		fids = append(fids, fid)
	}
	sort.Ints(fids)
	for _, fid := range fids {
		fleet := snap.Fleets[fid]
		if !fleet.Idle() {
			continue
		}
		switch {
		case fleet.HasRole(galaxy.RoleColonyPod):
			colony = append(colony, fid)
		case fleet.HasRole(galaxy.RoleOutpostPod):
			outpost = append(outpost, fid)
		case fleet.HasRole(galaxy.RoleOutpostBase), fleet.HasRole(galaxy.RoleColonyBase):
			base = append(base, fid)
		}
	}
	return colony, outpost, base
}

// ringPartition flattens the reachability sets to sorted id slices for
// publication.
func ringPartition(reach *Reachability) results.RingPartition {
	part := results.RingPartition{
		Base:  sortedKeys(reach.Base),
		Rings: make([][]int, 0, len(reach.Rings)),
	}
	for i := range reach.Rings {
		part.Rings = append(part.Rings, sortedKeys(reach.Rings[i]))
	}
	return part
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (p *Planner) publish(ctx context.Context, turn int, reach *Reachability, colony, outposts []ScoredTarget) {
	if p.publisher == nil {
		return
	}
	cycle := results.Cycle{
		Turn:     turn,
		Colony:   toEntries(colony),
		Outposts: toEntries(outposts),
		Reach:    ringPartition(reach),
	}
	if err := p.publisher.Publish(ctx, cycle); err != nil {
		log.Error().Err(err).Int("turn", turn).Msg("Failed to publish cycle results")
	}
}

func toEntries(targets []ScoredTarget) []results.Entry {
	out := make([]results.Entry, 0, len(targets))
	for _, t := range targets {
		out = append(out, results.Entry{PlanetID: t.PlanetID, Score: t.Score, Species: t.Species})
	}
	return out
}
