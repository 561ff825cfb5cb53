package colony

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// UninhabitableScore is the sentinel for environments the species cannot
// survive at all. The ranker filters it out along with zero scores.
const UninhabitableScore = -9999

// Per-population output baselines.
const (
	basePopIndustry = 0.2
	basePopResearch = 0.2
)

// maxGasGiantGenerators caps how many gas giants per system are credited
// with generator value.
const maxGasGiantGenerators = 1

// evaluation accumulates a score and its labeled breakdown for one
// (planet, mission, species) triple.
type evaluation struct {
	ctx    *PlanningContext
	detail []string
}

func (e *evaluation) addf(format string, args ...any) {
	e.detail = append(e.detail, fmt.Sprintf(format, args...))
}

// EvaluatePlanet scores a planet for a colonize or outpost mission with the
// given species ("" for outposts). The returned breakdown lists every
// contributing term in evaluation order. Scoring is deterministic: the same
// snapshot always yields the same score and the same breakdown.
func EvaluatePlanet(ctx *PlanningContext, planetID int, mission galaxy.Mission, specName string) (float64, []string) {
	e := &evaluation{ctx: ctx}
	snap := ctx.Snap

	planet := snap.Planet(planetID)
	if planet == nil {
		e.addf("planet %d not in snapshot", planetID)
		return 0, e.detail
	}
	sysID := planet.SystemID
	// Stale-data gate: the planet was stealthed the last time we saw its
	// system, so its meters cannot be trusted.
	if snap.PartialVisTurn(planetID) < snap.PartialVisTurn(sysID) {
		e.addf("%s : stealthed at last sighting", planet.Name)
		return 0, e.detail
	}
	e.addf("%s :", planet.Name)

	dm := ctx.DiscountMultiplier
	species := snap.SpeciesNamed(specName)

	retval := 0.0
	pilotVal := 0.0
	if species != nil && species.CanProduceShips {
		pilotVal = ratePilotingTags(species.Tags)
		if pilotVal > ctx.Census.BestPilotRating {
			pilotVal *= 2
		}
		if pilotVal > 2 {
			retval += dm * 5 * pilotVal
			e.addf("Pilot Val %.1f", dm*5*pilotVal)
		}
	}

	havePresence := ctx.existingPresence(sysID, planetID)
	thrtFactor := threatDiscount(ctx, sysID, havePresence)
	sys := snap.System(sysID)

	starBonus, colonyStarBonus, starPopMod := e.starBonuses(sys, sysID, species, pilotVal)
	retval += starBonus

	fixedRes := 0.0
	if planet.HasSpecial("ECCENTRIC_ORBIT_SPECIAL") {
		fixedRes += dm * 2 * 3
		e.addf("ECCENTRIC_ORBIT_SPECIAL %.1f", dm*2*3)
	}

	if mission == galaxy.MissionOutpost || mission == galaxy.MissionOutpostBase {
		score := e.outpostValue(planet, sys, retval, thrtFactor, havePresence)
		return score, e.detail
	}
	score := e.colonyValue(planet, sys, species, retval, pilotVal, starPopMod,
		colonyStarBonus, fixedRes, thrtFactor, havePresence)
	return score, e.detail
}

// starBonuses awards one-time "claim this rare star type" value for techs
// that are complete or near the front of the research queue. The first
// claimant of a star type gets the full bonus; later claimants get a
// production-scaled backup-location bonus.
func (e *evaluation) starBonuses(sys *galaxy.System, sysID int, species *galaxy.Species, pilotVal float64) (starBonus, colonyStarBonus, starPopMod float64) {
	if sys == nil {
		return 0, 0, 0
	}
	ctx := e.ctx
	empire := ctx.Snap.Empire
	dm := ctx.DiscountMultiplier
	backup := ctx.backupFactor()
	alreadyGotThisOne := len(ctx.Census.ColonizedSystems[sysID]) > 0

	if species != nil && species.HasTag("PHOTOTROPHIC") {
		starPopMod = photoStarMods[sys.Star]
		e.addf("PHOTOTROPHIC popMod %.1f", starPopMod)
	}

	if empire.TechQueuedWithin("PRO_SOL_ORB_GEN", 5) {
		switch sys.Star {
		case galaxy.StarBlue, galaxy.StarWhite:
			if !ctx.starClaimed(galaxy.StarBlue, galaxy.StarWhite) {
				starBonus += 20 * dm
				e.addf("PRO_SOL_ORB_GEN BW %.1f", 20*dm)
			} else if !alreadyGotThisOne {
				// Still worth holding as an alternate generator location.
				starBonus += 10 * dm * backup
				e.addf("PRO_SOL_ORB_GEN BW Backup Location %.1f", 10*dm*backup)
			}
		case galaxy.StarYellow, galaxy.StarOrange:
			if !ctx.starClaimed(galaxy.StarBlue, galaxy.StarWhite, galaxy.StarYellow, galaxy.StarOrange) {
				starBonus += 10 * dm
				e.addf("PRO_SOL_ORB_GEN YO %.1f", 10*dm)
			}
		}
	}
	if sys.Star == galaxy.StarBlackHole && ctx.Snap.Turn > 100 {
		// Black holes carry base value whether or not the tech is in yet.
		if !alreadyGotThisOne {
			starBonus += 10 * dm * backup
			e.addf("Black Hole %.1f", 10*dm*backup)
		} else {
			starBonus += 5 * dm * backup
			e.addf("Black Hole Backup %.1f", 5*dm*backup)
		}
	}
	if empire.TechQueuedWithin("PRO_SINGULAR_GEN", 8) {
		if sys.Star == galaxy.StarBlackHole {
			if !ctx.starClaimed(galaxy.StarBlackHole) {
				starBonus += 200 * dm
				e.addf("PRO_SINGULAR_GEN %.1f", 200*dm)
			} else if !ctx.systemClaims(sysID, galaxy.StarBlackHole) {
				starBonus += 100 * dm * backup
				e.addf("PRO_SINGULAR_GEN Backup %.1f", 100*dm*backup)
			}
		} else if sys.Star == galaxy.StarRed && !ctx.starClaimed(galaxy.StarBlackHole) {
			rfactor := math.Pow(1.0+float64(len(ctx.ClaimedStars[galaxy.StarRed])), -2)
			starBonus += 40 * dm * backup * rfactor
			e.addf("Red Star for Art Black Hole %.1f", 40*dm*backup*rfactor)
		}
	}
	if empire.TechQueuedWithin("PRO_NEUTRONIUM_EXTRACTION", 8) && sys.Star == galaxy.StarNeutron {
		if !ctx.starClaimed(galaxy.StarNeutron) {
			starBonus += 80 * dm
			e.addf("PRO_NEUTRONIUM_EXTRACTION %.1f", 80*dm)
		} else {
			starBonus += 20 * dm * backup
			e.addf("PRO_NEUTRONIUM_EXTRACTION Backup %.1f", 20*dm*backup)
		}
	}
	if empire.TechQueuedWithin("SHP_ENRG_BOUND_MAN", 6) &&
		(sys.Star == galaxy.StarBlackHole || sys.Star == galaxy.StarBlue) {
		initVal := 100 * dm
		if pilotVal > 0 {
			initVal *= pilotVal
		}
		if !ctx.starClaimed(galaxy.StarBlackHole, galaxy.StarBlue) {
			colonyStarBonus += initVal
			e.addf("SHP_ENRG_BOUND_MAN %.1f", initVal)
		} else if !ctx.systemClaims(sysID, galaxy.StarBlackHole, galaxy.StarBlue) {
			colonyStarBonus += 0.5 * initVal * backup
			e.addf("SHP_ENRG_BOUND_MAN Backup %.1f", 0.5*initVal*backup)
		}
	}
	return starBonus, colonyStarBonus, starPopMod
}

// outpostValue finishes the outpost branch: specials, asteroid and
// gas-giant synergies, then threat discount and presence multiplier.
// Outpost scores are whole numbers and never negative.
func (e *evaluation) outpostValue(planet *galaxy.Planet, sys *galaxy.System, retval, thrtFactor float64, havePresence bool) float64 {
	ctx := e.ctx
	snap := ctx.Snap
	empire := snap.Empire
	dm := ctx.DiscountMultiplier
	backup := ctx.backupFactor()

	if planet.HasSpecial("ANCIENT_RUINS_SPECIAL") {
		retval += dm * 30
		e.addf("Undepleted Ruins %.1f", dm*30)
	}
	for _, special := range planet.Specials {
		if !isNestSpecial(special) {
			continue
		}
		nestVal, ok := nestValues[special]
		if !ok {
			nestVal = defaultNestValue
		}
		// Get an outpost onto the nest quickly.
		nestVal *= dm * backup
		retval += nestVal
		e.addf("%s %.1f", special, nestVal)
	}

	if planet.Size == galaxy.SizeAsteroids && sys != nil {
		perAst := 2.5
		if empire.TechComplete("PRO_MICROGRAV_MAN") {
			perAst = 5
		}
		astVal := e.asteroidSynergy(planet, sys, perAst, func(other *galaxy.Planet) bool {
			return other.Species != ""
		})
		retval += astVal
		if astVal > 0 {
			e.addf("AsteroidMining %.1f", astVal)
		}

		perAst = 5.0
		if empire.TechComplete("SHP_ASTEROID_HULLS") {
			perAst = 20
		} else if empire.TechComplete("CON_ORBITAL_CON") {
			perAst = 10
		}
		astVal = e.asteroidSynergy(planet, sys, perAst, func(other *galaxy.Planet) bool {
			otherSpec := snap.SpeciesNamed(other.Species)
			return otherSpec != nil && otherSpec.CanProduceShips
		})
		retval += astVal
		if astVal > 0 {
			e.addf("AsteroidShipBuilding %.1f", astVal)
		}
	}

	if planet.Size == galaxy.SizeGasGiant && sys != nil {
		perGG := 5.0
		if empire.TechComplete("PRO_ORBITAL_GEN") {
			perGG = 20
		} else if empire.TechComplete("CON_ORBITAL_CON") {
			perGG = 10
		}
		var ggIDs []int
		orbGenVal := 0.0
		var ggDetail []string
		for _, pid := range sys.Planets {
			other := snap.Planet(pid)
			if other == nil {
				continue
			}
			if other.Size == galaxy.SizeGasGiant {
				ggIDs = append(ggIDs, pid)
			}
			if pid != planet.ID && other.Owner == empire.ID &&
				(other.Focus == galaxy.FocusIndustry || other.FocusAvailable(galaxy.FocusIndustry)) {
				orbGenVal += perGG * dm
				ggDetail = append(ggDetail, fmt.Sprintf("GGG for %s %.1f", other.Name, perGG*dm))
			}
		}
		sort.Ints(ggIDs)
		claimant := false
		for i, pid := range ggIDs {
			if i >= maxGasGiantGenerators {
				break
			}
			if pid == planet.ID {
				claimant = true
			}
		}
		if claimant {
			retval += orbGenVal
			e.detail = append(e.detail, ggDetail...)
		} else {
			e.addf("Won't GGG")
		}
	}

	if thrtFactor < 1.0 {
		retval *= thrtFactor
		e.addf("threat reducing value by %3d %%", int(100*(1-thrtFactor)))
	}
	if havePresence {
		e.addf("preexisting system colony")
		retval *= 1.5
	}
	return math.Trunc(retval)
}

// asteroidSynergy sums per-neighbor value for inhabited non-asteroid
// planets in the system. A lower-id sibling asteroid takes the whole claim
// when the candidate is unowned.
func (e *evaluation) asteroidSynergy(planet *galaxy.Planet, sys *galaxy.System, perAst float64, qualifies func(*galaxy.Planet) bool) float64 {
	val := 0.0
	for _, pid := range sys.Planets {
		other := e.ctx.Snap.Planet(pid)
		if other == nil {
			continue
		}
		if other.Size == galaxy.SizeAsteroids {
			if pid == planet.ID {
				continue
			}
			if pid < planet.ID && planet.Unowned() {
				return 0
			}
		} else if qualifies(other) {
			val += perAst * e.ctx.DiscountMultiplier
		}
	}
	return val
}

// colonyValue finishes the colonize branch: population-capacity estimation,
// economic projection, research/growth alternatives, proximity bonus, then
// threat discount and presence multiplier.
func (e *evaluation) colonyValue(planet *galaxy.Planet, sys *galaxy.System, species *galaxy.Species,
	retval, pilotVal, starPopMod, colonyStarBonus, fixedRes, thrtFactor float64, havePresence bool) float64 {
	ctx := e.ctx
	snap := ctx.Snap
	empire := snap.Empire
	dm := ctx.DiscountMultiplier

	if species == nil {
		return 0
	}

	if planet.HasSpecial("ANCIENT_RUINS_SPECIAL") {
		retval += dm * 50
		e.addf("Undepleted Ruins %.1f", dm*50)
	}

	popTagMod, indTagMod, resTagMod := 1.0, 1.0, 1.0
	for _, tag := range species.Tags {
		gradeName, kind, ok := tagGradeParts(tag)
		if !ok {
			continue
		}
		grade, known := outputTagGrades[gradeName]
		if !known {
			grade = 1.0
		}
		switch kind {
		case "POPULATION":
			if g, known := popTagGrades[gradeName]; known {
				popTagMod = g
			}
		case "INDUSTRY":
			indTagMod = grade
		case "RESEARCH":
			resTagMod = grade
		}
	}

	retval += fixedRes
	retval += colonyStarBonus

	asteroidBonus := 0.0
	gasGiantBonus := 0.0
	flatIndustry := 0.0
	miningBonus := 0.0
	perGGG := 10.0
	planetSize := float64(planet.Size)

	gotAsteroids, gotOwnedAsteroids := false, false
	gotGG, gotOwnedGG := false, false
	if sys != nil && species.LikesFocus(galaxy.FocusIndustry) {
		for _, pid := range sys.Planets {
			if pid == planet.ID {
				continue
			}
			other := snap.Planet(pid)
			if other == nil {
				continue
			}
			if other.Size == galaxy.SizeAsteroids {
				gotAsteroids = true
				if other.Owner != galaxy.NoEmpire {
					gotOwnedAsteroids = true
				}
			}
			if other.Size == galaxy.SizeGasGiant {
				gotGG = true
				if other.Owner != galaxy.NoEmpire {
					gotOwnedGG = true
				}
			}
		}
	}
	if gotAsteroids {
		if empire.TechQueuedWithin("PRO_MICROGRAV_MAN", 10) {
			if gotOwnedAsteroids {
				// Quickly capturable; feeds the industry projection.
				flatIndustry += 5
				e.addf("Asteroid mining ~ %.1f", 5*dm)
			} else {
				asteroidBonus = 2.5 * dm
				e.addf("Asteroid mining %.1f", 2.5*dm)
			}
		}
		if empire.TechQueuedWithin("SHP_ASTEROID_HULLS", 11) && species.CanProduceShips {
			asteroidBonus += 30 * dm * pilotVal
			e.addf("Asteroid ShipBuilding %.1f", 30*dm*pilotVal)
		}
	}
	if gotGG && empire.TechQueuedWithin("PRO_ORBITAL_GEN", 5) {
		if gotOwnedGG {
			flatIndustry += perGGG
			e.addf("GGG ~ %.1f", perGGG*dm)
		} else {
			gasGiantBonus = 0.5 * perGGG * dm
			e.addf("GGG %.1f", 0.5*perGGG*dm)
		}
	}

	var planetEnv galaxy.Environment
	switch {
	case planet.Size == galaxy.SizeGasGiant:
		if species.Name != superTestSpecies {
			e.addf("Can't Settle GG")
			return 0
		}
		planetEnv = galaxy.EnvAdequate
		planetSize = 6
	case planet.Size == galaxy.SizeAsteroids:
		planetSize = 3
		switch species.Name {
		case exobotSpecies:
			planetEnv = galaxy.EnvPoor
		case superTestSpecies:
			planetEnv = galaxy.EnvAdequate
		default:
			e.addf("Can't settle Asteroids")
			return 0
		}
	default:
		planetEnv = species.PlanetEnvironment(planet.Type)
	}
	if planetEnv == galaxy.EnvUninhabitable {
		return UninhabitableScore
	}

	popSizeMod := popSizeMods["env"][planetEnv]
	e.addf("EnvironPopSizeMod(%d)", int(popSizeMod))
	conditionalMod := 0.0
	postMod := 0.0
	if species.HasTag("SELF_SUSTAINING") {
		popSizeMod *= 2
		e.addf("SelfSustaining_PSM(2)")
	}
	if species.HasTag("PHOTOTROPHIC") {
		popSizeMod += starPopMod
		e.addf("Phototropic Star Bonus_PSM(%0.1f)", starPopMod)
	}
	if empire.TechComplete("GRO_SUBTER_HAB") || planet.HasSpecial("TUNNELS_SPECIAL") {
		if !planet.HasSpecial("TECTONIC_INSTABILITY_SPECIAL") {
			conditionalMod += popSizeMods["subHab"][planetEnv]
			if planet.HasSpecial("TUNNELS_SPECIAL") {
				e.addf("Tunnels_PSM(%d)", int(popSizeMods["subHab"][planetEnv]))
			} else {
				e.addf("Sub_Hab_PSM(%d)", int(popSizeMods["subHab"][planetEnv]))
			}
		}
	}
	for _, gm := range growthTechMods {
		if empire.TechComplete(gm.Tech) {
			popSizeMod += popSizeMods[gm.Key][planetEnv]
			e.addf("%s_PSM(%d)", gm.Key, int(popSizeMods[gm.Key][planetEnv]))
		}
	}
	for _, hm := range habTechMods {
		if empire.TechComplete(hm.Tech) {
			conditionalMod += popSizeMods[hm.Key][planetEnv]
			e.addf("%s_PSM(%d)", hm.Key, int(popSizeMods[hm.Key][planetEnv]))
		}
	}
	if planet.HasSpecial("GAIA_SPECIAL") && species.Name != exobotSpecies {
		// Exobots never reach a good environment, so no gaia value for them.
		conditionalMod += 3
		e.addf("Gaia_PSM(3)")
	}
	for _, special := range []string{"SLOW_ROTATION_SPECIAL", "SOLID_CORE_SPECIAL"} {
		if planet.HasSpecial(special) {
			postMod--
			e.addf("%s_PSM(-1)", special)
		}
	}

	applicable := make(map[string]bool)
	for _, metab := range metabolismTags {
		if !species.HasTag(metab) {
			continue
		}
		boosts := boostsForMetabolism(metab)
		if popSizeMod > 0 {
			for _, key := range boosts {
				if len(ctx.Census.GrowthSpecialsActive[key]) > 0 && !applicable[key] {
					applicable[key] = true
					e.addf("%s boost active", key)
				}
			}
		}
		for _, boost := range boosts {
			if planet.HasSpecial(boost) && !applicable[boost] {
				applicable[boost] = true
				e.addf("%s boost present", boost)
			}
		}
	}
	if len(applicable) > 0 {
		conditionalMod += float64(len(applicable))
		e.addf("boosts_PSM(%d)", len(applicable))
	}

	// Conditional modifiers only help a base that is at least viable.
	if popSizeMod >= 0 {
		popSizeMod += conditionalMod
	}
	popSizeMod += postMod
	if species.IsHomeworld(planet.ID) {
		popSizeMod += 2
	}

	maxPop := planetSize * popSizeMod * popTagMod
	e.addf("baseMaxPop size*psm %d * %d * %.2f = %d", int(planetSize), int(popSizeMod), popTagMod, int(maxPop))
	if planet.HasSpecial("DIM_RIFT_MASTER_SPECIAL") {
		maxPop -= 4
		e.addf("DIM_RIFT_MASTER_SPECIAL(maxPop-4)")
	}
	if planet.HasSpecial("ECCENTRIC_ORBIT_SPECIAL") {
		maxPop -= 3
		e.addf("ECCENTRIC_ORBIT_SPECIAL(maxPop-3)")
	}
	e.addf("maxPop %.1f", maxPop)

	for _, special := range []string{"MINERALS_SPECIAL", "CRYSTALS_SPECIAL", "METALOIDS_SPECIAL"} {
		if planet.HasSpecial(special) {
			miningBonus++
		}
	}

	indMult := math.Max(indTagMod, 0.5*(indTagMod+resTagMod))
	techs := make([]string, 0, len(industryTechMods))
	for tech := range industryTechMods {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	for _, tech := range techs {
		if empire.TechComplete(tech) {
			indMult += industryTechMods[tech]
		}
	}
	if empire.TechComplete("PRO_SINGULAR_GEN") && ctx.starClaimed(galaxy.StarBlackHole) {
		indMult += singularGenIndustryMod
	}

	fixedInd := 0.0
	if empire.TechComplete("PRO_SENTIENT_AUTOMATION") {
		fixedInd += dm * 5
	}
	maxIndFactor := 0.0
	if species.LikesFocus(galaxy.FocusIndustry) {
		maxIndFactor += basePopIndustry * miningBonus
		maxIndFactor += basePopIndustry * indMult
	}
	curPop := 1.0
	if planet.Species != "" {
		curPop = planet.Population
	} else if empire.TechComplete("GRO_LIFECYCLE_MAN") {
		curPop = 3.0
	}
	indVal := ProjectIndustryValue(curPop, maxPop, planet.Industry, maxIndFactor, flatIndustry, dm)
	e.addf("indVal %.1f", indVal)

	growthVal := 0.0
	for _, special := range planet.Specials {
		metab, ok := metabolismBoosts[special]
		if !ok {
			continue
		}
		// Value accrues to every other planet of this metabolism.
		gbonus := dm * basePopIndustry * indMult * ctx.Census.Metabolisms[metab]
		growthVal += gbonus
		e.addf("Bonus for %s: %.1f", special, gbonus)
	}

	researchBonus := 0.0
	if species.LikesFocus(galaxy.FocusResearch) {
		researchBonus += dm * 2 * basePopResearch * maxPop
		if planet.HasSpecial("ANCIENT_RUINS_SPECIAL") || planet.HasSpecial("ANCIENT_RUINS_DEPLETED_SPECIAL") {
			researchBonus += dm * 2 * basePopResearch * maxPop * 5
			e.addf("Ruins Research")
		}
		if planet.HasSpecial("COMPUTRONIUM_SPECIAL") {
			researchBonus += dm * 2 * 10
			e.addf("COMPUTRONIUM_SPECIAL")
		}
	}

	if maxPop <= 0 {
		e.addf("non-positive population projection for %s", species.Name)
		return 0
	}

	best := math.Max(indVal+asteroidBonus+gasGiantBonus, math.Max(researchBonus, growthVal))
	retval += best + fixedInd
	switch ctx.Reach.Ring(planet.SystemID) {
	case 1:
		retval += 10
	case 2:
		retval += 20
	case 3:
		retval += 10
	}

	if thrtFactor < 1.0 {
		retval *= thrtFactor
		e.addf("threat reducing value by %3d %%", int(100*(1-thrtFactor)))
	}
	if havePresence {
		e.addf("preexisting system colony")
		retval *= 1.5
	}
	return retval
}

// isNestSpecial reports whether a special marks a monster nest.
func isNestSpecial(special string) bool {
	return strings.Contains(special, "_NEST_")
}
