package colony

import (
	"strings"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// Piloting grade ladder for species weapons tags. The default applies to
// species with no weapons tag at all.
const defaultPilotGrade = 2.0

var pilotGrades = map[string]float64{
	"NO":       1e-8,
	"BAD":      0.75,
	"GOOD":     4.0,
	"GREAT":    6.0,
	"ULTIMATE": 12.0,
}

// Output grade ladder for industry/research tags, and the narrower ladder
// used for population tags.
var outputTagGrades = map[string]float64{
	"NO":       0.0,
	"BAD":      0.5,
	"GOOD":     1.5,
	"GREAT":    2.0,
	"ULTIMATE": 4.0,
}

var popTagGrades = map[string]float64{
	"BAD":  0.75,
	"GOOD": 1.25,
}

// ratePilotingTags derives a piloting grade from a species' weapons tags.
func ratePilotingTags(tags []string) float64 {
	grade := defaultPilotGrade
	for _, tag := range tags {
		if !strings.Contains(tag, "AI_TAG") || !strings.Contains(tag, "WEAPONS") {
			continue
		}
		parts := strings.Split(tag, "_")
		if len(parts) < 3 {
			continue
		}
		if g, ok := pilotGrades[parts[2]]; ok {
			grade = g
		} else {
			grade = 1.0
		}
	}
	return grade
}

// tagGradePart extracts the grade component of an AI_TAG_<GRADE>_<KIND> tag.
func tagGradeParts(tag string) (grade, kind string, ok bool) {
	parts := strings.Split(tag, "_")
	if len(parts) < 4 {
		return "", "", false
	}
	return parts[2], parts[3], true
}

// Population-size modifiers per environment grade, indexed by
// galaxy.Environment (uninhabitable, hostile, poor, adequate, good).
var popSizeMods = map[string][5]float64{
	"env":     {0, -4, -2, 0, 3},
	"subHab":  {0, 1, 1, 1, 1},
	"symBio":  {0, 0, 1, 1, 1},
	"xenoGen": {0, 1, 2, 2, 0},
	"xenoHyb": {0, 2, 1, 0, 0},
	"cyborg":  {0, 2, 0, 0, 0},
	"ndim":    {0, 2, 2, 2, 2},
	"orbit":   {0, 1, 1, 1, 1},
	"gaia":    {0, 3, 3, 3, 3},
}

// Growth techs whose completion feeds the unconditional pop-size modifier,
// and construction techs that only apply on top of a viable base.
var growthTechMods = []struct{ Tech, Key string }{
	{"GRO_SYMBIOTIC_BIO", "symBio"},
	{"GRO_XENO_GENETICS", "xenoGen"},
	{"GRO_XENO_HYBRID", "xenoHyb"},
	{"GRO_CYBORG", "cyborg"},
}

var habTechMods = []struct{ Tech, Key string }{
	{"CON_NDIM_STRUC", "ndim"},
	{"CON_ORBITAL_HAB", "orbit"},
}

// Monster-nest outpost values; unlisted nest specials get the default.
const defaultNestValue = 5.0

var nestValues = map[string]float64{
	"SNOWFLAKE_NEST_SPECIAL":  15,
	"KRAKEN_NEST_SPECIAL":     40,
	"JUGGERNAUT_NEST_SPECIAL": 80,
}

// Phototrophic population modifier per star type; absent entries are 0.
var photoStarMods = map[galaxy.StarType]float64{
	galaxy.StarBlue:      3,
	galaxy.StarWhite:     1.5,
	galaxy.StarRed:       -1,
	galaxy.StarNeutron:   -1,
	galaxy.StarBlackHole: -10,
	galaxy.StarNone:      -10,
}

// Industry multiplier contributions per completed production tech.
// PRO_SINGULAR_GEN is handled separately: it only counts once a black hole
// has been claimed.
var industryTechMods = map[string]float64{
	"GRO_ENERGY_META":         0.5,
	"PRO_ROBOTIC_PROD":        0.4,
	"PRO_FUSION_GEN":          1.0,
	"PRO_INDUSTRY_CENTER_I":   1,
	"PRO_INDUSTRY_CENTER_II":  1,
	"PRO_INDUSTRY_CENTER_III": 1,
	"PRO_SOL_ORB_GEN":         2.0,
}

const singularGenIndustryMod = 4.0

// Techs that each extend fleet supply range by one jump when complete.
var supplyRangeTechs = []string{
	"CON_ORBITAL_CON",
	"CON_NDIM_STRUC",
	"CON_CONTGRAV_ARCH",
	"CON_GAL_INFRA",
}

// Metabolism classes a species may carry as tags.
var metabolismTags = []string{
	"ORGANIC",
	"LITHIC",
	"ROBOTIC",
	"PHOTOTROPHIC",
	"SELF_SUSTAINING",
}

// Growth specials and the metabolism class each one boosts.
var metabolismBoosts = map[string]string{
	"FRUIT_SPECIAL":          "ORGANIC",
	"PROBIOTIC_SPECIAL":      "ORGANIC",
	"SPICE_SPECIAL":          "ORGANIC",
	"MINERALS_SPECIAL":       "LITHIC",
	"CRYSTALS_SPECIAL":       "LITHIC",
	"METALOIDS_SPECIAL":      "LITHIC",
	"MONOPOLE_SPECIAL":       "ROBOTIC",
	"SUPERCONDUCTOR_SPECIAL": "ROBOTIC",
	"POSITRONIUM_SPECIAL":    "ROBOTIC",
}

// boostsForMetabolism returns the growth specials applicable to a
// metabolism class, in stable order.
func boostsForMetabolism(metabolism string) []string {
	var out []string
	for _, special := range []string{
		"FRUIT_SPECIAL", "PROBIOTIC_SPECIAL", "SPICE_SPECIAL",
		"MINERALS_SPECIAL", "CRYSTALS_SPECIAL", "METALOIDS_SPECIAL",
		"MONOPOLE_SPECIAL", "SUPERCONDUCTOR_SPECIAL", "POSITRONIUM_SPECIAL",
	} {
		if metabolismBoosts[special] == metabolism {
			out = append(out, special)
		}
	}
	return out
}

// Colony/outpost pod economics.
const (
	colonyPodCost   = 120.0
	outpostPodCost  = 50.0
	colonyPodUpkeep = 0.06
)

// Gate techs referenced by the planner.
const (
	outpostingTech   = "SHP_GAL_EXPLO"
	exobotTech       = "PRO_EXOBOTS"
	exobotSpecies    = "SP_EXOBOT"
	superTestSpecies = "SP_SUPER_TEST"
	aciremaSpecies   = "SP_ACIREMA"
)

// Shipyard building type names recognized by the census.
const (
	shipyardBuilding = "BLD_SHIPYARD_BASE"
	drydockBuilding  = "BLD_SHIPYARD_ORBITAL_DRYDOCK"
)
