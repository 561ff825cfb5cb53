package colony

import (
	"sort"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// ScoredTarget is one evaluated (planet, mission, species) triple with its
// score and labeled breakdown. Produced fresh each evaluation; never
// persisted across cycles.
type ScoredTarget struct {
	PlanetID int
	Mission  galaxy.Mission
	Species  string
	Score    float64
	Detail   []string
}

// SpeciesSelector names which species to evaluate a planet for. Resolve it
// once at the call boundary; the zero value means "no species" (outposts).
type SpeciesSelector struct {
	all   bool
	names []string
}

// NoSpecies evaluates without a species (outpost missions).
func NoSpecies() SpeciesSelector { return SpeciesSelector{} }

// OneSpecies evaluates for a single named species.
func OneSpecies(name string) SpeciesSelector { return SpeciesSelector{names: []string{name}} }

// SpeciesSet evaluates for an explicit list of species, in order.
func SpeciesSet(names ...string) SpeciesSelector { return SpeciesSelector{names: names} }

// AllColonizers evaluates for every colonizer species in the census.
func AllColonizers() SpeciesSelector { return SpeciesSelector{all: true} }

// resolve expands the selector against the census. Outposts evaluate with
// the empty species name.
func (s SpeciesSelector) resolve(census *Census, mission galaxy.Mission) []string {
	if mission == galaxy.MissionOutpost || mission == galaxy.MissionOutpostBase {
		return []string{""}
	}
	if s.all {
		return census.ColonizerNames()
	}
	if len(s.names) == 0 {
		return []string{""}
	}
	return s.names
}

// AssignValues scores every candidate planet for every selected species and
// returns, per planet, the options sorted best first. Option order between
// equal scores follows selector order, giving reproducible rankings.
func AssignValues(ctx *PlanningContext, planetIDs []int, mission galaxy.Mission, sel SpeciesSelector) map[int][]ScoredTarget {
	specNames := sel.resolve(ctx.Census, mission)
	values := make(map[int][]ScoredTarget, len(planetIDs))
	for _, pid := range planetIDs {
		options := make([]ScoredTarget, 0, len(specNames))
		for _, name := range specNames {
			score, detail := EvaluatePlanet(ctx, pid, mission, name)
			options = append(options, ScoredTarget{
				PlanetID: pid,
				Mission:  mission,
				Species:  name,
				Score:    score,
				Detail:   detail,
			})
		}
		sort.SliceStable(options, func(i, j int) bool { return options[i].Score > options[j].Score })
		values[pid] = options
	}
	return values
}

// RankTargets keeps the best-scoring option per planet, drops everything at
// or below zero (including the uninhabitable sentinel), and returns the
// rest sorted by descending score with planet id as the stable tiebreak.
func RankTargets(values map[int][]ScoredTarget) []ScoredTarget {
	ranked := make([]ScoredTarget, 0, len(values))
	for _, options := range values {
		if len(options) == 0 {
			continue
		}
		best := options[0]
		if best.Score <= 0 {
			continue
		}
		ranked = append(ranked, best)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].PlanetID < ranked[j].PlanetID
	})
	return ranked
}
