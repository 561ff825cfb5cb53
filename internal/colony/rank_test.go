package colony

import (
	"testing"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

func TestRankTargets_BestPerPlanetSortedDescending(t *testing.T) {
	values := map[int][]ScoredTarget{
		7:  {{PlanetID: 7, Score: 50}, {PlanetID: 7, Score: 40}},
		8:  {{PlanetID: 8, Score: UninhabitableScore}},
		9:  {{PlanetID: 9, Score: 50}},
		10: {{PlanetID: 10, Score: 120}},
		11: {{PlanetID: 11, Score: 0}},
	}
	ranked := RankTargets(values)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked targets, got %d: %v", len(ranked), ranked)
	}
	if ranked[0].PlanetID != 10 {
		t.Errorf("expected planet 10 first, got %d", ranked[0].PlanetID)
	}
	// Equal scores break ties by planet id.
	if ranked[1].PlanetID != 7 || ranked[2].PlanetID != 9 {
		t.Errorf("expected 7 then 9 on tie, got %d then %d", ranked[1].PlanetID, ranked[2].PlanetID)
	}
}

func TestSpeciesSelector_OutpostsIgnoreNames(t *testing.T) {
	sel := SpeciesSet("SP_HUMAN", "SP_EXOBOT")
	names := sel.resolve(nil, galaxy.MissionOutpost)
	if len(names) != 1 || names[0] != "" {
		t.Errorf("expected the empty species for outposts, got %v", names)
	}
}

func TestAssignValues_OptionsSortedBestFirst(t *testing.T) {
	snap := testSnapshot()
	snap.Species["SP_TREE"] = &galaxy.Species{
		Name:         "SP_TREE",
		Environments: map[galaxy.PlanetType]galaxy.Environment{galaxy.TypeTerran: galaxy.EnvPoor},
		Foci:         []galaxy.Focus{galaxy.FocusIndustry},
		CanColonize:  true,
	}
	ctx := testContext(snap, &galaxy.OrderLog{})

	values := AssignValues(ctx, []int{1030}, galaxy.MissionColonize,
		SpeciesSet("SP_TREE", "SP_HUMAN"))
	options := values[1030]
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].Score < options[1].Score {
		t.Errorf("options not sorted best first: %f < %f", options[0].Score, options[1].Score)
	}
	if options[0].Species != "SP_HUMAN" {
		t.Errorf("expected SP_HUMAN to score best on a good terran world, got %s", options[0].Species)
	}
}
