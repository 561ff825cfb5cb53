package colony

import (
	"testing"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

func TestEvaluatePlanet_UnknownPlanet(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 77777, galaxy.MissionOutpost, "")
	if score != 0 {
		t.Errorf("expected 0 for unknown planet, got %f", score)
	}
}

func TestEvaluatePlanet_StealthedSightingScoresZero(t *testing.T) {
	snap := testSnapshot()
	snap.VisibilityTurn = map[int]int{1010: 3, 101: 9}
	ctx := testContext(snap, &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 1010, galaxy.MissionOutpost, "")
	if score != 0 {
		t.Errorf("expected 0 for stealthed planet, got %f", score)
	}
}

func TestEvaluatePlanet_OutpostAsteroidSynergies(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 999, galaxy.MissionOutpost, "")
	// Mining next to one inhabited planet: 2.5 * 30. Shipbuilding with
	// CON_ORBITAL_CON: 10 * 30. Presence multiplier 1.5, truncated.
	if score != 562 {
		t.Errorf("expected 562, got %f", score)
	}
}

func TestEvaluatePlanet_LowerSiblingAsteroidTakesClaim(t *testing.T) {
	snap := testSnapshot()
	snap.Planets[998] = &galaxy.Planet{ID: 998, Name: "Sol Shards", SystemID: 100,
		Size: galaxy.SizeAsteroids, Type: galaxy.TypeAsteroids, Owner: galaxy.NoEmpire}
	snap.Systems[100].Planets = append([]int{998}, snap.Systems[100].Planets...)
	ctx := testContext(snap, &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 999, galaxy.MissionOutpost, "")
	if score != 0 {
		t.Errorf("expected 0 with a lower-id unowned sibling, got %f", score)
	}
}

func TestEvaluatePlanet_OutpostBlueStarBonus(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 1020, galaxy.MissionOutpost, "")
	// PRO_SOL_ORB_GEN queued, no blue or white star claimed yet: 20 * 30.
	if score != 600 {
		t.Errorf("expected 600, got %f", score)
	}
}

func TestEvaluatePlanet_GasGiantGeneratorGoesToLowestID(t *testing.T) {
	snap := testSnapshot()
	snap.Planets[1021] = &galaxy.Planet{ID: 1021, Name: "Rigel II", SystemID: 102,
		Size: galaxy.SizeGasGiant, Type: galaxy.TypeGasGiant, Owner: galaxy.NoEmpire}
	snap.Planets[1022] = &galaxy.Planet{ID: 1022, Name: "Rigel III", SystemID: 102,
		Size: galaxy.SizeMedium, Type: galaxy.TypeTerran, Owner: 2,
		Species: "SP_HUMAN", Population: 2, Focus: galaxy.FocusIndustry}
	snap.Systems[102].Planets = []int{1020, 1021, 1022}
	ctx := testContext(snap, &galaxy.OrderLog{})

	first, _ := EvaluatePlanet(ctx, 1020, galaxy.MissionOutpost, "")
	second, _ := EvaluatePlanet(ctx, 1021, galaxy.MissionOutpost, "")
	// Generator value (10 * 30 for the one industry neighbor) with the
	// presence multiplier goes to the lowest gas giant only.
	if first != 450 {
		t.Errorf("expected 450 for the claimant, got %f", first)
	}
	if second != 0 {
		t.Errorf("expected 0 for the second gas giant, got %f", second)
	}
}

func TestEvaluatePlanet_NestValueScalesWithProduction(t *testing.T) {
	snap := testSnapshot()
	snap.Planets[1030].Specials = []string{"KRAKEN_NEST_SPECIAL"}

	ctx := testContext(snap, &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 1030, galaxy.MissionOutpost, "")
	if score != 0 {
		t.Errorf("low production: expected 0, got %f", score)
	}

	snap.Empire.ProductionPoints = 200
	ctx = testContext(snap, &galaxy.OrderLog{})
	score, _ = EvaluatePlanet(ctx, 1030, galaxy.MissionOutpost, "")
	// 40 * 30 at full backup factor.
	if score != 1200 {
		t.Errorf("high production: expected 1200, got %f", score)
	}
}

func TestEvaluatePlanet_ColonyNeedsSpecies(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 1030, galaxy.MissionColonize, "SP_NOBODY")
	if score != 0 {
		t.Errorf("expected 0 for unknown species, got %f", score)
	}
}

func TestEvaluatePlanet_ColonyUninhabitableSentinel(t *testing.T) {
	snap := testSnapshot()
	snap.Planets[1041] = &galaxy.Planet{ID: 1041, Name: "Deneb IV", SystemID: 104,
		Size: galaxy.SizeMedium, Type: galaxy.TypeInferno, Owner: galaxy.NoEmpire}
	snap.Systems[104].Planets = append(snap.Systems[104].Planets, 1041)
	ctx := testContext(snap, &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 1041, galaxy.MissionColonize, "SP_HUMAN")
	if score != UninhabitableScore {
		t.Errorf("expected %d, got %f", UninhabitableScore, score)
	}
}

func TestEvaluatePlanet_ColonyCannotSettleGasGiant(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	score, _ := EvaluatePlanet(ctx, 1020, galaxy.MissionColonize, "SP_HUMAN")
	if score != 0 {
		t.Errorf("expected 0, got %f", score)
	}
}

func TestEvaluatePlanet_RuinsDominateColonyValue(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	ruins, _ := EvaluatePlanet(ctx, 1030, galaxy.MissionColonize, "SP_HUMAN")
	plain, _ := EvaluatePlanet(ctx, 1010, galaxy.MissionColonize, "SP_HUMAN")
	if ruins <= 1500 {
		t.Errorf("expected ruins world above the flat ruins bonus, got %f", ruins)
	}
	if plain <= 0 {
		t.Errorf("expected a habitable plain world to score positive, got %f", plain)
	}
	if ruins <= plain {
		t.Errorf("expected ruins world to outrank plain world: %f <= %f", ruins, plain)
	}
}

func TestEvaluatePlanet_Deterministic(t *testing.T) {
	ctx := testContext(testSnapshot(), &galaxy.OrderLog{})
	s1, d1 := EvaluatePlanet(ctx, 1030, galaxy.MissionColonize, "SP_HUMAN")
	s2, d2 := EvaluatePlanet(ctx, 1030, galaxy.MissionColonize, "SP_HUMAN")
	if s1 != s2 {
		t.Errorf("scores differ between runs: %f vs %f", s1, s2)
	}
	if len(d1) != len(d2) {
		t.Errorf("breakdowns differ between runs: %d vs %d entries", len(d1), len(d2))
	}
}
