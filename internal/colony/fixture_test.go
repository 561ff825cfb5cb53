package colony

import (
	"github.com/fatman2021/orionai/pkg/galaxy"
)

// testSnapshot builds a five-system chain (Sol-Vega-Rigel-Algol-Deneb) with
// one settled colony, one owned asteroid outpost, and a spread of unowned
// worlds. Individual tests mutate the returned snapshot as needed.
//
// Supply techs give a supply distance of 3, so Sol and Vega form the base
// set, Rigel is ring 1 and Algol ring 2; Deneb stays out of reach.
func testSnapshot() *galaxy.Snapshot {
	return &galaxy.Snapshot{
		Turn: 12,
		Empire: &galaxy.Empire{
			ID:               2,
			CapitalID:        1000,
			ProductionPoints: 50,
			CompletedTechs: map[string]bool{
				"SHP_GAL_EXPLO":   true,
				"CON_ORBITAL_CON": true,
				"CON_NDIM_STRUC":  true,
			},
			ResearchQueue: []string{"PRO_SOL_ORB_GEN"},
			SupplySystems: []int{100},
			Aggression:    galaxy.AggressionTypical,
		},
		Systems: map[int]*galaxy.System{
			100: {ID: 100, Name: "Sol", Star: galaxy.StarYellow, Planets: []int{999, 1000, 1001}, Adjacent: []int{101}},
			101: {ID: 101, Name: "Vega", Star: galaxy.StarYellow, Planets: []int{1010, 1011}, Adjacent: []int{100, 102}},
			102: {ID: 102, Name: "Rigel", Star: galaxy.StarBlue, Planets: []int{1020}, Adjacent: []int{101, 103}},
			103: {ID: 103, Name: "Algol", Star: galaxy.StarRed, Planets: []int{1030}, Adjacent: []int{102, 104}},
			104: {ID: 104, Name: "Deneb", Star: galaxy.StarYellow, Planets: []int{1040}, Adjacent: []int{103}},
		},
		Planets: map[int]*galaxy.Planet{
			999: {ID: 999, Name: "Sol Belt", SystemID: 100, Size: galaxy.SizeAsteroids,
				Type: galaxy.TypeAsteroids, Owner: galaxy.NoEmpire},
			1000: {ID: 1000, Name: "Sol III", SystemID: 100, Size: galaxy.SizeMedium,
				Type: galaxy.TypeTerran, Owner: 2, Species: "SP_HUMAN", Population: 8,
				Industry: 4, Focus: galaxy.FocusIndustry,
				AvailableFoci: []galaxy.Focus{galaxy.FocusIndustry, galaxy.FocusResearch},
				Buildings:     []string{"BLD_SHIPYARD_BASE", "BLD_SHIPYARD_ORBITAL_DRYDOCK"}},
			1001: {ID: 1001, Name: "Sol IV", SystemID: 100, Size: galaxy.SizeAsteroids,
				Type: galaxy.TypeAsteroids, Owner: 2},
			1010: {ID: 1010, Name: "Vega II", SystemID: 101, Size: galaxy.SizeMedium,
				Type: galaxy.TypeOcean, Owner: galaxy.NoEmpire},
			1011: {ID: 1011, Name: "Vega Belt", SystemID: 101, Size: galaxy.SizeAsteroids,
				Type: galaxy.TypeAsteroids, Owner: galaxy.NoEmpire},
			1020: {ID: 1020, Name: "Rigel I", SystemID: 102, Size: galaxy.SizeGasGiant,
				Type: galaxy.TypeGasGiant, Owner: galaxy.NoEmpire},
			1030: {ID: 1030, Name: "Algol II", SystemID: 103, Size: galaxy.SizeMedium,
				Type: galaxy.TypeTerran, Owner: galaxy.NoEmpire,
				Specials: []string{"ANCIENT_RUINS_SPECIAL"}},
			1040: {ID: 1040, Name: "Deneb III", SystemID: 104, Size: galaxy.SizeMedium,
				Type: galaxy.TypeTerran, Owner: galaxy.NoEmpire},
		},
		Fleets: map[int]*galaxy.Fleet{
			5000: {ID: 5000, SystemID: 100, Ships: []galaxy.Ship{
				{ID: 1, Role: galaxy.RoleOutpostPod}}},
			5001: {ID: 5001, SystemID: 100, Ships: []galaxy.Ship{
				{ID: 2, Species: "SP_HUMAN", Role: galaxy.RoleColonyPod}}},
		},
		Species: map[string]*galaxy.Species{
			"SP_HUMAN": {
				Name: "SP_HUMAN",
				Tags: []string{"ORGANIC"},
				Environments: map[galaxy.PlanetType]galaxy.Environment{
					galaxy.TypeTerran: galaxy.EnvGood,
					galaxy.TypeOcean:  galaxy.EnvAdequate,
					galaxy.TypeTundra: galaxy.EnvPoor,
				},
				Foci:            []galaxy.Focus{galaxy.FocusIndustry, galaxy.FocusResearch},
				CanColonize:     true,
				CanProduceShips: true,
				Homeworlds:      []int{1000},
			},
		},
	}
}

// testContext assembles the per-cycle planning context for a snapshot the
// same way the planner does.
func testContext(snap *galaxy.Snapshot, sink galaxy.OrderSink) *PlanningContext {
	reach := ExpandSupply(snap, SupplyDistance(snap.Empire))
	census := BuildCensus(snap, sink, nil)
	return NewPlanningContext(snap, census, reach, 0)
}
