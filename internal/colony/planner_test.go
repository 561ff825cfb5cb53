package colony

import (
	"context"
	"testing"

	"github.com/fatman2021/orionai/internal/results"
	"github.com/fatman2021/orionai/pkg/galaxy"
)

func TestRunCycle_EndToEnd(t *testing.T) {
	snap := testSnapshot()
	sink := &galaxy.OrderLog{}
	store := results.NewStore()
	p := NewPlanner(sink, store)

	report := p.RunCycle(context.Background(), snap)
	if report.Turn != 12 {
		t.Errorf("expected turn 12 in report, got %d", report.Turn)
	}

	// The ruins world is the standout target on both lists.
	if len(report.ColonyTargets) == 0 || report.ColonyTargets[0].PlanetID != 1030 {
		t.Fatalf("expected ruins world to top the colony list, got %v", report.ColonyTargets)
	}
	if len(report.OutpostTargets) == 0 || report.OutpostTargets[0].PlanetID != 1030 {
		t.Fatalf("expected ruins world to top the outpost list, got %v", report.OutpostTargets)
	}

	// The belt sharing a system with the home colony gets a queued base.
	if len(report.QueuedOutpostBases) != 1 || report.QueuedOutpostBases[0] != 999 {
		t.Fatalf("expected queued base for planet 999, got %v", report.QueuedOutpostBases)
	}
	if len(sink.Builds) != 1 || sink.Builds[0].Role != galaxy.RoleOutpostBase || sink.Builds[0].LocationID != 1000 {
		t.Fatalf("expected outpost base build at 1000, got %v", sink.Builds)
	}

	// Colony fleet takes the ruins world; outpost fleet takes the next
	// target instead of double-booking it.
	var colonyTarget, outpostTarget int
	for _, a := range report.Assignments {
		switch a.Mission {
		case galaxy.MissionColonize:
			colonyTarget = a.PlanetID
		case galaxy.MissionOutpost:
			outpostTarget = a.PlanetID
		}
	}
	if colonyTarget != 1030 {
		t.Errorf("expected colony fleet on 1030, got %d", colonyTarget)
	}
	if outpostTarget != 1020 {
		t.Errorf("expected outpost fleet on 1020, got %d", outpostTarget)
	}

	cycle, ok := store.Latest()
	if !ok {
		t.Fatal("expected a published cycle")
	}
	if cycle.Turn != 12 || len(cycle.Colony) != len(report.ColonyTargets) {
		t.Errorf("published cycle does not match report: %+v", cycle)
	}
	if len(cycle.Reach.Base) == 0 || len(cycle.Reach.Rings) != 3 {
		t.Errorf("expected ring partition in published cycle, got %+v", cycle.Reach)
	}
}

func TestRunCycle_NoBasesWithoutOutpostingTech(t *testing.T) {
	snap := testSnapshot()
	delete(snap.Empire.CompletedTechs, "SHP_GAL_EXPLO")
	sink := &galaxy.OrderLog{}
	p := NewPlanner(sink, nil)

	report := p.RunCycle(context.Background(), snap)
	if len(sink.Builds) != 0 {
		t.Errorf("expected no base builds without the outposting tech, got %v", sink.Builds)
	}
	if len(report.QueuedOutpostBases) != 0 {
		t.Errorf("expected no queued bases, got %v", report.QueuedOutpostBases)
	}
}

func TestRunCycle_StateCarriesAcrossCycles(t *testing.T) {
	snap := testSnapshot()
	snap.Planets[1000].Focus = ""
	sink := &galaxy.OrderLog{}
	p := NewPlanner(sink, nil)

	p.RunCycle(context.Background(), snap)
	if len(sink.Focus) != 1 {
		t.Fatalf("expected one default-focus order on the first cycle, got %v", sink.Focus)
	}
	builds := len(sink.Builds)

	// Second cycle on the same state: the colony is known, the base is
	// already queued, so neither order repeats.
	p.RunCycle(context.Background(), snap)
	if len(sink.Focus) != 1 {
		t.Errorf("expected no repeated focus order, got %v", sink.Focus)
	}
	if len(sink.Builds) != builds {
		t.Errorf("expected no repeated base build, got %v", sink.Builds)
	}
}

func TestRunCycle_ColonyBaseQualification(t *testing.T) {
	snap := testSnapshot()
	snap.Planets[1002] = &galaxy.Planet{ID: 1002, Name: "Sol V", SystemID: 100,
		Size: galaxy.SizeMedium, Type: galaxy.TypeTerran, Owner: galaxy.NoEmpire}
	snap.Systems[100].Planets = append(snap.Systems[100].Planets, 1002)
	snap.Empire.SystemPP = map[int]float64{100: 2}
	sink := &galaxy.OrderLog{}
	p := NewPlanner(sink, nil)

	report := p.RunCycle(context.Background(), snap)
	if got := report.ColonyBaseSpecies[1002]; got != "SP_HUMAN" {
		t.Errorf("expected SP_HUMAN colony base candidate for 1002, got %q", got)
	}
	// The belt remains outpost-base-only: no species can settle asteroids.
	if _, ok := report.ColonyBaseSpecies[999]; ok {
		t.Error("asteroid belt should not qualify for a colony base")
	}
}
