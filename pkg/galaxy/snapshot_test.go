package galaxy

import (
	"strings"
	"testing"
)

func chainSnapshot() *Snapshot {
	return &Snapshot{
		Empire: &Empire{ID: 1},
		Systems: map[int]*System{
			1: {ID: 1, Adjacent: []int{2}},
			2: {ID: 2, Adjacent: []int{1, 3}},
			3: {ID: 3, Adjacent: []int{2}},
			4: {ID: 4},
		},
	}
}

func TestConnected_SameSystem(t *testing.T) {
	sn := chainSnapshot()
	if !sn.Connected(1, 1) {
		t.Error("a system must be connected to itself")
	}
}

func TestConnected_AcrossChain(t *testing.T) {
	sn := chainSnapshot()
	if !sn.Connected(1, 3) {
		t.Error("expected 1 and 3 connected via 2")
	}
	if sn.Connected(1, 4) {
		t.Error("expected 4 isolated")
	}
}

func TestConnected_ObstructedLane(t *testing.T) {
	sn := chainSnapshot()
	sn.Empire.ObstructedLanes = []Lane{{A: 3, B: 2}}
	// Obstruction applies in both directions.
	if sn.Connected(1, 3) {
		t.Error("expected obstructed lane to block the path")
	}
	if !sn.Connected(1, 2) {
		t.Error("expected the unobstructed hop to survive")
	}
}

func TestTechQueuedWithin(t *testing.T) {
	e := &Empire{
		CompletedTechs: map[string]bool{"DONE": true},
		ResearchQueue:  []string{"A", "B", "C"},
	}
	if !e.TechQueuedWithin("DONE", 0) {
		t.Error("completed tech counts at any depth")
	}
	if !e.TechQueuedWithin("B", 2) {
		t.Error("expected B within the first 2 queue slots")
	}
	if e.TechQueuedWithin("C", 2) {
		t.Error("C sits beyond the requested depth")
	}
	if e.TechQueuedWithin("C", 10) != true {
		t.Error("depth beyond the queue length clamps to the queue")
	}
}

func TestFleetRolesAndPodSpecies(t *testing.T) {
	f := &Fleet{Ships: []Ship{
		{ID: 1, Role: RoleColonyPod, Species: "SP_HUMAN"},
		{ID: 2, Role: RoleOutpostPod},
	}}
	if !f.HasRole(RoleColonyPod) || !f.HasRole(RoleOutpostPod) {
		t.Error("expected both pod roles present")
	}
	if f.HasRole(RoleColonyBase) {
		t.Error("unexpected base role")
	}
	if got := f.PodSpecies(); got != "SP_HUMAN" {
		t.Errorf("expected SP_HUMAN pod species, got %q", got)
	}
	if !f.Idle() {
		t.Error("fleet with no mission must be idle")
	}
}

func TestDecodeSnapshot(t *testing.T) {
	payload := `{
		"turn": 7,
		"empire": {"id": 3, "productionPoints": 42.5},
		"systems": {"1": {"id": 1, "star": "yellow", "planets": [10]}},
		"planets": {"10": {"id": 10, "systemId": 1, "owner": -1, "size": 3, "type": "terran"}}
	}`
	sn, err := DecodeSnapshot(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if sn.Turn != 7 || sn.Empire.ID != 3 {
		t.Errorf("unexpected header: turn=%d empire=%d", sn.Turn, sn.Empire.ID)
	}
	p := sn.Planet(10)
	if p == nil || p.Type != TypeTerran || !p.Unowned() {
		t.Errorf("unexpected planet decode: %+v", p)
	}
}

func TestDecodeSnapshot_MissingEmpire(t *testing.T) {
	sn, err := DecodeSnapshot(strings.NewReader(`{"turn": 1}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if sn.Empire == nil || sn.Empire.ID != NoEmpire {
		t.Errorf("expected placeholder empire, got %+v", sn.Empire)
	}
}
