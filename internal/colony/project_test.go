package colony

import (
	"math"
	"testing"
)

func TestNextTurnPopChange_Growth(t *testing.T) {
	got := NextTurnPopChange(1, 10)
	// 1 * (10 + 1 - 1) / 100
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("expected 0.1, got %f", got)
	}
}

func TestNextTurnPopChange_GrowthCappedAtTarget(t *testing.T) {
	got := NextTurnPopChange(9.99, 10)
	if math.Abs(got-0.01) > 1e-9 {
		t.Errorf("expected growth capped at 0.01, got %f", got)
	}
}

func TestNextTurnPopChange_Decay(t *testing.T) {
	got := NextTurnPopChange(12, 10)
	if math.Abs(got+0.2) > 1e-9 {
		t.Errorf("expected -0.2, got %f", got)
	}
}

func TestNextTurnPopChange_Equilibrium(t *testing.T) {
	if got := NextTurnPopChange(8, 8); got != 0 {
		t.Errorf("expected 0 at equilibrium, got %f", got)
	}
}

func TestProjectIndustryValue_SteadyState(t *testing.T) {
	// Pop and industry already at their targets: the projection reduces to
	// a geometric series over constant industry.
	got := ProjectIndustryValue(8, 8, 4, 0.5, 0, 40)
	discount := 1.0 - 1.0/40.0
	want := 0.0
	for i := 1; i <= projectionTurns; i++ {
		want += 4 * math.Pow(discount, float64(i))
	}
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestProjectIndustryValue_DeadWorldIsWorthless(t *testing.T) {
	if got := ProjectIndustryValue(0, 0, 0, 0, 0, 30); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestProjectIndustryValue_MorePopIsWorthMore(t *testing.T) {
	low := ProjectIndustryValue(1, 6, 0, 0.2, 0, 30)
	high := ProjectIndustryValue(1, 18, 0, 0.2, 0, 30)
	if high <= low {
		t.Errorf("expected larger target pop to project higher: %f <= %f", high, low)
	}
}
