package colony

import "math"

// shipLimit is the turn-scaled affordability ceiling the threat tally is
// compared against: roughly how much militia the empire could float.
func shipLimit(turn int) float64 {
	return 2 * math.Pow(2, float64(turn)/40.0)
}

// threatDiscount combines local, neighbor, monster and two-jump threat into
// a tally normalized by the best warship rating and maps it onto the fixed
// discount ladder. Existing friendly presence softens the tally while
// weighing in a smaller share of the two-jump threat.
func threatDiscount(ctx *PlanningContext, sysID int, havePresence bool) float64 {
	st := ctx.Snap.Status[sysID]
	best := ctx.BestMilShipRating

	fleetRatio := (st.FleetThreat - st.MyFleetRating) / best
	monsterRatio := st.MonsterThreat / best
	// Negative inner ratios give credit for extra defenses closer in.
	neighborRatio := st.NeighborThreat/best + math.Min(0, fleetRatio)
	jump2Ratio := (st.Jump2Threat-st.MyNeighborRating)/best + math.Min(0, neighborRatio)

	limit := shipLimit(ctx.Snap.Turn)
	near := fleetRatio + neighborRatio + monsterRatio
	tally := near
	if havePresence {
		tally += 0.3 * jump2Ratio
		tally *= 0.8
	} else {
		tally += 0.6 * jump2Ratio
	}

	switch {
	case tally > limit:
		return 0.1
	case near > 0.6*limit:
		return 0.4
	case near > 0.2*limit:
		return 0.8
	}
	return 1.0
}
