package colony

import "math"

// projectionTurns bounds the economic projection horizon.
const projectionTurns = 50

// NextTurnPopChange mirrors the host simulation's per-turn population rule
// exactly; any drift here would make projected values incomparable with
// observed meter growth. Growth is a bounded logistic-like step, decay a
// tenth of the overshoot.
func NextTurnPopChange(curPop, targetPop float64) float64 {
	if targetPop > curPop {
		change := curPop * (targetPop + 1 - curPop) / 100
		return math.Min(change, targetPop-curPop)
	}
	change := -(curPop - targetPop) / 10
	return math.Max(change, targetPop-curPop)
}

// ProjectIndustryValue simulates 50 turns of population and industry growth
// and returns the geometrically discounted sum of projected industry.
// Industry tracks flatIndustry + pop*maxIndFactor, moving at most one point
// per turn. Purely functional.
func ProjectIndustryValue(initPop, maxPop, initIndustry, maxIndFactor, flatIndustry, discountMultiplier float64) float64 {
	discount := 0.95
	if discountMultiplier > 1.0 {
		discount = 1.0 - 1.0/discountMultiplier
	}
	pop := initPop
	industry := initIndustry
	value := 0.0
	factor := 1.0
	for turn := 0; turn < projectionTurns; turn++ {
		pop += NextTurnPopChange(pop, maxPop)
		industry = math.Min(industry+1, math.Max(math.Max(0, industry-1), flatIndustry+pop*maxIndFactor))
		factor *= discount
		value += factor * industry
	}
	return value
}
