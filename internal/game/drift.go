package game

// YearDrift reports what one drift call did to the world.
type YearDrift struct {
	PollutionGrowth int
	VitalityDecline int
	Income          int
}

// ApplyYearlyDrift advances the passive per-year changes in a fixed order:
// pollution growth, then vitality decline read from the post-growth
// pollution, then income read from the post-decline vitality. Each step sees
// the previous step's writes; the coupling is load-bearing for numeric
// reproducibility. No randomness is involved.
func ApplyYearlyDrift(state *WorldState, cfg Config) YearDrift {
	var drift YearDrift

	drift.PollutionGrowth = growthForYear(state.Pollution, state.GrowthModifier, cfg.BaseGrowth)
	state.Pollution = clamp(state.Pollution+drift.PollutionGrowth, 0, 100)

	drift.VitalityDecline = vitalityDecline(state.Pollution)
	state.Vitality = clamp(state.Vitality-drift.VitalityDecline, 0, 100)

	drift.Income = incomeForYear(state.IncomeBase, state.Vitality, state.Trust)
	state.Treasury += drift.Income

	return drift
}

// growthForYear compounds the base growth by current pollution: dirtier
// water accelerates its own decline. Truncated toward zero.
func growthForYear(pollution int, modifier, baseGrowth float64) int {
	rate := (baseGrowth + modifier) * (1 + float64(pollution)/100*0.5)
	return int(rate)
}

func vitalityDecline(pollution int) int {
	switch {
	case pollution >= 80:
		return 8
	case pollution >= 60:
		return 5
	case pollution >= 40:
		return 3
	case pollution >= 20:
		return 1
	default:
		return 0
	}
}

// IncomeMultiplier scales income by marine vitality.
func IncomeMultiplier(vitality int) float64 {
	switch {
	case vitality >= 80:
		return 1.0
	case vitality >= 60:
		return 0.8
	case vitality >= 40:
		return 0.6
	case vitality >= 20:
		return 0.4
	default:
		return 0.2
	}
}

// SupportMultiplier scales income by public trust.
func SupportMultiplier(trust int) float64 {
	switch {
	case trust >= 80:
		return 1.0
	case trust >= 60:
		return 0.9
	case trust >= 40:
		return 0.7
	case trust >= 20:
		return 0.5
	default:
		return 0.3
	}
}

// incomeForYear floors after each multiplier, in order. Not equivalent to a
// single combined multiply.
func incomeForYear(incomeBase, vitality, trust int) int {
	income := int(float64(incomeBase) * IncomeMultiplier(vitality))
	return int(float64(income) * SupportMultiplier(trust))
}

// ProjectedIncome previews next year's income without mutating anything.
// Same arithmetic as the drift step.
func ProjectedIncome(state WorldState) int {
	return incomeForYear(state.IncomeBase, state.Vitality, state.Trust)
}

// ProjectedGrowth previews next year's pollution growth.
func ProjectedGrowth(state WorldState, cfg Config) int {
	return growthForYear(state.Pollution, state.GrowthModifier, cfg.BaseGrowth)
}
