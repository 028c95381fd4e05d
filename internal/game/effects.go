package game

// EffectBundle is a closed set of deltas applied together to WorldState.
// The zero value is a no-op. Fields map to independent state fields, so the
// result never depends on any processing order.
type EffectBundle struct {
	Treasury   int
	Pollution  int
	Vitality   int
	Trust      int
	IncomeBase int
	GrowthRate float64
}

func (b EffectBundle) IsZero() bool {
	return b == EffectBundle{}
}

// Add merges two bundles field-wise.
func (b EffectBundle) Add(other EffectBundle) EffectBundle {
	return EffectBundle{
		Treasury:   b.Treasury + other.Treasury,
		Pollution:  b.Pollution + other.Pollution,
		Vitality:   b.Vitality + other.Vitality,
		Trust:      b.Trust + other.Trust,
		IncomeBase: b.IncomeBase + other.IncomeBase,
		GrowthRate: b.GrowthRate + other.GrowthRate,
	}
}

// ApplyEffects mutates state in place under the per-field clamp rules:
// Treasury and IncomeBase are floored at 0, the three bounded statistics are
// clamped to [0,100], and GrowthRate accumulates unclamped.
func ApplyEffects(state *WorldState, bundle EffectBundle) {
	state.Treasury = max(0, state.Treasury+bundle.Treasury)
	state.Pollution = clamp(state.Pollution+bundle.Pollution, 0, 100)
	state.Vitality = clamp(state.Vitality+bundle.Vitality, 0, 100)
	state.Trust = clamp(state.Trust+bundle.Trust, 0, 100)
	state.IncomeBase = max(0, state.IncomeBase+bundle.IncomeBase)
	state.GrowthModifier += bundle.GrowthRate
}
