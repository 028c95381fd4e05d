package game

import "testing"

func baseState() WorldState {
	return WorldState{
		Tick:          10,
		Treasury:      100,
		Pollution:     40,
		Vitality:      70,
		Trust:         60,
		IncomeBase:    20,
		UsedActionIDs: make(map[string]bool),
	}
}

func TestApplyEffectsClampsBoundedStats(t *testing.T) {
	cases := []struct {
		name   string
		bundle EffectBundle
		check  func(t *testing.T, s WorldState)
	}{
		{
			name:   "huge positive pollution clamps to 100",
			bundle: EffectBundle{Pollution: 10000},
			check: func(t *testing.T, s WorldState) {
				if s.Pollution != 100 {
					t.Fatalf("expected pollution 100, got %d", s.Pollution)
				}
			},
		},
		{
			name:   "huge negative vitality clamps to 0",
			bundle: EffectBundle{Vitality: -10000},
			check: func(t *testing.T, s WorldState) {
				if s.Vitality != 0 {
					t.Fatalf("expected vitality 0, got %d", s.Vitality)
				}
			},
		},
		{
			name:   "huge negative trust clamps to 0",
			bundle: EffectBundle{Trust: -10000},
			check: func(t *testing.T, s WorldState) {
				if s.Trust != 0 {
					t.Fatalf("expected trust 0, got %d", s.Trust)
				}
			},
		},
		{
			name:   "treasury floors at zero with no ceiling",
			bundle: EffectBundle{Treasury: -10000},
			check: func(t *testing.T, s WorldState) {
				if s.Treasury != 0 {
					t.Fatalf("expected treasury 0, got %d", s.Treasury)
				}
			},
		},
		{
			name:   "treasury has no upper bound",
			bundle: EffectBundle{Treasury: 10000},
			check: func(t *testing.T, s WorldState) {
				if s.Treasury != 10100 {
					t.Fatalf("expected treasury 10100, got %d", s.Treasury)
				}
			},
		},
		{
			name:   "income base floors at zero",
			bundle: EffectBundle{IncomeBase: -10000},
			check: func(t *testing.T, s WorldState) {
				if s.IncomeBase != 0 {
					t.Fatalf("expected income base 0, got %d", s.IncomeBase)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := baseState()
			ApplyEffects(&state, tc.bundle)
			tc.check(t, state)

			if state.Pollution < 0 || state.Pollution > 100 {
				t.Fatalf("pollution out of range: %d", state.Pollution)
			}
			if state.Vitality < 0 || state.Vitality > 100 {
				t.Fatalf("vitality out of range: %d", state.Vitality)
			}
			if state.Trust < 0 || state.Trust > 100 {
				t.Fatalf("trust out of range: %d", state.Trust)
			}
			if state.Treasury < 0 || state.IncomeBase < 0 {
				t.Fatalf("treasury/income base went negative: %d %d", state.Treasury, state.IncomeBase)
			}
		})
	}
}

func TestApplyEffectsZeroBundleIsNoOp(t *testing.T) {
	state := baseState()
	state.GrowthModifier = 1.5
	before := state

	ApplyEffects(&state, EffectBundle{})

	if state.Treasury != before.Treasury || state.Pollution != before.Pollution ||
		state.Vitality != before.Vitality || state.Trust != before.Trust ||
		state.IncomeBase != before.IncomeBase || state.GrowthModifier != before.GrowthModifier {
		t.Fatalf("zero bundle changed state: %+v -> %+v", before, state)
	}
}

func TestApplyEffectsGrowthRateAccumulatesUnclamped(t *testing.T) {
	state := baseState()

	ApplyEffects(&state, EffectBundle{GrowthRate: -3.5})
	ApplyEffects(&state, EffectBundle{GrowthRate: -200})

	if state.GrowthModifier != -203.5 {
		t.Fatalf("expected growth modifier -203.5, got %v", state.GrowthModifier)
	}
}

func TestApplyEffectsFieldsAreIndependent(t *testing.T) {
	combined := baseState()
	ApplyEffects(&combined, EffectBundle{Treasury: -50, Pollution: 10, Vitality: -5, Trust: 3, IncomeBase: 2, GrowthRate: 0.5})

	stepwise := baseState()
	ApplyEffects(&stepwise, EffectBundle{GrowthRate: 0.5})
	ApplyEffects(&stepwise, EffectBundle{IncomeBase: 2})
	ApplyEffects(&stepwise, EffectBundle{Trust: 3})
	ApplyEffects(&stepwise, EffectBundle{Vitality: -5})
	ApplyEffects(&stepwise, EffectBundle{Pollution: 10})
	ApplyEffects(&stepwise, EffectBundle{Treasury: -50})

	if combined.Treasury != stepwise.Treasury || combined.Pollution != stepwise.Pollution ||
		combined.Vitality != stepwise.Vitality || combined.Trust != stepwise.Trust ||
		combined.IncomeBase != stepwise.IncomeBase || combined.GrowthModifier != stepwise.GrowthModifier {
		t.Fatalf("combined and stepwise application diverged: %+v vs %+v", combined, stepwise)
	}
}

func TestEffectBundleAdd(t *testing.T) {
	got := EffectBundle{Treasury: 5, GrowthRate: -0.5}.Add(EffectBundle{Treasury: -2, Pollution: 3, GrowthRate: -0.5})
	want := EffectBundle{Treasury: 3, Pollution: 3, GrowthRate: -1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
