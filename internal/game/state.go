package game

// WorldState is the single mutable aggregate of a run. Pollution, Vitality
// and Trust hold [0,100] after every write; Treasury and IncomeBase are
// floored at 0 with no ceiling; GrowthModifier is never clamped.
type WorldState struct {
	Tick int

	Treasury  int
	Pollution int
	Vitality  int
	Trust     int

	IncomeBase     int
	GrowthModifier float64

	UsedActionIDs map[string]bool

	// Audit fields for the narration layer. No engine rule reads them.
	// LastActionID is the record identity; LastAction is display text only.
	LastEvent         string
	LastEventChoice   string
	LastActionID      string
	LastAction        string
	LastActionEffects EffectBundle
}

func NewWorldState(cfg Config) WorldState {
	return WorldState{
		Tick:          cfg.StartTick,
		Treasury:      cfg.StartTreasury,
		Pollution:     clamp(cfg.StartPollution, 0, 100),
		Vitality:      clamp(cfg.StartVitality, 0, 100),
		Trust:         clamp(cfg.StartTrust, 0, 100),
		IncomeBase:    cfg.StartIncome,
		UsedActionIDs: make(map[string]bool),
	}
}

// Snapshot returns a copy safe to hand to display code; the used-action set
// is cloned so callers cannot reach back into the live state.
func (w WorldState) Snapshot() WorldState {
	out := w
	out.UsedActionIDs = make(map[string]bool, len(w.UsedActionIDs))
	for id, used := range w.UsedActionIDs {
		out.UsedActionIDs[id] = used
	}
	return out
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}
