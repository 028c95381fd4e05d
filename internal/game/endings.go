package game

type Ending string

const (
	EndingRunning   Ending = "running"
	EndingCollapse  Ending = "collapse"
	EndingToxicSeas Ending = "toxic_seas"
	EndingUprising  Ending = "uprising"
	EndingVictory   Ending = "victory"
)

func (e Ending) Terminal() bool {
	return e != EndingRunning
}

// CheckEnding evaluates terminal conditions in priority order; the first
// match wins when several hold in the same tick. Collapse outranks toxic
// seas, which outranks uprising; victory is only checked once the losing
// conditions have all been ruled out.
func CheckEnding(state WorldState, cfg Config) Ending {
	switch {
	case state.Vitality <= 0:
		return EndingCollapse
	case state.Pollution >= 100:
		return EndingToxicSeas
	case state.Trust <= 0:
		return EndingUprising
	case state.Tick >= cfg.EndTick &&
		state.Pollution < cfg.WinPollutionThreshold &&
		state.Vitality >= cfg.WinVitalityThreshold:
		return EndingVictory
	default:
		return EndingRunning
	}
}
