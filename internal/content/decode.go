package content

import (
	"github.com/appengine-ltd/trash-tide/internal/game"
)

// Raw YAML shapes. Effects are decoded through an open mapping so packs can
// carry keys this version does not know about: unknown keys are ignored and
// a non-numeric value for a recognized key is treated as absent. The engine
// only ever sees the closed game.EffectBundle.

type configSpec struct {
	StartTick             int      `yaml:"start_tick"`
	StartTreasury         int      `yaml:"start_treasury"`
	StartPollution        int      `yaml:"start_pollution"`
	StartVitality         int      `yaml:"start_vitality"`
	StartTrust            int      `yaml:"start_trust"`
	StartIncome           int      `yaml:"start_income"`
	BaseGrowth            float64  `yaml:"base_growth"`
	GenerationLength      int      `yaml:"generation_length"`
	EndTick               int      `yaml:"end_tick"`
	WinPollutionThreshold int      `yaml:"win_pollution_threshold"`
	WinVitalityThreshold  int      `yaml:"win_vitality_threshold"`
	GenerationNames       []string `yaml:"generation_names"`
}

func (c configSpec) toConfig() game.Config {
	return game.Config{
		StartTick:             c.StartTick,
		StartTreasury:         c.StartTreasury,
		StartPollution:        c.StartPollution,
		StartVitality:         c.StartVitality,
		StartTrust:            c.StartTrust,
		StartIncome:           c.StartIncome,
		BaseGrowth:            c.BaseGrowth,
		GenerationLength:      c.GenerationLength,
		EndTick:               c.EndTick,
		WinPollutionThreshold: c.WinPollutionThreshold,
		WinVitalityThreshold:  c.WinVitalityThreshold,
		GenerationNames:       c.GenerationNames,
	}
}

type eventsFile struct {
	Events []eventSpec `yaml:"events"`
}

type eventSpec struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Text    string       `yaml:"text"`
	MinTick int          `yaml:"min_tick"`
	MaxTick int          `yaml:"max_tick"`
	Weight  int          `yaml:"weight"`
	Kind    string       `yaml:"kind"`
	Effects effectSpec   `yaml:"effects"`
	Choices []choiceSpec `yaml:"choices"`
}

type choiceSpec struct {
	Label   string     `yaml:"label"`
	Effects effectSpec `yaml:"effects"`
}

func (e eventSpec) toRecord() game.EventRecord {
	record := game.EventRecord{
		ID:      e.ID,
		Name:    e.Name,
		Text:    e.Text,
		MinTick: e.MinTick,
		MaxTick: e.MaxTick,
		Weight:  e.Weight,
		Kind:    game.EventKind(e.Kind),
		Effects: e.Effects.toBundle(),
	}
	for _, choice := range e.Choices {
		record.Choices = append(record.Choices, game.EventChoice{
			Label:   choice.Label,
			Effects: choice.Effects.toBundle(),
		})
	}
	return record
}

type actionsFile struct {
	Actions []actionSpec `yaml:"actions"`
}

type actionSpec struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Desc         string     `yaml:"desc"`
	UnlockTick   int        `yaml:"unlock_tick"`
	MinTrust     int        `yaml:"min_trust"`
	Cost         int        `yaml:"cost"`
	Effects      effectSpec `yaml:"effects"`
	Repeatable   bool       `yaml:"repeatable"`
	NarrativeKey string     `yaml:"narrative_key"`
}

func (a actionSpec) toRecord() game.ActionRecord {
	return game.ActionRecord{
		ID:           a.ID,
		Name:         a.Name,
		Desc:         a.Desc,
		UnlockTick:   a.UnlockTick,
		MinTrust:     a.MinTrust,
		Cost:         a.Cost,
		Effects:      a.Effects.toBundle(),
		Repeatable:   a.Repeatable,
		NarrativeKey: game.NarrativeKey(a.NarrativeKey),
	}
}

type loreFile struct {
	Lore []loreSpec `yaml:"lore"`
}

type loreSpec struct {
	ID     string `yaml:"id"`
	Era    string `yaml:"era"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Weight int    `yaml:"weight"`
}

func (l loreSpec) toRecord() game.LoreDrop {
	return game.LoreDrop{
		ID:     l.ID,
		Era:    game.Era(l.Era),
		Title:  l.Title,
		Text:   l.Text,
		Weight: l.Weight,
	}
}

type reflectionsFile struct {
	Reflections []reflectionSpec `yaml:"reflections"`
}

type reflectionSpec struct {
	ActionID string `yaml:"action_id"`
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
	Neutral  string `yaml:"neutral"`
}

func (r reflectionSpec) toRecord() game.Reflection {
	return game.Reflection{
		ActionID: r.ActionID,
		Positive: r.Positive,
		Negative: r.Negative,
		Neutral:  r.Neutral,
	}
}

type effectSpec map[string]any

func (e effectSpec) toBundle() game.EffectBundle {
	var bundle game.EffectBundle
	for key, value := range e {
		switch key {
		case "treasury":
			bundle.Treasury = intOr(value, bundle.Treasury)
		case "pollution":
			bundle.Pollution = intOr(value, bundle.Pollution)
		case "vitality":
			bundle.Vitality = intOr(value, bundle.Vitality)
		case "trust":
			bundle.Trust = intOr(value, bundle.Trust)
		case "income_base":
			bundle.IncomeBase = intOr(value, bundle.IncomeBase)
		case "growth_rate":
			bundle.GrowthRate = floatOr(value, bundle.GrowthRate)
		}
	}
	return bundle
}

func intOr(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func floatOr(value any, fallback float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return fallback
	}
}
