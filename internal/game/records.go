package game

import (
	"fmt"
)

type EventKind string

const (
	EventAutomatic   EventKind = "automatic"
	EventInteractive EventKind = "interactive"
)

// NarrativeKey categorises a decree for the narration layer. Reports key off
// this field, never off display text.
type NarrativeKey string

const (
	KeyRegulation   NarrativeKey = "regulation"
	KeyCleanup      NarrativeKey = "cleanup"
	KeyDiplomacy    NarrativeKey = "diplomacy"
	KeyEconomy      NarrativeKey = "economy"
	KeyTechnology   NarrativeKey = "technology"
	KeyConservation NarrativeKey = "conservation"
)

func NarrativeKeys() []NarrativeKey {
	return []NarrativeKey{
		KeyRegulation,
		KeyCleanup,
		KeyDiplomacy,
		KeyEconomy,
		KeyTechnology,
		KeyConservation,
	}
}

// EventRecord is a world event valid for ticks in [MinTick, MaxTick]
// inclusive. Weight sets its share of the draw within that range. Interactive
// events carry one to three choices and apply the chosen branch instead of
// the base effects.
type EventRecord struct {
	ID      string
	Name    string
	Text    string
	MinTick int
	MaxTick int
	Weight  int
	Kind    EventKind
	Effects EffectBundle
	Choices []EventChoice
}

type EventChoice struct {
	Label   string
	Effects EffectBundle
}

// ActionRecord is a decree the guardian may enact once the unlock tick,
// trust requirement, and cost are all met. Non-repeatable actions may be
// enacted at most once per run.
type ActionRecord struct {
	ID           string
	Name         string
	Desc         string
	UnlockTick   int
	MinTrust     int
	Cost         int
	Effects      EffectBundle
	Repeatable   bool
	NarrativeKey NarrativeKey
}

// LoreDrop is flavor text drawn per generation, weighted within its era.
type LoreDrop struct {
	ID     string
	Era    Era
	Title  string
	Text   string
	Weight int
}

// Reflection is the retrospective text for a decree, keyed by action id.
// The narration layer picks one of the three tones from the decree's effects.
type Reflection struct {
	ActionID string
	Positive string
	Negative string
	Neutral  string
}

type Config struct {
	StartTick             int
	StartTreasury         int
	StartPollution        int
	StartVitality         int
	StartTrust            int
	StartIncome           int
	BaseGrowth            float64
	GenerationLength      int
	EndTick               int
	WinPollutionThreshold int
	WinVitalityThreshold  int
	GenerationNames       []string
}

func (c Config) Validate() error {
	if c.GenerationLength <= 0 {
		return fmt.Errorf("generation length must be positive, got %d", c.GenerationLength)
	}
	if c.EndTick <= c.StartTick {
		return fmt.Errorf("end tick %d must be after start tick %d", c.EndTick, c.StartTick)
	}
	if c.StartTreasury < 0 || c.StartIncome < 0 {
		return fmt.Errorf("start treasury and income must be non-negative")
	}
	for name, v := range map[string]int{
		"start pollution": c.StartPollution,
		"start vitality":  c.StartVitality,
		"start trust":     c.StartTrust,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be within [0,100], got %d", name, v)
		}
	}
	if c.WinPollutionThreshold < 0 || c.WinPollutionThreshold > 100 {
		return fmt.Errorf("win pollution threshold must be within [0,100], got %d", c.WinPollutionThreshold)
	}
	if c.WinVitalityThreshold < 0 || c.WinVitalityThreshold > 100 {
		return fmt.Errorf("win vitality threshold must be within [0,100], got %d", c.WinVitalityThreshold)
	}
	if len(c.GenerationNames) == 0 {
		return fmt.Errorf("at least one generation name is required")
	}
	return nil
}

// GenerationName cycles through the configured names.
func (c Config) GenerationName(generation int) string {
	if len(c.GenerationNames) == 0 {
		return ""
	}
	return c.GenerationNames[generation%len(c.GenerationNames)]
}

type Era string

const (
	EraEarly          Era = "early"
	EraDiscovery      Era = "discovery"
	EraAwakening      Era = "awakening"
	EraTransformation Era = "transformation"
	EraLate           Era = "late"
)

func EraForGeneration(generation int) Era {
	switch {
	case generation < 5:
		return EraEarly
	case generation < 10:
		return EraDiscovery
	case generation < 20:
		return EraAwakening
	case generation < 25:
		return EraTransformation
	default:
		return EraLate
	}
}

func Eras() []Era {
	return []Era{EraEarly, EraDiscovery, EraAwakening, EraTransformation, EraLate}
}
