package narrate

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/trash-tide/internal/game"
)

// DiaryHeader opens a generation's diary entry with its name and the years
// it will steward.
func DiaryHeader(generation int, cfg game.Config, tick int) string {
	name := cfg.GenerationName(generation)
	return fmt.Sprintf("DIARY ENTRY - GENERATION %d\n%s (years %d-%d)",
		generation+1, name, tick+1, tick+cfg.GenerationLength)
}

// LoreLine renders a lore drop, or nothing for a nil drop.
func LoreLine(drop *game.LoreDrop) string {
	if drop == nil {
		return ""
	}
	return fmt.Sprintf("%s\n%s", drop.Title, drop.Text)
}

// EventLine renders a resolved event with its consequences.
func EventLine(result game.EventResult) string {
	var b strings.Builder
	if result.Event.Kind == game.EventInteractive {
		fmt.Fprintf(&b, "CRISIS: %s\n", result.Event.Name)
		fmt.Fprintf(&b, "%s\n", result.Event.Text)
		fmt.Fprintf(&b, "The guardian chose: %s\n", result.ChoiceLabel)
	} else {
		fmt.Fprintf(&b, "WORLD EVENT: %s\n", result.Event.Name)
		fmt.Fprintf(&b, "%s\n", result.Event.Text)
	}
	b.WriteString(ConsequenceLine(result.Effects))
	return b.String()
}

// YearLine is the one-line drift summary for a simulated year.
func YearLine(report game.YearReport) string {
	line := fmt.Sprintf("Year %d: Pollution %d%%, Marine Life %d%%, Trust %d%%, Treasury $%d (+$%d)",
		report.Tick, report.Pollution, report.Vitality, report.Trust, report.Treasury, report.Income)
	if report.VitalityDecline >= 5 {
		line += "\n  The ocean's suffering is felt in every market stall."
	}
	return line
}

// Tone classifies a decree's effects for reflection selection: does the
// bundle help the water or hurt it.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// ToneOf scores a bundle by its environmental swing. Treasury and income
// are deliberately excluded: a profitable decree that fouls the water reads
// as a failure in the diary.
func ToneOf(bundle game.EffectBundle) Tone {
	score := bundle.Vitality + bundle.Trust - bundle.Pollution
	switch {
	case bundle.GrowthRate < 0:
		score += 2
	case bundle.GrowthRate > 0:
		score -= 2
	}

	switch {
	case score > 0:
		return TonePositive
	case score < 0:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

// Reflect picks the reflection line matching the decree's tone.
func Reflect(reflection game.Reflection, bundle game.EffectBundle) string {
	switch ToneOf(bundle) {
	case TonePositive:
		return reflection.Positive
	case ToneNegative:
		return reflection.Negative
	default:
		return reflection.Neutral
	}
}

// KeyLine is the diary framing for a decree's narrative category.
func KeyLine(key game.NarrativeKey) string {
	switch key {
	case game.KeyRegulation:
		return "The new rules are read aloud in every harbor office."
	case game.KeyCleanup:
		return "Work crews put out with the dawn tide."
	case game.KeyDiplomacy:
		return "Envoys carry the guardian's seal between the cities."
	case game.KeyEconomy:
		return "The counting houses adjust their ledgers."
	case game.KeyTechnology:
		return "The engineers' quarter burns its lamps late into the night."
	case game.KeyConservation:
		return "The wardens mark new waters where no nets may follow."
	default:
		return ""
	}
}

// GenerationReport looks back on the previous generation: the event that
// marked it and the decree it enacted, framed by the decree's narrative key
// with its reflection chosen by tone. The caller resolves action and
// reflection from the audited record id; display text is never matched.
func GenerationReport(state game.WorldState, action *game.ActionRecord, reflection *game.Reflection) string {
	var b strings.Builder
	b.WriteString("GENERATION REPORT\n")

	if state.LastEvent != "" {
		fmt.Fprintf(&b, "Major event: %s", state.LastEvent)
		if state.LastEventChoice != "" {
			fmt.Fprintf(&b, " (the guardian chose: %s)", state.LastEventChoice)
		}
		b.WriteString("\n")
	}

	if action == nil {
		b.WriteString("The previous generation held to the status quo; no decree was issued.")
		return b.String()
	}

	fmt.Fprintf(&b, "Decree enacted: %s\n", action.Name)
	if line := KeyLine(action.NarrativeKey); line != "" {
		b.WriteString(line + "\n")
	}
	b.WriteString(ConsequenceLine(state.LastActionEffects))
	if reflection != nil {
		b.WriteString("\n")
		b.WriteString(Reflect(*reflection, state.LastActionEffects))
	}
	return b.String()
}

// ActionMenu lists an offer for the prompt, numbered from one, with the
// wait option last.
func ActionMenu(offer []game.ActionRecord) string {
	var b strings.Builder
	b.WriteString("GUARDIAN'S DECISIONS:\n")
	for i, action := range offer {
		cost := " (Free)"
		if action.Cost > 0 {
			cost = fmt.Sprintf(" (Cost: $%d)", action.Cost)
		}
		fmt.Fprintf(&b, "%d. %s%s\n   %s\n", i+1, action.Name, cost, action.Desc)
	}
	fmt.Fprintf(&b, "%d. Wait and observe", len(offer)+1)
	return b.String()
}

// ChoicePrompt lists an interactive event's choices, lettered A through C.
func ChoicePrompt(event game.EventRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CRISIS: %s\n%s\n\nHow do you respond?\n", event.Name, event.Text)
	for i, choice := range event.Choices {
		fmt.Fprintf(&b, "%c. %s\n", 'A'+i, choice.Label)
	}
	return strings.TrimRight(b.String(), "\n")
}
