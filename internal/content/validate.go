package content

import (
	"errors"
	"fmt"
	"slices"

	"github.com/appengine-ltd/trash-tide/internal/game"
)

// Issues collects every violation found in a pack so authors can fix a
// whole file in one pass instead of replaying load errors one at a time.
type Issues []error

func (i Issues) Join() error {
	return errors.Join(i...)
}

// Validate checks a decoded pack against the engine's content contract.
func Validate(pack Pack) Issues {
	var issues Issues

	if err := pack.Config.Validate(); err != nil {
		issues = append(issues, fmt.Errorf("config: %w", err))
	}

	eras := game.Eras()
	keys := game.NarrativeKeys()

	seenEvents := map[string]bool{}
	for _, event := range pack.Events {
		where := fmt.Sprintf("event %q", event.ID)
		if event.ID == "" {
			issues = append(issues, fmt.Errorf("event with empty id (name %q)", event.Name))
		}
		if seenEvents[event.ID] {
			issues = append(issues, fmt.Errorf("%s: duplicate id", where))
		}
		seenEvents[event.ID] = true
		if event.Name == "" {
			issues = append(issues, fmt.Errorf("%s: empty name", where))
		}
		if event.Weight <= 0 {
			issues = append(issues, fmt.Errorf("%s: weight must be positive, got %d", where, event.Weight))
		}
		if event.MaxTick < event.MinTick {
			issues = append(issues, fmt.Errorf("%s: tick range [%d,%d] is inverted", where, event.MinTick, event.MaxTick))
		}
		switch event.Kind {
		case game.EventAutomatic:
			if len(event.Choices) != 0 {
				issues = append(issues, fmt.Errorf("%s: automatic events cannot carry choices", where))
			}
		case game.EventInteractive:
			if len(event.Choices) < 1 || len(event.Choices) > 3 {
				issues = append(issues, fmt.Errorf("%s: interactive events need 1 to 3 choices, got %d", where, len(event.Choices)))
			}
			for i, choice := range event.Choices {
				if choice.Label == "" {
					issues = append(issues, fmt.Errorf("%s: choice %d has no label", where, i))
				}
			}
		default:
			issues = append(issues, fmt.Errorf("%s: unknown kind %q", where, event.Kind))
		}
	}

	seenActions := map[string]bool{}
	for _, action := range pack.Actions {
		where := fmt.Sprintf("action %q", action.ID)
		if action.ID == "" {
			issues = append(issues, fmt.Errorf("action with empty id (name %q)", action.Name))
		}
		if seenActions[action.ID] {
			issues = append(issues, fmt.Errorf("%s: duplicate id", where))
		}
		seenActions[action.ID] = true
		if action.Name == "" {
			issues = append(issues, fmt.Errorf("%s: empty name", where))
		}
		if action.Cost < 0 {
			issues = append(issues, fmt.Errorf("%s: cost must be non-negative, got %d", where, action.Cost))
		}
		if action.MinTrust < 0 || action.MinTrust > 100 {
			issues = append(issues, fmt.Errorf("%s: min trust must be within [0,100], got %d", where, action.MinTrust))
		}
		if !slices.Contains(keys, action.NarrativeKey) {
			issues = append(issues, fmt.Errorf("%s: unknown narrative key %q", where, action.NarrativeKey))
		}
	}

	seenLore := map[string]bool{}
	for _, drop := range pack.Lore {
		where := fmt.Sprintf("lore %q", drop.ID)
		if drop.ID == "" {
			issues = append(issues, fmt.Errorf("lore with empty id (title %q)", drop.Title))
		}
		if seenLore[drop.ID] {
			issues = append(issues, fmt.Errorf("%s: duplicate id", where))
		}
		seenLore[drop.ID] = true
		if drop.Weight <= 0 {
			issues = append(issues, fmt.Errorf("%s: weight must be positive, got %d", where, drop.Weight))
		}
		if !slices.Contains(eras, drop.Era) {
			issues = append(issues, fmt.Errorf("%s: unknown era %q", where, drop.Era))
		}
	}

	for _, reflection := range pack.Reflections {
		if !seenActions[reflection.ActionID] {
			issues = append(issues, fmt.Errorf("reflection for unknown action %q", reflection.ActionID))
		}
	}

	return issues
}
