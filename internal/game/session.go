package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	// ErrSessionEnded is returned when a call arrives after a terminal verdict.
	ErrSessionEnded = errors.New("session has ended")
	// ErrNoPendingEvent is returned by ResolveEvent without a prior DrawEvent.
	ErrNoPendingEvent = errors.New("no event drawn")
	// ErrNoOffer is returned by ChooseAction or Wait without an open offer.
	ErrNoOffer = errors.New("no actions offered")
	// ErrIneligibleChoice rejects an event choice index outside the event's choices.
	ErrIneligibleChoice = errors.New("ineligible event choice")
	// ErrIneligibleAction rejects an action index outside the current offer.
	ErrIneligibleAction = errors.New("ineligible action selection")
)

// Session owns one run end-to-end: the world state, the immutable catalogs,
// and the single seeded generator every random draw funnels through. Same
// seed plus same call sequence reproduces an identical run.
type Session struct {
	cfg     Config
	events  []EventRecord
	actions []ActionRecord
	lore    []LoreDrop

	seed  int64
	rng   *rand.Rand
	state WorldState

	generation   int
	pendingEvent *EventRecord
	offer        []ActionRecord
	offerOpen    bool
	verdict      Ending
}

// NewSession validates the config and builds a run. A zero seed picks one
// from the wall clock, matching a casual "just play" start.
func NewSession(cfg Config, events []EventRecord, actions []ActionRecord, lore []LoreDrop, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Session{
		cfg:     cfg,
		events:  events,
		actions: actions,
		lore:    lore,
		seed:    seed,
		rng:     seededRNG(seed),
		state:   NewWorldState(cfg),
		verdict: EndingRunning,
	}, nil
}

func (s *Session) Seed() int64    { return s.seed }
func (s *Session) Config() Config { return s.cfg }

// Generation is the zero-based index of the current generation.
func (s *Session) Generation() int { return s.generation }

func (s *Session) Era() Era { return EraForGeneration(s.generation) }

// State returns a display-safe snapshot of the world.
func (s *Session) State() WorldState { return s.state.Snapshot() }

// Verdict re-evaluates the ending conditions. Once terminal, the verdict is
// pinned and every mutating call fails with ErrSessionEnded.
func (s *Session) Verdict() Ending {
	if s.verdict.Terminal() {
		return s.verdict
	}
	s.verdict = CheckEnding(s.state, s.cfg)
	return s.verdict
}

// DrawLore picks a weighted lore drop for the current era, or nil when the
// era has none.
func (s *Session) DrawLore() *LoreDrop {
	eraLore := make([]LoreDrop, 0, len(s.lore))
	for _, drop := range s.lore {
		if drop.Era == s.Era() {
			eraLore = append(eraLore, drop)
		}
	}
	drop, ok := drawWeighted(s.rng, eraLore, func(d LoreDrop) int { return d.Weight })
	if !ok {
		return nil
	}
	return &drop
}

// DrawEvent picks this generation's event, weighted among the events whose
// tick range contains the current tick. Returns nil when nothing is eligible
// or the session has ended; otherwise the event is pending until resolved.
func (s *Session) DrawEvent() *EventRecord {
	if s.Verdict().Terminal() {
		return nil
	}

	event, ok := drawWeighted(s.rng, EligibleEvents(s.events, s.state.Tick), func(e EventRecord) int { return e.Weight })
	if !ok {
		s.pendingEvent = nil
		return nil
	}
	s.pendingEvent = &event
	return &event
}

// EventResult reports what a resolved event did, for display.
type EventResult struct {
	Event       EventRecord
	Choice      int
	ChoiceLabel string
	Effects     EffectBundle
}

// ResolveEvent applies the pending event. Automatic events take choice -1;
// interactive events take an index into Choices and apply that branch
// instead of the base effects. An out-of-range choice is rejected before any
// state changes.
func (s *Session) ResolveEvent(choice int) (EventResult, error) {
	if s.Verdict().Terminal() {
		return EventResult{}, ErrSessionEnded
	}
	if s.pendingEvent == nil {
		return EventResult{}, ErrNoPendingEvent
	}

	event := *s.pendingEvent
	result := EventResult{Event: event, Choice: choice}

	switch event.Kind {
	case EventInteractive:
		if choice < 0 || choice >= len(event.Choices) {
			return EventResult{}, fmt.Errorf("%w: choice %d of %d for event %s", ErrIneligibleChoice, choice, len(event.Choices), event.ID)
		}
		result.ChoiceLabel = event.Choices[choice].Label
		result.Effects = event.Choices[choice].Effects
	default:
		if choice != -1 {
			return EventResult{}, fmt.Errorf("%w: event %s is automatic", ErrIneligibleChoice, event.ID)
		}
		result.Effects = event.Effects
	}

	ApplyEffects(&s.state, result.Effects)
	s.state.LastEvent = event.Name
	s.state.LastEventChoice = result.ChoiceLabel
	s.pendingEvent = nil

	return result, nil
}

// YearReport is one year of drift plus the post-drift readings, for the
// diary's year-by-year lines.
type YearReport struct {
	Tick            int
	PollutionGrowth int
	VitalityDecline int
	Income          int
	Pollution       int
	Vitality        int
	Trust           int
	Treasury        int
}

// AdvanceGeneration runs one year of drift per configured generation year,
// advancing the tick with each. It stops early if a year leaves the world in
// a terminal state; the reports cover only the years that ran.
func (s *Session) AdvanceGeneration() []YearReport {
	if s.Verdict().Terminal() {
		return nil
	}

	reports := make([]YearReport, 0, s.cfg.GenerationLength)
	for year := 0; year < s.cfg.GenerationLength; year++ {
		drift := ApplyYearlyDrift(&s.state, s.cfg)
		s.state.Tick++

		reports = append(reports, YearReport{
			Tick:            s.state.Tick,
			PollutionGrowth: drift.PollutionGrowth,
			VitalityDecline: drift.VitalityDecline,
			Income:          drift.Income,
			Pollution:       s.state.Pollution,
			Vitality:        s.state.Vitality,
			Trust:           s.state.Trust,
			Treasury:        s.state.Treasury,
		})

		if CheckEnding(s.state, s.cfg).Terminal() {
			break
		}
	}
	s.generation++

	return reports
}

// OfferActions computes the eligible decrees and, past five, samples a
// uniform five without replacement. The offer stays open until the caller
// chooses or waits, and indexes into it are validated against exactly what
// was returned here.
func (s *Session) OfferActions() []ActionRecord {
	if s.Verdict().Terminal() {
		return nil
	}

	eligible := EligibleActions(s.actions, s.state)
	if len(eligible) > MaxOfferedActions {
		sampled := make([]ActionRecord, 0, MaxOfferedActions)
		for _, idx := range s.rng.Perm(len(eligible))[:MaxOfferedActions] {
			sampled = append(sampled, eligible[idx])
		}
		eligible = sampled
	}

	s.offer = eligible
	s.offerOpen = true

	out := make([]ActionRecord, len(eligible))
	copy(out, eligible)
	return out
}

// ActionResult reports an enacted decree, for display.
type ActionResult struct {
	Action  ActionRecord
	Effects EffectBundle
}

// ChooseAction enacts the offered decree at index i: deduct its cost, apply
// its effects, and retire it for the rest of the run unless repeatable. The
// index is checked against the open offer before anything mutates.
func (s *Session) ChooseAction(i int) (ActionResult, error) {
	if s.Verdict().Terminal() {
		return ActionResult{}, ErrSessionEnded
	}
	if !s.offerOpen {
		return ActionResult{}, ErrNoOffer
	}
	if i < 0 || i >= len(s.offer) {
		return ActionResult{}, fmt.Errorf("%w: index %d of %d offered", ErrIneligibleAction, i, len(s.offer))
	}

	action := s.offer[i]
	s.state.Treasury -= action.Cost
	ApplyEffects(&s.state, action.Effects)
	if !action.Repeatable {
		s.state.UsedActionIDs[action.ID] = true
	}
	s.state.LastActionID = action.ID
	s.state.LastAction = action.Name
	s.state.LastActionEffects = action.Effects
	s.offer = nil
	s.offerOpen = false

	return ActionResult{Action: action, Effects: action.Effects}, nil
}

// Wait declines the open offer. The action audit fields are cleared so the
// next generation report does not replay a stale decree.
func (s *Session) Wait() error {
	if s.Verdict().Terminal() {
		return ErrSessionEnded
	}
	if !s.offerOpen {
		return ErrNoOffer
	}

	s.state.LastActionID = ""
	s.state.LastAction = ""
	s.state.LastActionEffects = EffectBundle{}
	s.offer = nil
	s.offerOpen = false
	return nil
}
