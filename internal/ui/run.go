package ui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/trash-tide/internal/content"
	"github.com/appengine-ltd/trash-tide/internal/game"
	"github.com/appengine-ltd/trash-tide/internal/narrate"
	"github.com/appengine-ltd/trash-tide/internal/parser"
)

// phase tracks what the prompt is currently asking for.
type phase int

const (
	phaseContinue phase = iota // any input advances to the next generation
	phaseChoice                // an interactive event awaits A/B/C
	phaseActions               // the decree offer awaits a pick or wait
	phaseEnded                 // terminal verdict shown; enter quits
)

const historyWindow = 28

type runModel struct {
	pack    content.Pack
	session *game.Session
	parse   *parser.Parser

	phase   phase
	offer   []game.ActionRecord
	pending *game.EventRecord

	history []string
	input   string
}

func newRunModel(cfg AppConfig) (*runModel, error) {
	session, err := game.NewSession(cfg.Pack.Config, cfg.Pack.Events, cfg.Pack.Actions, cfg.Pack.Lore, cfg.Seed)
	if err != nil {
		return nil, err
	}

	m := &runModel{
		pack:    cfg.Pack,
		session: session,
		parse:   parser.New(),
		phase:   phaseContinue,
	}
	m.say("You have been chosen to serve as Ocean Guardian.")
	m.say(fmt.Sprintf("Seed %d. Press Enter to begin your guardianship.", session.Seed()))
	return m, nil
}

func (m *runModel) say(lines ...string) {
	for _, line := range lines {
		if line == "" {
			continue
		}
		m.history = append(m.history, strings.Split(line, "\n")...)
	}
	m.history = append(m.history, "")
}

// submit consumes the current input line. Returns true when the player
// asked to quit.
func (m *runModel) submit() bool {
	raw := m.input
	m.input = ""

	intent := m.parse.Parse(parser.ParseContext{Options: m.options()}, raw)
	if intent.Kind == parser.Command {
		switch intent.Verb {
		case "quit":
			return true
		case "help":
			m.say(m.helpText())
			return false
		case "status":
			m.say(narrate.StatReadout(m.session.State(), m.session.Config()))
			return false
		case "wait":
			if m.phase == phaseActions {
				m.resolveWait()
			} else {
				m.say("The years will pass on their own; there is nothing to wait out now.")
			}
			return false
		case "continue":
			if m.phase == phaseContinue {
				m.beginGeneration()
			}
			return false
		}
	}

	switch m.phase {
	case phaseContinue:
		m.beginGeneration()
	case phaseChoice:
		m.resolveChoice(intent)
	case phaseActions:
		m.resolveAction(intent)
	case phaseEnded:
		return true
	}
	return false
}

// options exposes what is currently pickable to the parser.
func (m *runModel) options() []string {
	switch m.phase {
	case phaseChoice:
		if m.pending == nil {
			return nil
		}
		labels := make([]string, 0, len(m.pending.Choices))
		for _, choice := range m.pending.Choices {
			labels = append(labels, choice.Label)
		}
		return labels
	case phaseActions:
		labels := make([]string, 0, len(m.offer)+1)
		for _, action := range m.offer {
			labels = append(labels, action.Name)
		}
		labels = append(labels, "Wait and observe")
		return labels
	default:
		return nil
	}
}

func (m *runModel) beginGeneration() {
	generation := m.session.Generation()
	state := m.session.State()

	m.say(narrate.DiaryHeader(generation, m.session.Config(), state.Tick))
	if drop := m.session.DrawLore(); drop != nil {
		m.say(narrate.LoreLine(drop))
	}
	if generation > 0 {
		action, reflection := m.enactedDecree(state)
		m.say(narrate.GenerationReport(state, action, reflection))
	}
	m.say(narrate.StatReadout(state, m.session.Config()))

	event := m.session.DrawEvent()
	if event == nil {
		m.say("The years pass quietly, with no major events to report.")
		m.runDrift()
		return
	}

	if event.Kind == game.EventInteractive {
		m.pending = event
		m.phase = phaseChoice
		m.say(narrate.ChoicePrompt(*event))
		return
	}

	result, err := m.session.ResolveEvent(-1)
	if err != nil {
		m.say(fmt.Sprintf("The event dissolves into rumor: %v", err))
	} else {
		m.say(narrate.EventLine(result))
	}
	m.runDrift()
}

func (m *runModel) resolveChoice(intent parser.Intent) {
	if intent.Kind != parser.Pick {
		m.say(clarifyOr(intent, "Choose A, B, or C."))
		return
	}

	result, err := m.session.ResolveEvent(intent.Option)
	if err != nil {
		m.say(fmt.Sprintf("That is not one of the choices: %v", err))
		return
	}
	m.pending = nil
	m.say(narrate.EventLine(result))
	m.runDrift()
}

func (m *runModel) runDrift() {
	for _, report := range m.session.AdvanceGeneration() {
		m.say(narrate.YearLine(report))
	}
	if m.checkEnding() {
		return
	}

	m.offer = m.session.OfferActions()
	if len(m.offer) == 0 {
		m.say("No decrees can be issued this generation.")
		m.phase = phaseContinue
		m.say("Press Enter to continue to the next generation.")
		return
	}
	m.phase = phaseActions
	m.say(narrate.ActionMenu(m.offer))
}

func (m *runModel) resolveAction(intent parser.Intent) {
	if intent.Kind != parser.Pick {
		m.say(clarifyOr(intent, "Pick a decree by number or name, or wait."))
		return
	}
	if intent.Option == len(m.offer) {
		m.resolveWait()
		return
	}

	result, err := m.session.ChooseAction(intent.Option)
	if err != nil {
		m.say(fmt.Sprintf("The decree cannot be enacted: %v", err))
		return
	}
	m.offer = nil
	m.say(fmt.Sprintf("Decree enacted: %s", result.Action.Name))
	m.say(narrate.ConsequenceLine(result.Effects))
	m.finishGeneration()
}

func (m *runModel) resolveWait() {
	if err := m.session.Wait(); err != nil {
		m.say(fmt.Sprintf("Waiting is not an option now: %v", err))
		return
	}
	m.offer = nil
	m.say("You choose to maintain the status quo for this generation.")
	m.finishGeneration()
}

func (m *runModel) finishGeneration() {
	if m.checkEnding() {
		return
	}
	m.phase = phaseContinue
	m.say("Press Enter to continue to the next generation.")
}

// checkEnding reports and latches a terminal verdict.
func (m *runModel) checkEnding() bool {
	verdict := m.session.Verdict()
	if !verdict.Terminal() {
		return false
	}
	m.say(narrate.EndingNarrative(verdict))
	m.say(fmt.Sprintf("The guardianship lasted %d years across %d generations. Press Enter to leave the diary.",
		m.session.State().Tick-m.session.Config().StartTick, m.session.Generation()))
	m.phase = phaseEnded
	return true
}

// enactedDecree resolves the audited action id back to its catalog record
// and reflection. Ids, never display names: two decrees may share a name.
func (m *runModel) enactedDecree(state game.WorldState) (*game.ActionRecord, *game.Reflection) {
	if state.LastActionID == "" {
		return nil, nil
	}
	for _, action := range m.pack.Actions {
		if action.ID == state.LastActionID {
			var reflection *game.Reflection
			if r, ok := m.pack.Reflection(action.ID); ok {
				reflection = &r
			}
			return &action, reflection
		}
	}
	return nil, nil
}

func (m *runModel) helpText() string {
	return strings.Join([]string{
		"Commands:",
		"  status        show the world readout",
		"  wait          decline the current decree offer",
		"  help          this text",
		"  quit          abandon the guardianship",
		"Pick decrees by number or name; answer crises with A, B, or C.",
	}, "\n")
}

func clarifyOr(intent parser.Intent, fallback string) string {
	if intent.Clarify != "" {
		return intent.Clarify
	}
	return fallback
}

func (m *runModel) view() string {
	var b strings.Builder

	b.WriteString(brightSea.Render("TRASH TIDE") + dimSea.Render("  esc: menu  ctrl+c: quit"))
	b.WriteString("\n" + border.Render(strings.Repeat("-", 64)) + "\n")

	start := 0
	if len(m.history) > historyWindow {
		start = len(m.history) - historyWindow
	}
	for _, line := range m.history[start:] {
		b.WriteString(seafoam.Render(line) + "\n")
	}

	b.WriteString(border.Render(strings.Repeat("-", 64)) + "\n")
	prompt := "> "
	if m.phase == phaseEnded {
		prompt = alert.Render("The diary closes. ") + "> "
	}
	b.WriteString(prompt + m.input)
	return b.String()
}
