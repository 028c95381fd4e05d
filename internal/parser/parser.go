// Package parser turns free-text prompt input into guardian intents. It
// accepts canonical commands, aliases, numbered and lettered picks, and
// fuzzy matches against whatever is currently on offer, so a guardian can
// type "enact the bag ban" instead of hunting for its menu number.
package parser

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type IntentKind int

const (
	Unknown IntentKind = iota
	Command
	Pick
)

// Intent is the parsed meaning of one line of input. For Pick intents,
// Option is a zero-based index into the ParseContext options.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Option     int
	Confidence float64
	Clarify    string
}

// ParseContext carries what is currently selectable: the labels of the
// offered decrees or event choices, in offer order.
type ParseContext struct {
	Options []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
}

type Parser struct {
	commands []commandPhrase
}

type commandPhrase struct {
	canonical string
	alias     string
}

// New builds a parser with the guardian command set.
func New() *Parser {
	p := &Parser{}
	for _, def := range []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands"}},
		{Canonical: "status", Aliases: []string{"stats", "state", "readout"}},
		{Canonical: "continue", Aliases: []string{"next", "go on", "press on"}},
		{Canonical: "wait", Aliases: []string{"observe", "wait and observe", "status quo", "maintain status quo", "do nothing"}},
		{Canonical: "quit", Aliases: []string{"exit", "abdicate"}},
	} {
		p.register(def)
	}
	return p
}

func (p *Parser) register(def CommandDef) {
	canonical := normaliseInput(def.Canonical)
	if canonical == "" {
		return
	}
	p.commands = append(p.commands, commandPhrase{canonical: canonical, alias: canonical})
	for _, alias := range def.Aliases {
		if a := normaliseInput(alias); a != "" {
			p.commands = append(p.commands, commandPhrase{canonical: canonical, alias: a})
		}
	}
}

// Parse resolves one input line. Resolution order: number, single letter,
// command (exact, then fuzzy), then fuzzy option label. Ambiguous or
// unmatched input comes back Unknown with a clarify prompt.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	// Normalisation strips punctuation, so the bare "?" help shortcut is
	// handled before it.
	if strings.TrimSpace(raw) == "?" {
		return Intent{Raw: raw, Normalised: "?", Kind: Command, Verb: "help", Confidence: 1}
	}

	intent := Intent{Raw: raw, Normalised: normaliseInput(raw), Kind: Unknown}
	if intent.Normalised == "" {
		intent.Clarify = "Enter a command, a number, or the name of a decree."
		return intent
	}

	if n, err := strconv.Atoi(intent.Normalised); err == nil {
		if n >= 1 && n <= len(ctx.Options) {
			intent.Kind = Pick
			intent.Option = n - 1
			intent.Confidence = 1
			return intent
		}
		intent.Clarify = "That number is not on the list."
		return intent
	}

	if len(intent.Normalised) == 1 && len(ctx.Options) > 0 {
		idx := int(intent.Normalised[0] - 'a')
		if idx >= 0 && idx < len(ctx.Options) {
			intent.Kind = Pick
			intent.Option = idx
			intent.Confidence = 1
			return intent
		}
	}

	if verb, score := p.matchCommand(intent.Normalised); verb != "" {
		intent.Kind = Command
		intent.Verb = verb
		intent.Confidence = score
		return intent
	}

	if idx, score := matchOption(intent.Normalised, ctx.Options); idx >= 0 {
		intent.Kind = Pick
		intent.Option = idx
		intent.Confidence = score
		return intent
	}

	intent.Clarify = "Not recognised. Try 'help', a number, or a decree name."
	return intent
}

func (p *Parser) matchCommand(normalised string) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, phrase := range p.commands {
		if normalised == phrase.alias {
			score := 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
			if score > bestScore {
				best, bestScore = phrase.canonical, score
			}
			continue
		}
		if len(normalised) < 3 || len(phrase.alias) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(normalised, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - 0.08*float64(dist)
		if score > bestScore {
			best, bestScore = phrase.canonical, score
		}
	}
	if bestScore < 0.5 {
		return "", 0
	}
	return best, bestScore
}

// matchOption scores the input against each offered label: exact match,
// substring containment either way, then edit distance. Returns -1 when
// nothing clears the floor or two options tie.
func matchOption(normalised string, options []string) (int, float64) {
	bestIdx := -1
	bestScore := 0.0
	tied := false

	for i, option := range options {
		label := normaliseInput(option)
		if label == "" {
			continue
		}

		var score float64
		switch {
		case normalised == label:
			score = 1
		case strings.Contains(label, normalised) && len(normalised) >= 4:
			score = 0.85
		case strings.Contains(normalised, label):
			score = 0.8
		default:
			if len(normalised) < 4 {
				continue
			}
			dist := levenshtein.ComputeDistance(normalised, label)
			if dist > levenshteinLimit(len(label)) {
				continue
			}
			score = 0.7 - 0.08*float64(dist)
		}

		if score == bestScore {
			tied = true
		}
		if score > bestScore {
			bestIdx, bestScore, tied = i, score, false
		}
	}

	if bestScore < 0.45 || tied {
		return -1, 0
	}
	return bestIdx, bestScore
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
