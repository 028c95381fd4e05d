// Command simulate plays headless runs under a fixed policy and reports the
// ending distribution. It is the balancing tool: content changes are judged
// by how they shift these numbers, not by feel.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/trash-tide/internal/content"
	"github.com/appengine-ltd/trash-tide/internal/game"
	"github.com/appengine-ltd/trash-tide/internal/platform/config"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		fatal(err)
	}

	var (
		runs       int
		seed       int64
		policyName string
		contentDir string
	)
	flag.IntVar(&runs, "runs", 200, "number of runs to simulate")
	flag.Int64Var(&seed, "seed", env.Seed, "base seed; run n plays with seed+n (0 picks from the clock)")
	flag.StringVar(&policyName, "policy", "cleanup", "guardian policy: cleanup, random, or wait")
	flag.StringVar(&contentDir, "content", env.ContentDir, "external content pack directory (default: embedded pack)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if level, err := log.ParseLevel(env.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	pack, err := loadPack(contentDir)
	if err != nil {
		fatal(err)
	}

	policy, err := policyFor(policyName)
	if err != nil {
		fatal(err)
	}

	if seed == 0 {
		seed = rand.Int64()
	}
	logger.Info("simulating", "runs", runs, "policy", policyName, "base_seed", seed)

	endings := map[game.Ending]int{}
	totalYears := 0
	for n := 0; n < runs; n++ {
		runSeed := seed + int64(n)
		verdict, years, err := playRun(pack, runSeed, policy)
		if err != nil {
			fatal(fmt.Errorf("run with seed %d: %w", runSeed, err))
		}
		endings[verdict]++
		totalYears += years
		logger.Debug("run finished", "seed", runSeed, "ending", verdict, "years", years)
	}

	logger.Info("done", "mean_years", float64(totalYears)/float64(runs))
	for _, ending := range []game.Ending{
		game.EndingVictory, game.EndingCollapse, game.EndingToxicSeas, game.EndingUprising, game.EndingRunning,
	} {
		count := endings[ending]
		fmt.Printf("%-12s %5d  (%.1f%%)\n", ending, count, 100*float64(count)/float64(runs))
	}
}

// policy answers the two decisions a run asks for: which branch of an
// interactive event, and which offered decree (len(offer) means wait).
type policy struct {
	chooseEvent  func(rng *rand.Rand, event game.EventRecord) int
	chooseAction func(rng *rand.Rand, offer []game.ActionRecord) int
}

func policyFor(name string) (policy, error) {
	switch name {
	case "wait":
		return policy{
			chooseEvent:  func(_ *rand.Rand, _ game.EventRecord) int { return 0 },
			chooseAction: func(_ *rand.Rand, offer []game.ActionRecord) int { return len(offer) },
		}, nil
	case "random":
		return policy{
			chooseEvent: func(rng *rand.Rand, event game.EventRecord) int {
				return rng.IntN(len(event.Choices))
			},
			chooseAction: func(rng *rand.Rand, offer []game.ActionRecord) int {
				return rng.IntN(len(offer) + 1)
			},
		}, nil
	case "cleanup":
		return policy{
			chooseEvent: func(_ *rand.Rand, event game.EventRecord) int {
				best, bestScore := 0, greenScore(event.Choices[0].Effects)
				for i, choice := range event.Choices[1:] {
					if score := greenScore(choice.Effects); score > bestScore {
						best, bestScore = i+1, score
					}
				}
				return best
			},
			chooseAction: func(_ *rand.Rand, offer []game.ActionRecord) int {
				best, bestScore := len(offer), 0
				for i, action := range offer {
					if score := greenScore(action.Effects); score > bestScore {
						best, bestScore = i, score
					}
				}
				return best
			},
		}, nil
	default:
		return policy{}, fmt.Errorf("unknown policy %q", name)
	}
}

// greenScore ranks effects by their environmental swing, the same axis the
// narration layer uses for reflection tone.
func greenScore(bundle game.EffectBundle) int {
	score := bundle.Vitality + bundle.Trust - bundle.Pollution
	switch {
	case bundle.GrowthRate < 0:
		score += 2
	case bundle.GrowthRate > 0:
		score -= 2
	}
	return score
}

func playRun(pack content.Pack, seed int64, p policy) (game.Ending, int, error) {
	session, err := game.NewSession(pack.Config, pack.Events, pack.Actions, pack.Lore, seed)
	if err != nil {
		return "", 0, err
	}
	// Policy randomness is independent of the session's draw stream, so the
	// same seed replays the same world.
	rng := rand.New(rand.NewPCG(uint64(seed), ^uint64(seed)))

	// A run that never meets the victory thresholds keeps going past the end
	// tick until a losing condition lands; cap it so a stalemate pack cannot
	// hang the simulator.
	const maxGenerations = 400
	for gen := 0; gen < maxGenerations && !session.Verdict().Terminal(); gen++ {
		if event := session.DrawEvent(); event != nil {
			choice := -1
			if event.Kind == game.EventInteractive {
				choice = p.chooseEvent(rng, *event)
			}
			if _, err := session.ResolveEvent(choice); err != nil {
				return "", 0, err
			}
		}
		if session.Verdict().Terminal() {
			break
		}

		session.AdvanceGeneration()
		if session.Verdict().Terminal() {
			break
		}

		offer := session.OfferActions()
		if len(offer) == 0 {
			continue
		}
		pick := p.chooseAction(rng, offer)
		if pick >= len(offer) {
			if err := session.Wait(); err != nil {
				return "", 0, err
			}
			continue
		}
		if _, err := session.ChooseAction(pick); err != nil {
			return "", 0, err
		}
	}

	years := session.State().Tick - pack.Config.StartTick
	return session.Verdict(), years, nil
}

func loadPack(dir string) (content.Pack, error) {
	if dir == "" {
		return content.Default()
	}
	return content.Load(dir)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
