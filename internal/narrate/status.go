// Package narrate renders engine results for display. It is pure
// formatting: nothing here mutates state or influences a single draw.
package narrate

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/appengine-ltd/trash-tide/internal/game"
)

// VitalityStatus labels the marine-life reading for the stat banner.
func VitalityStatus(vitality int) string {
	switch {
	case vitality >= 80:
		return "Thriving"
	case vitality >= 60:
		return "Healthy"
	case vitality >= 40:
		return "Struggling"
	case vitality >= 20:
		return "Dying"
	default:
		return "Collapsed"
	}
}

// TrustStatus labels the public-trust reading.
func TrustStatus(trust int) string {
	switch {
	case trust >= 80:
		return "Strong"
	case trust >= 60:
		return "Good"
	case trust >= 40:
		return "Weak"
	case trust >= 20:
		return "Poor"
	default:
		return "Critical"
	}
}

// StatReadout is the per-generation banner: the four statistics, the income
// projection with its multipliers, and the pollution growth preview. All
// numbers come from the same engine helpers the drift uses.
func StatReadout(state game.WorldState, cfg game.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Year %d | Treasury: $%s | Pollution: %d%% | Marine Life: %d%% | Trust: %d%%\n",
		state.Tick, humanize.Comma(int64(state.Treasury)), state.Pollution, state.Vitality, state.Trust)
	fmt.Fprintf(&b, "Yearly income: $%s (base $%s x vitality %.1f x trust %.1f)\n",
		humanize.Comma(int64(game.ProjectedIncome(state))),
		humanize.Comma(int64(state.IncomeBase)),
		game.IncomeMultiplier(state.Vitality),
		game.SupportMultiplier(state.Trust))
	fmt.Fprintf(&b, "Ocean: %s | Public mood: %s\n",
		VitalityStatus(state.Vitality), TrustStatus(state.Trust))
	fmt.Fprintf(&b, "Pollution growth: %d%%/year (base %.1f, modifier %+.1f)",
		game.ProjectedGrowth(state, cfg), cfg.BaseGrowth, state.GrowthModifier)

	return b.String()
}

// ConsequenceLine renders a bundle's non-zero deltas as a single signed
// summary, in a fixed field order.
func ConsequenceLine(bundle game.EffectBundle) string {
	if bundle.IsZero() {
		return "No measurable consequences."
	}

	parts := make([]string, 0, 6)
	if bundle.Treasury != 0 {
		parts = append(parts, fmt.Sprintf("Treasury %+d", bundle.Treasury))
	}
	if bundle.Pollution != 0 {
		parts = append(parts, fmt.Sprintf("Pollution %+d%%", bundle.Pollution))
	}
	if bundle.Vitality != 0 {
		parts = append(parts, fmt.Sprintf("Marine Life %+d%%", bundle.Vitality))
	}
	if bundle.Trust != 0 {
		parts = append(parts, fmt.Sprintf("Trust %+d%%", bundle.Trust))
	}
	if bundle.IncomeBase != 0 {
		parts = append(parts, fmt.Sprintf("Income %+d", bundle.IncomeBase))
	}
	if bundle.GrowthRate != 0 {
		parts = append(parts, fmt.Sprintf("Growth Rate %+.1f", bundle.GrowthRate))
	}

	return "Consequences: " + strings.Join(parts, ", ")
}
