package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/trash-tide/internal/content"
	"github.com/appengine-ltd/trash-tide/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	pack, err := content.Default()
	if err != nil {
		fatal(err)
	}

	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateEventsDoc(pack),
		generateActionsDoc(pack),
		generateLoreDoc(pack),
		generateConfigDoc(pack),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Content Catalogs\n\n")
	b.WriteString("Generated from the embedded content pack using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateEventsDoc(pack content.Pack) docFile {
	items := append([]game.EventRecord(nil), pack.Events...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].MinTick != items[j].MinTick {
			return items[i].MinTick < items[j].MinTick
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# World Events\n\n")
	b.WriteString("Source: `internal/content/packs/events.yaml`.\n\n")
	b.WriteString(fmt.Sprintf("Total events: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Years | Weight | Kind | Effects | Choices |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, e := range items {
		choices := make([]string, 0, len(e.Choices))
		for _, c := range e.Choices {
			choices = append(choices, fmt.Sprintf("%s (%s)", c.Label, formatEffects(c.Effects)))
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %d-%d | %d | %s | %s | %s |\n",
			escape(e.ID), escape(e.Name), e.MinTick, e.MaxTick, e.Weight,
			escape(string(e.Kind)), escape(formatEffects(e.Effects)),
			escape(strings.Join(choices, "; "))))
	}

	return docFile{Name: "events.md", Title: "World Events", Content: b.String()}
}

func generateActionsDoc(pack content.Pack) docFile {
	items := append([]game.ActionRecord(nil), pack.Actions...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].UnlockTick != items[j].UnlockTick {
			return items[i].UnlockTick < items[j].UnlockTick
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Guardian Decrees\n\n")
	b.WriteString("Source: `internal/content/packs/actions.yaml`.\n\n")
	b.WriteString(fmt.Sprintf("Total decrees: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Unlock Year | Min Trust | Cost | Repeatable | Key | Effects |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, a := range items {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %d%% | $%d | %s | %s | %s |\n",
			escape(a.ID), escape(a.Name), a.UnlockTick, a.MinTrust, a.Cost,
			yesNo(a.Repeatable), escape(string(a.NarrativeKey)), escape(formatEffects(a.Effects))))
	}

	return docFile{Name: "actions.md", Title: "Guardian Decrees", Content: b.String()}
}

func generateLoreDoc(pack content.Pack) docFile {
	items := append([]game.LoreDrop(nil), pack.Lore...)
	eraRank := map[game.Era]int{}
	for i, era := range game.Eras() {
		eraRank[era] = i
	}
	sort.Slice(items, func(i, j int) bool {
		if eraRank[items[i].Era] != eraRank[items[j].Era] {
			return eraRank[items[i].Era] < eraRank[items[j].Era]
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Lore Drops\n\n")
	b.WriteString("Source: `internal/content/packs/lore.yaml`.\n\n")
	b.WriteString(fmt.Sprintf("Total drops: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Era | Title | Weight |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, d := range items {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %d |\n",
			escape(d.ID), escape(string(d.Era)), escape(d.Title), d.Weight))
	}

	return docFile{Name: "lore.md", Title: "Lore Drops", Content: b.String()}
}

func generateConfigDoc(pack content.Pack) docFile {
	cfg := pack.Config

	var b strings.Builder
	b.WriteString("# Simulation Config\n\n")
	b.WriteString("Source: `internal/content/packs/config.yaml`.\n\n")
	b.WriteString("| Setting | Value |\n")
	b.WriteString("| --- | --- |\n")
	b.WriteString(fmt.Sprintf("| Start year | %d |\n", cfg.StartTick))
	b.WriteString(fmt.Sprintf("| Start treasury | $%d |\n", cfg.StartTreasury))
	b.WriteString(fmt.Sprintf("| Start pollution | %d%% |\n", cfg.StartPollution))
	b.WriteString(fmt.Sprintf("| Start marine life | %d%% |\n", cfg.StartVitality))
	b.WriteString(fmt.Sprintf("| Start trust | %d%% |\n", cfg.StartTrust))
	b.WriteString(fmt.Sprintf("| Start income | $%d |\n", cfg.StartIncome))
	b.WriteString(fmt.Sprintf("| Base pollution growth | %.1f%%/year |\n", cfg.BaseGrowth))
	b.WriteString(fmt.Sprintf("| Generation length | %d years |\n", cfg.GenerationLength))
	b.WriteString(fmt.Sprintf("| End year | %d |\n", cfg.EndTick))
	b.WriteString(fmt.Sprintf("| Victory pollution threshold | below %d%% |\n", cfg.WinPollutionThreshold))
	b.WriteString(fmt.Sprintf("| Victory marine-life threshold | at least %d%% |\n", cfg.WinVitalityThreshold))
	b.WriteString(fmt.Sprintf("| Generation names | %s |\n", escape(strings.Join(cfg.GenerationNames, ", "))))

	return docFile{Name: "config.md", Title: "Simulation Config", Content: b.String()}
}

func formatEffects(bundle game.EffectBundle) string {
	parts := make([]string, 0, 6)
	if bundle.Treasury != 0 {
		parts = append(parts, fmt.Sprintf("treasury %+d", bundle.Treasury))
	}
	if bundle.Pollution != 0 {
		parts = append(parts, fmt.Sprintf("pollution %+d", bundle.Pollution))
	}
	if bundle.Vitality != 0 {
		parts = append(parts, fmt.Sprintf("vitality %+d", bundle.Vitality))
	}
	if bundle.Trust != 0 {
		parts = append(parts, fmt.Sprintf("trust %+d", bundle.Trust))
	}
	if bundle.IncomeBase != 0 {
		parts = append(parts, fmt.Sprintf("income %+d", bundle.IncomeBase))
	}
	if bundle.GrowthRate != 0 {
		parts = append(parts, fmt.Sprintf("growth %+.1f", bundle.GrowthRate))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
