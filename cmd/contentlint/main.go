// Command contentlint validates a content pack directory and reports every
// violation at once, so pack authors can fix a whole file in one pass.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/trash-tide/internal/content"
	"github.com/appengine-ltd/trash-tide/internal/game"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <pack-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	pack, err := content.Decode(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	issues := content.Validate(pack)
	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  %v\n", issue)
		}
		fmt.Fprintf(os.Stderr, "%s: %d violation(s)\n", dir, len(issues))
		os.Exit(1)
	}

	fmt.Printf("%s: ok (%d events, %d actions, %d lore drops, %d reflections)\n",
		dir, len(pack.Events), len(pack.Actions), len(pack.Lore), len(pack.Reflections))
	warnCoverage(pack)
}

// warnCoverage flags content gaps that are legal but probably unintended.
func warnCoverage(pack content.Pack) {
	reflected := map[string]bool{}
	for _, r := range pack.Reflections {
		reflected[r.ActionID] = true
	}
	for _, action := range pack.Actions {
		if !reflected[action.ID] {
			fmt.Printf("warning: action %q has no reflection; generation reports will skip it\n", action.ID)
		}
	}

	loreEras := map[game.Era]bool{}
	for _, drop := range pack.Lore {
		loreEras[drop.Era] = true
	}
	for _, era := range game.Eras() {
		if !loreEras[era] {
			fmt.Printf("warning: no lore for the %s era\n", era)
		}
	}
}
