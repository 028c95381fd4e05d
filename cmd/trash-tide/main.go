package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/trash-tide/internal/content"
	"github.com/appengine-ltd/trash-tide/internal/platform/config"
	"github.com/appengine-ltd/trash-tide/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		fatal(err)
	}

	var (
		showVersion bool
		seed        int64
		contentDir  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", env.Seed, "run seed (0 picks one from the clock)")
	flag.StringVar(&contentDir, "content", env.ContentDir, "external content pack directory (default: embedded pack)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Trash Tide %s (%s) %s\n", version, commit, date)
		return
	}

	pack, err := loadPack(contentDir)
	if err != nil {
		fatal(err)
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Seed:      seed,
		Pack:      pack,
	})

	if err := app.Run(); err != nil {
		fatal(err)
	}
}

func loadPack(dir string) (content.Pack, error) {
	if dir == "" {
		return content.Default()
	}
	return content.Load(dir)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
