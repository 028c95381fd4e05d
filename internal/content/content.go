// Package content loads and validates the data packs the simulation runs
// on: configuration, events, actions, lore, and reflections. A default pack
// is embedded in the binary; Load reads an external pack directory with the
// same file layout.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/trash-tide/internal/game"
)

//go:embed packs/*.yaml
var defaultPack embed.FS

const (
	configFile      = "config.yaml"
	eventsFileName  = "events.yaml"
	actionsFileName = "actions.yaml"
	loreFileName    = "lore.yaml"
	reflectionsName = "reflections.yaml"
)

// Pack is a fully-decoded, validated content set, immutable once loaded.
type Pack struct {
	Config      game.Config
	Events      []game.EventRecord
	Actions     []game.ActionRecord
	Lore        []game.LoreDrop
	Reflections []game.Reflection
}

// Reflection finds the retrospective for an action id.
func (p Pack) Reflection(actionID string) (game.Reflection, bool) {
	for _, r := range p.Reflections {
		if r.ActionID == actionID {
			return r, true
		}
	}
	return game.Reflection{}, false
}

// Default returns the embedded content pack.
func Default() (Pack, error) {
	sub, err := fs.Sub(defaultPack, "packs")
	if err != nil {
		return Pack{}, fmt.Errorf("embedded pack: %w", err)
	}
	return loadFS(sub)
}

// Load reads a pack from an external directory.
func Load(dir string) (Pack, error) {
	return loadFS(os.DirFS(dir))
}

// Decode reads a pack from a directory without validating it, for tools
// that want to report every violation rather than fail on the first.
func Decode(dir string) (Pack, error) {
	return decodeFS(os.DirFS(dir))
}

func loadFS(fsys fs.FS) (Pack, error) {
	pack, err := decodeFS(fsys)
	if err != nil {
		return Pack{}, err
	}
	if issues := Validate(pack); len(issues) > 0 {
		return Pack{}, fmt.Errorf("invalid content pack: %w", issues.Join())
	}
	return pack, nil
}

func decodeFS(fsys fs.FS) (Pack, error) {
	var pack Pack

	var cfg configSpec
	if err := decodeFile(fsys, configFile, &cfg); err != nil {
		return Pack{}, err
	}
	pack.Config = cfg.toConfig()

	var events eventsFile
	if err := decodeFile(fsys, eventsFileName, &events); err != nil {
		return Pack{}, err
	}
	for _, spec := range events.Events {
		pack.Events = append(pack.Events, spec.toRecord())
	}

	var actions actionsFile
	if err := decodeFile(fsys, actionsFileName, &actions); err != nil {
		return Pack{}, err
	}
	for _, spec := range actions.Actions {
		pack.Actions = append(pack.Actions, spec.toRecord())
	}

	var lore loreFile
	if err := decodeFile(fsys, loreFileName, &lore); err != nil {
		return Pack{}, err
	}
	for _, spec := range lore.Lore {
		pack.Lore = append(pack.Lore, spec.toRecord())
	}

	var reflections reflectionsFile
	if err := decodeFile(fsys, reflectionsName, &reflections); err != nil {
		return Pack{}, err
	}
	for _, spec := range reflections.Reflections {
		pack.Reflections = append(pack.Reflections, spec.toRecord())
	}

	return pack, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
