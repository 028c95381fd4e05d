package narrate

import (
	"fmt"

	"github.com/appengine-ltd/trash-tide/internal/game"
)

// EndingNarrative renders the closing text for a terminal verdict. Asking
// for a narrative outside the four defined endings is a programming defect,
// not bad content, so it panics rather than degrading.
func EndingNarrative(ending game.Ending) string {
	switch ending {
	case game.EndingCollapse:
		return `THE SILENT DEPTHS

The once-teeming waters have been emptied of life. The food chain has
collapsed, the fishing quarters stand abandoned, and the ocean's song has
gone quiet. The council strips the guardian of the title; the currents
carry the name only in shame.`
	case game.EndingToxicSeas:
		return `THE POISONED REALM

The water can no longer carry life. What once sustained the floating cities
now poisons everything it touches. The drifts have won, and the guardians
watch from the towers as the surface world learns to live with a dead sea.`
	case game.EndingUprising:
		return `THE PEOPLE'S REVOLT

The citizens stopped waiting for the council to listen. The guardianship is
overthrown and its diary cast into the harbor; whether the new leaders can
undo the damage is no longer the old guardian's question to answer. A
guardian who loses the people's trust is no guardian at all.`
	case game.EndingVictory:
		return `THE ETERNAL GUARDIAN

The water runs clear, the shoals are loud again, and the cities prosper on
a living sea. The council grants the highest honor it holds, and the choirs
add a verse with the guardian's name in it. The balance held because
someone chose, year after year, to hold it.`
	default:
		panic(fmt.Sprintf("no ending narrative for verdict %q", ending))
	}
}
