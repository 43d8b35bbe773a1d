// Package namegen produces procedural display names for entities by
// combining syllable fragments.
package namegen

import (
	"math/rand"
)

var prefixes = []string{
	"Al", "Bel", "Cor", "Dar", "El", "Fen", "Gar", "Hal", "Il", "Jor",
	"Kel", "Lor", "Mar", "Nel", "Or", "Per", "Quin", "Ral", "Sel", "Tor",
	"Ul", "Vel", "Wil", "Xan", "Yor", "Zel", "Bran", "Cas", "Dren", "Fal",
}

var middles = []string{
	"a", "e", "i", "o", "u", "ar", "en", "il", "on", "ur", "ess", "ian",
}

var suffixes = []string{
	"dor", "mir", "ton", "wen", "lyn", "ric", "mas", "vel", "dan", "thas",
	"ra", "na", "li", "ko", "ta", "is", "os", "ia", "ette", "ino",
}

// Generator issues entity names from a shared random source. Names are not
// guaranteed unique; identity comes from the entity's id.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator drawing from the given source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Name returns a fresh display name.
func (g *Generator) Name() string {
	name := prefixes[g.rng.Intn(len(prefixes))]
	if g.rng.Intn(2) == 0 {
		name += middles[g.rng.Intn(len(middles))]
	}
	return name + suffixes[g.rng.Intn(len(suffixes))]
}
