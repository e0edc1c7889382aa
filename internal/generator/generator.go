// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws random words for a passage.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sample selects count distinct positions of words uniformly at random.
// count is clamped to len(words).
func (g *Generator) Sample(words []string, count int) []string {
	if count > len(words) {
		count = len(words)
	}
	if count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for _, idx := range g.rnd.Perm(len(words))[:count] {
		result = append(result, words[idx])
	}
	return result
}
