package tetris

import "math/rand"

// Draw is one generator result: a shape and an independently chosen color.
type Draw struct {
	Kind  Kind
	Color Color
}

// Generator supplies the piece sequence for a session.
// Implementations own their randomness so sequences are reproducible.
type Generator interface {
	Next() Draw
}

// RandomGenerator picks shapes and colors uniformly at random.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a generator seeded with seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next random draw.
func (g *RandomGenerator) Next() Draw {
	return Draw{
		Kind:  Kind(g.rng.Intn(KindCount)),
		Color: Colors[g.rng.Intn(len(Colors))],
	}
}

// SequenceGenerator replays a fixed list of draws, cycling when exhausted.
type SequenceGenerator struct {
	draws []Draw
	pos   int
}

// NewSequenceGenerator creates a generator over draws. An empty list
// yields I pieces colored cyan.
func NewSequenceGenerator(draws ...Draw) *SequenceGenerator {
	if len(draws) == 0 {
		draws = []Draw{{Kind: KindI, Color: ColorCyan}}
	}
	return &SequenceGenerator{draws: draws}
}

// Kinds is a shorthand for a sequence of shapes colored by their index in Colors.
func Kinds(kinds ...Kind) *SequenceGenerator {
	draws := make([]Draw, len(kinds))
	for i, k := range kinds {
		draws[i] = Draw{Kind: k, Color: Colors[int(k)%len(Colors)]}
	}
	return NewSequenceGenerator(draws...)
}

// Next returns the next draw in the sequence.
func (g *SequenceGenerator) Next() Draw {
	d := g.draws[g.pos]
	g.pos = (g.pos + 1) % len(g.draws)
	return d
}
