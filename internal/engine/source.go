package engine

// Source is the randomness a game session draws from. It is not safe for
// concurrent use; every game calls it under its own lock.
type Source struct {
	gen  *ByteGenerator
	seed string
}

// NewSource creates a deterministic source for the given seed and stream.
// The same (seed, stream) pair always yields the same draws.
func NewSource(seed, stream string) *Source {
	return &Source{
		gen:  NewByteGenerator(seed, stream, 0, 0),
		seed: seed,
	}
}

// NewRandomSource creates a source seeded from crypto/rand.
func NewRandomSource(stream string) *Source {
	return NewSource(RandomSeed(), stream)
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() string {
	return s.seed
}

// Float64 returns a float in [0, 1).
func (s *Source) Float64() float64 {
	return s.gen.NextFloat()
}

// Intn returns an int in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn called with n <= 0")
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		// guards against float rounding at the upper edge
		i = n - 1
	}
	return i
}

// IntRange returns an int in [lo, hi).
func (s *Source) IntRange(lo, hi int) int {
	return lo + s.Intn(hi-lo)
}

// Pick returns a uniformly chosen element of xs. xs must not be empty.
func Pick[T any](s *Source, xs []T) T {
	return xs[s.Intn(len(xs))]
}

// Shuffle permutes xs in place with a Fisher–Yates shuffle.
func Shuffle[T any](s *Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Perm returns a uniformly random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(s, p)
	return p
}
