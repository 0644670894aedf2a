package drawer

import "math/rand/v2"

// pcgStream is the fixed PCG stream selector; only the seed varies between draws.
const pcgStream = 0x9e3779b97f4a7c15

// Source is the randomness a draw consumes. *rand.Rand satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

var _ Source = (*rand.Rand)(nil)

// NewSource returns a PCG generator for the given seed.
// A nil seed picks a fresh random one; the seed actually used is returned so the draw can be replayed.
func NewSource(seed *int64) (*rand.Rand, int64) {
	s := rand.Int64()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(uint64(s), pcgStream)), s
}

func shuffle[T any](src Source, s []T) {
	src.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
