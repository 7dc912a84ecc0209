package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Source picks a uniformly random index in [0, n). It is the only random
// capability the game core consumes, injected so forced discards stay
// reproducible in tests and replays.
type Source interface {
	Intn(n int) int
}

type randSource struct {
	r *rand.Rand
}

// FromRand adapts a *rand.Rand to a Source.
func FromRand(r *rand.Rand) Source {
	return &randSource{r: r}
}

func (s *randSource) Intn(n int) int {
	return s.r.IntN(n)
}
