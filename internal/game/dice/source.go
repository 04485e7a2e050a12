package dice

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Source is the randomness provider for all game rolls.
//
// Implementations MUST be safe for sequential reuse; the game core is
// single-threaded and never shares a Source across goroutines.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
//
// Invariant: all values produced are uniformly distributed in [0, n).
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource implements Source with a deterministic PCG generator.
type seededSource struct {
	rng *mathrand.Rand
}

// NewSeededSource returns a deterministic Source for tests and replays.
//
// Postcondition: two sources built from the same seed produce identical
// sequences.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed))}
}

// Intn returns a deterministic random int in [0, n).
//
// Precondition: n > 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.rng.IntN(n)
}

// ScriptedSource replays a fixed list of raw values, reducing each modulo n.
// It is intended for tests that must force a specific outcome, such as a
// guaranteed hit or a particular hardmode coin flip.
type ScriptedSource struct {
	values []int
	next   int
}

// NewScriptedSource returns a ScriptedSource that yields the given values
// in order and wraps around when exhausted.
//
// Precondition: at least one value must be provided.
func NewScriptedSource(values ...int) *ScriptedSource {
	if len(values) == 0 {
		panic("dice: NewScriptedSource requires at least one value")
	}
	return &ScriptedSource{values: values}
}

// Intn returns the next scripted value reduced into [0, n).
//
// Precondition: n > 0.
func (s *ScriptedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
