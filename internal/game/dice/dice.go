// Package dice provides the randomness abstraction for the game engine.
// Every random draw in the core goes through a Source so tests can
// substitute deterministic or scripted values.
package dice

// Between returns a uniform random integer in [min, max] inclusive.
//
// Precondition: src must be non-nil; min <= max.
// Postcondition: min <= result <= max.
func Between(src Source, min, max int) int {
	if min > max {
		panic("dice: Between called with min > max")
	}
	if min == max {
		return min
	}
	return min + src.Intn(max-min+1)
}

// CoinFlip returns true on heads, drawn uniformly.
//
// Precondition: src must be non-nil.
func CoinFlip(src Source) bool {
	return src.Intn(2) == 0
}
