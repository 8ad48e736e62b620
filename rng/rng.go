// Package rng centralizes deterministic random generation for floor building.
//
// Goals:
//   - Determinism: same seed ⇒ identical floors on the same build.
//   - Injection: no package-level generator; callers pass *rand.Rand explicitly.
//   - Independence: Derive produces decorrelated per-floor streams for
//     parallel generation.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines;
//     derive a stream per worker instead.
package rng

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Derive mixes a parent seed and a stream identifier into a new seed using a
// SplitMix64 finalizer, so neighbouring stream ids produce unrelated seeds.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Stream returns an independent generator for stream id, seeded from parent.
func Stream(parent int64, stream uint64) *rand.Rand {
	return FromSeed(Derive(parent, stream))
}

// Reseed draws a fresh seed from r. Used between generation retries so each
// attempt explores a different layout while staying reproducible.
func Reseed(r *rand.Rand) *rand.Rand {
	return FromSeed(r.Int63())
}

// Shuffle performs an in-place Fisher–Yates shuffle of s using r.
// If r==nil, the DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](s []T, r *rand.Rand) {
	if len(s) <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// IntRange returns a uniform int in [lo, hi] inclusive.
func IntRange(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + r.Intn(hi-lo+1)
}
