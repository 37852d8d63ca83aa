// Package grasp - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs; no time-based sources.
//   - Isolation: every Engine owns its *rand.Rand; DeriveRand builds
//     independent streams for concurrent runs.
//
// math/rand.Rand is NOT goroutine-safe. Never share one across engines that
// run concurrently.
package grasp

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. seed == 0 ⇒ DefaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed with a
// SplitMix64 finalizer, so neighboring stream ids give uncorrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns the stream-th independent generator of parent.
// Calling it twice with the same arguments yields identical streams.
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return NewRand(DeriveSeed(parent, stream))
}
