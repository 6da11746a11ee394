// SPDX-License-Identifier: MIT

package som

import "math/rand"

// Trainers and grid builders never touch the global math/rand source: each
// gets its own *rand.Rand, so a seed fully determines initial weights and
// the sampling order. A *rand.Rand must stay on one goroutine.

// seedOrDefault maps the zero seed to 1 so WithSeed(0) is still reproducible.
func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return 1
	}

	return seed
}

func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seedOrDefault(seed)))
}

// golden is the 64-bit golden-ratio increment of SplitMix64.
const golden uint64 = 0x9e3779b97f4a7c15

// streamSeed scrambles (seed, stream) through the SplitMix64 output mix.
// Adjacent stream ids land far apart.
func streamSeed(seed int64, stream uint64) int64 {
	z := uint64(seed) + (stream+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// DeriveRand returns the stream-th generator of seed. colorsom uses one
// stream for the initial grid and another for its trainer, both driven by a
// single user seed. Seed 0 behaves like seed 1, as with WithSeed.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(streamSeed(seedOrDefault(seed), stream)))
}
