package rng

import "math/bits"

// Source is the contract every RNG variant satisfies: Random(n, key) and a
// per-run reset (in-place shuffling is the separate Shuffle function over a
// *Xoroshiro). The base Xoroshiro implementation
// ignores key; the variance-reduced variants use it to pick a permutation
// deck.
type Source interface {
	Random(n int, key Key) int
	Start()
}

// Xoroshiro is xoroshiro128+ 1.0 (Blackman & Vigna, public domain). It is
// the base stream every other RNG variant in this package is ultimately
// built on.
type Xoroshiro struct {
	s0, s1 uint64
}

// NewXoroshiro returns a generator with a fixed default seed, so two
// freshly constructed generators produce identical streams.
func NewXoroshiro() *Xoroshiro {
	return &Xoroshiro{s0: 1234567891234567890, s1: 9876543210987654321}
}

// NewXoroshiroSeeded returns a generator seeded from two caller-supplied
// 64-bit words. Both must not be zero simultaneously.
func NewXoroshiroSeeded(s0, s1 uint64) *Xoroshiro {
	return &Xoroshiro{s0: s0, s1: s1}
}

// Next returns the next 64-bit output and advances the state.
func (r *Xoroshiro) Next() uint64 {
	s0 := r.s0
	s1 := r.s1
	result := s0 + s1

	s1 ^= s0
	r.s0 = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	r.s1 = bits.RotateLeft64(s1, 37)

	return result
}

// RandomU64 returns a value in [0, rng) via modulo reduction. The slight
// bias for large rng is irrelevant at board-sized ranges.
func (r *Xoroshiro) RandomU64(rng uint64) uint64 {
	return r.Next() % rng
}

// RandomN returns a value uniform in [0, n).
func (r *Xoroshiro) RandomN(n int) int {
	return int(r.RandomU64(uint64(n)))
}

// Random implements Source; key is ignored by the base generator.
func (r *Xoroshiro) Random(n int, key Key) int {
	return r.RandomN(n)
}

// Start is a no-op for the base generator, present for interface
// compatibility with the variance-reduced variants.
func (r *Xoroshiro) Start() {}

var jumpConstants = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}
var longJumpConstants = [2]uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1}

func (r *Xoroshiro) applyJump(constants [2]uint64) {
	var s0, s1 uint64
	for _, c := range constants {
		for b := 0; b < 64; b++ {
			if c&(uint64(1)<<uint(b)) != 0 {
				s0 ^= r.s0
				s1 ^= r.s1
			}
			r.Next()
		}
	}
	r.s0 = s0
	r.s1 = s1
}

// Jump is equivalent to 2^64 calls to Next; it generates a non-overlapping
// subsequence suitable for independent parallel streams.
func (r *Xoroshiro) Jump() {
	r.applyJump(jumpConstants)
}

// LongJump is equivalent to 2^96 calls to Next; it generates one of 2^32
// starting points from which Jump produces independent streams.
func (r *Xoroshiro) LongJump() {
	r.applyJump(longJumpConstants)
}

// NextStream returns an independent copy of the current state and advances
// the receiver past it via Jump, so repeated calls hand out non-overlapping
// streams.
func (r *Xoroshiro) NextStream() *Xoroshiro {
	out := &Xoroshiro{s0: r.s0, s1: r.s1}
	r.Jump()
	return out
}

// Clone returns an independent copy of the current state without advancing
// the receiver. Used by simulation.SimulateDeterministic to guarantee
// repeatability.
func (r *Xoroshiro) Clone() *Xoroshiro {
	return &Xoroshiro{s0: r.s0, s1: r.s1}
}

// Shuffle performs an in-place Fisher-Yates shuffle driven by this stream.
func Shuffle[T any](r *Xoroshiro, data []T) {
	for i := 1; i < len(data); i++ {
		j := r.RandomN(i + 1)
		if i != j {
			data[i], data[j] = data[j], data[i]
		}
	}
}
