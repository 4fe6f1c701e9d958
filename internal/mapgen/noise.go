package mapgen

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hash2D maps an integer lattice corner and seed to a float in [0,1).
// xxhash provides the multiplicative mixing and avalanche needed to keep
// adjacent cells, and adjacent seeds, visually decorrelated; the seed is
// part of the hashed payload so every accent layer gets an independent
// field.
func hash2D(ix, iy int64, seed uint64) float64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(ix))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(iy))
	binary.LittleEndian.PutUint64(buf[16:24], seed)
	h := xxhash.Sum64(buf[:])
	// Top 53 bits to a float in [0,1).
	return float64(h>>11) / (1 << 53)
}

// smoothstep is the t^2(3-2t) easing curve.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Noise2D returns deterministic 2D value noise in [0,1): bilinear
// interpolation with smoothstep easing over hashed lattice corners.
// Identical arguments always yield bit-identical results; there is no
// external state.
func Noise2D(x, y, freq float64, seed uint64) float64 {
	sx := x * freq
	sy := y * freq
	fx := math.Floor(sx)
	fy := math.Floor(sy)
	ix := int64(fx)
	iy := int64(fy)
	tx := smoothstep(sx - fx)
	ty := smoothstep(sy - fy)

	v00 := hash2D(ix, iy, seed)
	v10 := hash2D(ix+1, iy, seed)
	v01 := hash2D(ix, iy+1, seed)
	v11 := hash2D(ix+1, iy+1, seed)

	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

// posHash is the positional hash used to pick between wall decoration
// variants, giving visual variety without consuming rng state.
func posHash(x, y int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(int64(x)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(y)))
	return xxhash.Sum64(buf[:])
}
