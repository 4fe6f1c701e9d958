package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoise2DDeterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 7, 1 << 40} {
		for x := -3.0; x < 3.0; x += 0.7 {
			for y := -3.0; y < 3.0; y += 0.7 {
				a := Noise2D(x, y, 0.23, seed)
				b := Noise2D(x, y, 0.23, seed)
				// Bit-identical, not approximately equal.
				require.Equal(t, a, b, "noise not stable at (%v,%v) seed %d", x, y, seed)
			}
		}
	}
}

func TestNoise2DRange(t *testing.T) {
	for _, freq := range []float64{0.05, 0.21, 1.0, 3.7} {
		for x := 0; x < 40; x++ {
			for y := 0; y < 40; y++ {
				v := Noise2D(float64(x), float64(y), freq, 99)
				require.GreaterOrEqual(t, v, 0.0)
				require.Less(t, v, 1.0)
			}
		}
	}
}

func TestNoise2DLatticeAnchors(t *testing.T) {
	// At integer lattice points with freq 1 the interpolation weights
	// are zero, so the noise equals the corner hash directly.
	for x := int64(-5); x < 5; x++ {
		for y := int64(-5); y < 5; y++ {
			require.Equal(t, hash2D(x, y, 13), Noise2D(float64(x), float64(y), 1, 13))
		}
	}
}

func TestNoise2DAdjacentSeedsDecorrelate(t *testing.T) {
	// Accent layers use consecutive seeds; their fields must not
	// cluster identically.
	differing := 0
	total := 0
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			total++
			if Noise2D(float64(x), float64(y), 0.19, 5) != Noise2D(float64(x), float64(y), 0.19, 6) {
				differing++
			}
		}
	}
	assert.Greater(t, differing, total*9/10, "adjacent seeds produce near-identical fields")
}

func TestPosHashStable(t *testing.T) {
	assert.Equal(t, posHash(12, 34), posHash(12, 34))
	assert.NotEqual(t, posHash(12, 34), posHash(34, 12))
}
