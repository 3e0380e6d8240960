package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/framego/util"
)

func TestRealVectorLayout(t *testing.T) {
	f, err := FromRows([][]complex128{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)

	vec := f.RealVector()
	require.Len(t, vec, 8)

	// Real parts row-major, then imaginary parts.
	assert.Equal(t, []float64{1, 0, 0, 1, 0, 0, 0, 0}, vec)
}

func TestRealVectorRoundTrip(t *testing.T) {
	f, err := Random(4, 3, util.NewRNG(40))
	require.NoError(t, err)

	g, err := FromRealVector(f.RealVector(), 4, 3)
	require.NoError(t, err)

	// The frame is already on the manifold, so decoding its own
	// encoding is the identity up to round-off.
	for i, z := range g.Vectors() {
		assert.InDelta(t, real(f.Vectors()[i]), real(z), 1e-12)
		assert.InDelta(t, imag(f.Vectors()[i]), imag(z), 1e-12)
	}
}

func TestFromRealVectorProjects(t *testing.T) {
	// An off-manifold vector is pulled back through the
	// construction-and-gauge-fix path.
	vec := []float64{3, 0, 0, 4, 0, 0, 0, 0}

	f, err := FromRealVector(vec, 2, 2)
	require.NoError(t, err)

	for i := 0; i < f.N(); i++ {
		assert.InDelta(t, 1, testNorm(f.Row(i)), 1e-12)
	}
}

func TestFromRealVectorValidation(t *testing.T) {
	tests := []struct {
		name string
		vec  []float64
		n, d int
	}{
		{"BadShape", make([]float64, 8), 0, 2},
		{"LengthMismatch", make([]float64, 7), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRealVector(tt.vec, tt.n, tt.d)
			assert.ErrorIs(t, err, ErrInvalidDimensionality)
		})
	}
}
