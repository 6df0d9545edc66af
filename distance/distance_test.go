package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		expected       float64
	}{
		{"Same", 1, 1, 1, 1, 0},
		{"Horizontal", 0, 0, 3, 0, 9},
		{"Pythagorean", 0, 0, 3, 4, 25},
		{"Negative", -1, -1, 1, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.ax, tt.ay, tt.bx, tt.by), 1e-12)
		})
	}
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, Euclidean(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, 0.0, Euclidean(2, 2, 2, 2), 1e-12)
}

func TestProvider(t *testing.T) {
	f, err := Provider(MetricSquaredL2)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, f(0, 0, 3, 4), 1e-12)

	f, err = Provider(MetricEuclidean)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, f(0, 0, 3, 4), 1e-12)

	_, err = Provider(Metric(999))
	assert.Error(t, err)
	assert.Equal(t, "Unknown(999)", Metric(999).String())
}
