package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(31.5204, 74.3587, 31.5204, 74.3587))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	points := [][4]float64{
		{0, 0, 0, 0.001},
		{31.5204, 74.3587, 31.5497, 74.3436},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{89.9, 0, -89.9, 180},
	}
	for _, p := range points {
		d1 := DistanceMeters(p[0], p[1], p[2], p[3])
		d2 := DistanceMeters(p[2], p[3], p[0], p[1])
		assert.InDelta(t, d1, d2, 1e-9)
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// Один градус широты на экваторе ~ 111.19 км
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 100)

	// 0.001 градуса широты ~ 111 метров
	d = DistanceMeters(0, 0, 0.001, 0)
	assert.InDelta(t, 111.2, d, 1)
}

func TestDistanceMeters_NonNegative(t *testing.T) {
	d := DistanceMeters(10, 10, 10.0001, 10.0001)
	assert.Greater(t, d, 0.0)
}
