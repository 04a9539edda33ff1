package utils

import (
	"math"
	"testing"
)

func TestCalculateDistanceZeroForSamePoint(t *testing.T) {
	if d := CalculateDistance(60.1699, 24.9384, 60.1699, 24.9384); d != 0 {
		t.Errorf("expected 0 distance for identical coordinates, got %f", d)
	}
}

func TestCalculateDistanceSymmetric(t *testing.T) {
	coords := [][4]float64{
		{60.1699, 24.9384, 61.4991, 23.7871},    // Helsinki - Tampere
		{40.7128, -74.0060, 51.5074, -0.1278},   // New York - London
		{-33.8688, 151.2093, 35.6762, 139.6503}, // Sydney - Tokyo
	}
	for _, c := range coords {
		ab := CalculateDistance(c[0], c[1], c[2], c[3])
		ba := CalculateDistance(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestCalculateDistanceKnownPairs(t *testing.T) {
	// Helsinki to Tampere is roughly 160 km as the crow flies
	d := CalculateDistance(60.1699, 24.9384, 61.4991, 23.7871)
	if d < 150 || d > 170 {
		t.Errorf("Helsinki-Tampere distance out of range: %f km", d)
	}

	// One degree of latitude is about 111.2 km
	d = CalculateDistance(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("one degree latitude should be ~111.19 km, got %f", d)
	}
}

func TestCalculateDistancePropagatesNaN(t *testing.T) {
	if d := CalculateDistance(math.NaN(), 0, 1, 1); !math.IsNaN(d) {
		t.Errorf("expected NaN to propagate, got %f", d)
	}
}
