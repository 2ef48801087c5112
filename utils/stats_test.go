package utils

import (
	"math"
	"testing"
)

func TestStatsRecord(t *testing.T) {
	s := NewStats()
	s.Record(10)
	s.Record(20)

	if s.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d, expected 2", s.TotalGenerations)
	}
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, expected 11", s.AveragePopulation)
	}
}
