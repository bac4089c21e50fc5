package ibw

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestComputeScalingDeterminism(t *testing.T) {
	notes := map[string]string{
		"SlowScanSize": "1e-6",
		"FastScanSize": "1e-6",
	}

	s, err := computeScaling(notes, []int{256, 256})
	if err != nil {
		t.Fatalf("computeScaling failed: %v", err)
	}

	expected := 1 / (1e-6 / 256 * 1e9) // 0.256 px/nm
	if !scalar.EqualWithinAbs(s.Slow, expected, 1e-12) {
		t.Errorf("slow scaling = %v, expected %v", s.Slow, expected)
	}
	if !scalar.EqualWithinAbs(s.Fast, expected, 1e-12) {
		t.Errorf("fast scaling = %v, expected %v", s.Fast, expected)
	}
}

func TestComputeScalingAxisPairing(t *testing.T) {
	// Slow pairs with the first dimension, fast with the second.
	notes := map[string]string{
		"SlowScanSize": "1e-6",
		"FastScanSize": "4e-6",
	}

	s, err := computeScaling(notes, []int{256, 512})
	if err != nil {
		t.Fatalf("computeScaling failed: %v", err)
	}

	if expected := 1 / (1e-6 / 256 * 1e9); !scalar.EqualWithinAbs(s.Slow, expected, 1e-12) {
		t.Errorf("slow scaling = %v, expected %v", s.Slow, expected)
	}
	if expected := 1 / (4e-6 / 512 * 1e9); !scalar.EqualWithinAbs(s.Fast, expected, 1e-12) {
		t.Errorf("fast scaling = %v, expected %v", s.Fast, expected)
	}
}

func TestComputeScalingMissingKey(t *testing.T) {
	tests := []struct {
		name  string
		notes map[string]string
	}{
		{"no slow", map[string]string{"FastScanSize": "1e-6"}},
		{"no fast", map[string]string{"SlowScanSize": "1e-6"}},
		{"non-numeric", map[string]string{"SlowScanSize": "big", "FastScanSize": "1e-6"}},
		{"empty", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := computeScaling(tt.notes, []int{256, 256})
			if !errors.Is(err, ErrMissingMetadata) {
				t.Errorf("expected ErrMissingMetadata, got %v", err)
			}
		})
	}
}

func TestComputeScalingZeroDenominator(t *testing.T) {
	notes := map[string]string{"SlowScanSize": "0", "FastScanSize": "1e-6"}
	if _, err := computeScaling(notes, []int{256, 256}); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("zero scan size: expected ErrZeroDenominator, got %v", err)
	}

	notes = map[string]string{"SlowScanSize": "1e-6", "FastScanSize": "1e-6"}
	if _, err := computeScaling(notes, []int{0, 256}); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("zero pixel count: expected ErrZeroDenominator, got %v", err)
	}
}
