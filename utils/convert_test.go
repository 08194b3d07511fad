package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0.0, 0},
		{"positive max", 1.0, 32767},
		{"negative max", -1.0, -32767},
		{"half", 0.5, 16383},
		{"clamp above", 2.5, 32767},
		{"clamp below", -2.5, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0.0, 0},
		{"positive max", 1.0, 32767},
		{"negative max", -1.0, -32767},
		{"clamp above", 10.0, 32767},
		{"clamp below", -10.0, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float64ToInt16(tt.in); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat64_Range(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{-32768, -1, 0, 1, 32767} {
		f := Int16ToFloat64(v)
		if f < -1.0 || f >= 1.0 {
			t.Errorf("Int16ToFloat64(%d) = %v, out of [-1, 1)", v, f)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	// Conversion through int16 should be accurate to one quantization step.
	for _, f := range []float64{-0.9, -0.25, 0.0, 0.25, 0.9} {
		got := Int16ToFloat64(Float64ToInt16(f))
		if math.Abs(got-f) > 1.0/32767.0 {
			t.Errorf("round trip of %v = %v, diff too large", f, got)
		}
	}
}

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
	}{
		{"at left sample", 0, 1, 2, 3, 0.0, 1.0},
		{"at right sample", 0, 1, 2, 3, 1.0, 2.0},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5},
		{"constant signal", 0.7, 0.7, 0.7, 0.7, 0.3, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("CubicInterpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}
