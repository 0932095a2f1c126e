package core

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(0, 0), V(0, 0), 0},
		{"horizontal", V(0, 0), V(3, 0), 3},
		{"vertical", V(0, 0), V(0, 4), 4},
		{"diagonal 3-4-5", V(1, 1), V(4, 5), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(1.5, -2)
	if got := v.Add(V(0.5, 2)); got != V(2, 0) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Sub(V(1.5, -2)); got != V(0, 0) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Scale(2); got != V(3, -4) {
		t.Errorf("Scale = %+v", got)
	}
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len = %f", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		coord, offset, size float64
		expected            int
	}{
		{145, 100, 30, 1},
		{130, 100, 30, 1},
		{129.99, 100, 30, 0},
		{99, 100, 30, -1}, // left of the grid
		{0, 0, 30, 0},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.coord, tc.offset, tc.size); got != tc.expected {
			t.Errorf("FloorDiv(%v, %v, %v) = %d, expected %d", tc.coord, tc.offset, tc.size, got, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
