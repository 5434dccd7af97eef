package snake

import "testing"

func TestBodyGrowAndTrim(t *testing.T) {
	b := NewBody([]Point{{200, 200}, {160, 200}, {120, 200}})

	b.Grow(3)
	if b.Len() != 6 {
		t.Fatalf("Len after Grow(3) = %d, expected 6", b.Len())
	}
	for i := 2; i < 6; i++ {
		if b.At(i) != (Point{120, 200}) {
			t.Errorf("cell %d = %v, expected a copy of the tail", i, b.At(i))
		}
	}

	b.Trim(4)
	if b.Len() != 2 || b.Tail() != (Point{160, 200}) {
		t.Errorf("after Trim(4): len=%d tail=%v", b.Len(), b.Tail())
	}

	b.Trim(10)
	if b.Len() != 1 || b.Head() != (Point{200, 200}) {
		t.Errorf("Trim must keep the head, got len=%d head=%v", b.Len(), b.Head())
	}
}

func TestBodyBitesItself(t *testing.T) {
	tests := []struct {
		name  string
		cells []Point
		want  bool
	}{
		{"straight", []Point{{200, 200}, {160, 200}, {120, 200}}, false},
		{"single", []Point{{200, 200}}, false},
		{"loop", []Point{{200, 240}, {200, 200}, {240, 200}, {240, 240}, {200, 240}}, true},
		{"stacked tail copies", []Point{{240, 200}, {200, 200}, {200, 200}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBody(tt.cells).BitesItself(); got != tt.want {
				t.Errorf("BitesItself() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestBodyCellsIsCopy(t *testing.T) {
	b := NewBody([]Point{{0, 0}, {40, 0}})
	cells := b.Cells()
	cells[0] = Point{999, 999}
	if b.Head() != (Point{0, 0}) {
		t.Error("Cells() should not expose internal storage")
	}
}
