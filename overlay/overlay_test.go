package overlay

import (
	"math"
	"reflect"
	"testing"
)

func TestLayout_EmptyAndDegenerateInputs(t *testing.T) {
	if got := Layout(0, 400, 500); got != nil {
		t.Fatalf("count 0: expected nil, got %v", got)
	}
	if got := Layout(-3, 400, 500); got != nil {
		t.Fatalf("negative count: expected nil, got %v", got)
	}
	if got := Layout(4, -1, 500); got != nil {
		t.Fatalf("negative width: expected nil, got %v", got)
	}
	if got := Layout(4, 400, math.NaN()); got != nil {
		t.Fatalf("NaN height: expected nil, got %v", got)
	}
	if got := Layout(4, math.Inf(1), 500); got != nil {
		t.Fatalf("infinite width: expected nil, got %v", got)
	}
}

func TestLayout_CountAndBounds(t *testing.T) {
	const w, h = 400.0, 500.0
	for n := 1; n <= 24; n++ {
		positions := Layout(n, w, h)
		if len(positions) != n {
			t.Fatalf("n=%d: got %d positions", n, len(positions))
		}
		for i, p := range positions {
			if p.X < 0 || p.X > w {
				t.Fatalf("n=%d pos %d: x=%v out of [0,%v]", n, i, p.X, w)
			}
			if p.Y < 0 || p.Y > h {
				t.Fatalf("n=%d pos %d: y=%v out of [0,%v]", n, i, p.Y, h)
			}
			if p.Scale <= 0 || p.Scale > 1 {
				t.Fatalf("n=%d pos %d: scale=%v out of (0,1]", n, i, p.Scale)
			}
		}
	}
}

func TestLayout_SingleMarkerSitsOnRightEdgeCentered(t *testing.T) {
	positions := Layout(1, 400, 500)
	p := positions[0]
	if p.X != 400-iconSize-padding {
		t.Fatalf("x = %v, want %v", p.X, 400-iconSize-padding)
	}
	if p.Y != (500-iconSize)/2 {
		t.Fatalf("y = %v, want %v", p.Y, (500-iconSize)/2)
	}
	if p.Scale != 1 {
		t.Fatalf("scale = %v, want 1", p.Scale)
	}
}

func TestLayout_ColumnsAlternateSides(t *testing.T) {
	// 13 markers fill two columns of six plus one: right, left, right again.
	positions := Layout(13, 400, 500)
	mid := 200.0
	for i := 0; i < 6; i++ {
		if positions[i].X < mid {
			t.Fatalf("marker %d should be on the right half, x=%v", i, positions[i].X)
		}
	}
	for i := 6; i < 12; i++ {
		if positions[i].X > mid {
			t.Fatalf("marker %d should be on the left half, x=%v", i, positions[i].X)
		}
	}
	if positions[12].X < mid {
		t.Fatalf("marker 12 should open a second right column, x=%v", positions[12].X)
	}
	// The second right column is pushed inward from the first.
	if positions[12].X >= positions[0].X {
		t.Fatalf("second right column not inset: %v vs %v", positions[12].X, positions[0].X)
	}
}

func TestLayout_ColumnBlockIsVerticallyCentered(t *testing.T) {
	// Three markers in one column: block height 3*64 + 2*16 = 224.
	positions := Layout(3, 400, 500)
	wantStart := (500.0 - 224.0) / 2
	if positions[0].Y != wantStart {
		t.Fatalf("first y = %v, want %v", positions[0].Y, wantStart)
	}
	step := iconSize + spacing
	for i := 1; i < 3; i++ {
		if positions[i].Y != wantStart+float64(i)*step {
			t.Fatalf("marker %d y = %v, want %v", i, positions[i].Y, wantStart+float64(i)*step)
		}
	}
}

func TestLayout_ScaleDegradesBeyondFourColumns(t *testing.T) {
	// 24 markers = 4 columns: full scale. 25 = 5 columns: reduced.
	for _, p := range Layout(24, 400, 500) {
		if p.Scale != 1 {
			t.Fatalf("4 columns should keep scale 1, got %v", p.Scale)
		}
	}
	for _, p := range Layout(25, 400, 500) {
		if p.Scale != reducedScale {
			t.Fatalf("5 columns should scale to %v, got %v", reducedScale, p.Scale)
		}
	}
}

func TestLayout_Deterministic(t *testing.T) {
	a := Layout(11, 383.5, 472.25)
	b := Layout(11, 383.5, 472.25)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different layouts")
	}
}
