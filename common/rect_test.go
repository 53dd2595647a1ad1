package common

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b *Rect
		want bool
	}{
		{"identical", &Rect{0, 0, 10, 10}, &Rect{0, 0, 10, 10}, true},
		{"partial", &Rect{0, 0, 10, 10}, &Rect{5, 5, 10, 10}, true},
		{"contained", &Rect{0, 0, 100, 100}, &Rect{40, 40, 5, 5}, true},
		{"touching_x_edge", &Rect{0, 0, 10, 10}, &Rect{10, 0, 10, 10}, false},
		{"touching_y_edge", &Rect{0, 0, 10, 10}, &Rect{0, 10, 10, 10}, false},
		{"apart", &Rect{0, 0, 10, 10}, &Rect{50, 50, 10, 10}, false},
		{"overlap_x_only", &Rect{0, 0, 10, 10}, &Rect{5, 20, 10, 10}, false},
		{"zero_width_on_edge", &Rect{10, 0, 0, 10}, &Rect{0, 0, 10, 10}, false},
		{"nil_a", nil, &Rect{0, 0, 10, 10}, false},
		{"nil_b", &Rect{0, 0, 10, 10}, nil, false},
		{"both_nil", nil, nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.a, c.b); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
			if c.a != nil && c.b != nil {
				if got := Overlaps(c.b, c.a); got != c.want {
					t.Fatalf("Overlaps is not symmetric: %v", got)
				}
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 100, Y: 20, Width: 64, Height: 32}
	if r.Right() != 164 {
		t.Fatalf("Right = %v, want 164", r.Right())
	}
	if r.CenterX() != 132 {
		t.Fatalf("CenterX = %v, want 132", r.CenterX())
	}
}
