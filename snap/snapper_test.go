package snap

import "testing"

func TestAdjustDistance(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		direction int
		geom      ItemGeometry
		want      int
	}{
		{
			name:      "zero distance forward from aligned item snaps one item ahead",
			distance:  0,
			direction: 1,
			geom:      ItemGeometry{Offset: 0, Extent: 100},
			want:      100,
		},
		{
			name:      "forward residual carries far edge onto boundary",
			distance:  250,
			direction: 1,
			geom:      ItemGeometry{Offset: -30, Extent: 100},
			want:      270, // 2 whole items + 70 to finish the partial one
		},
		{
			name:      "backward residual carries near edge onto boundary",
			distance:  250,
			direction: -1,
			geom:      ItemGeometry{Offset: -30, Extent: 100},
			want:      230, // 2 whole items + 30 back to the near edge
		},
		{
			name:      "forward with item exactly consumed has zero residual",
			distance:  450,
			direction: 1,
			geom:      ItemGeometry{Offset: -100, Extent: 100},
			want:      400,
		},
		{
			name:      "backward from aligned item has zero residual",
			distance:  450,
			direction: -1,
			geom:      ItemGeometry{Offset: 0, Extent: 100},
			want:      400,
		},
		{
			name:      "sub-item distance forward",
			distance:  40,
			direction: 1,
			geom:      ItemGeometry{Offset: -25, Extent: 80},
			want:      55,
		},
		{
			name:      "sub-item distance backward",
			distance:  40,
			direction: -1,
			geom:      ItemGeometry{Offset: -25, Extent: 80},
			want:      25,
		},
		{
			name:      "non-integer extent truncates to integer result",
			distance:  100,
			direction: 1,
			geom:      ItemGeometry{Offset: -10.5, Extent: 64.5},
			want:      118, // 1*64.5 + 54.0 = 118.5, truncated
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustDistance(tt.distance, tt.direction, tt.geom)
			if got != tt.want {
				t.Errorf("AdjustDistance(%v, %d, %+v) = %d, want %d",
					tt.distance, tt.direction, tt.geom, got, tt.want)
			}
		})
	}
}

// Re-applying the forward adjustment to an already aligned item keeps
// the result on whole item multiples with zero residual.
func TestAdjustDistanceIdempotentWhenAligned(t *testing.T) {
	geom := ItemGeometry{Offset: -100, Extent: 100}

	first := AdjustDistance(500, 1, geom)
	if first != 500 {
		t.Fatalf("AdjustDistance(500, 1, aligned) = %d, want 500", first)
	}
	second := AdjustDistance(float64(first), 1, geom)
	if second != first {
		t.Errorf("re-applied adjustment = %d, want %d", second, first)
	}
}

func TestReleaseSnapDelta(t *testing.T) {
	tests := []struct {
		name string
		geom ItemGeometry
		want float64
	}{
		{
			name: "less than half past near edge snaps back",
			geom: ItemGeometry{Offset: -20, Extent: 100},
			want: -20,
		},
		{
			name: "more than half past near edge snaps forward",
			geom: ItemGeometry{Offset: -70, Extent: 100},
			want: 30,
		},
		{
			name: "exactly half snaps forward",
			geom: ItemGeometry{Offset: -50, Extent: 100},
			want: 50,
		},
		{
			name: "already aligned needs no scroll",
			geom: ItemGeometry{Offset: 0, Extent: 100},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReleaseSnapDelta(tt.geom)
			if got != tt.want {
				t.Errorf("ReleaseSnapDelta(%+v) = %v, want %v", tt.geom, got, tt.want)
			}
		})
	}
}
