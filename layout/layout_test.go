package layout

import (
	"testing"

	"github.com/automoto/snapscroll/snap"
)

func TestLinearFirstVisibleAt(t *testing.T) {
	tests := []struct {
		name   string
		list   Linear
		offset float64
		want   snap.ItemGeometry
		wantOK bool
	}{
		{
			name:   "aligned offset",
			list:   Linear{Extent: 100, Count: 10},
			offset: 300,
			want:   snap.ItemGeometry{Offset: 0, Extent: 100},
			wantOK: true,
		},
		{
			name:   "partial item scrolled past boundary",
			list:   Linear{Extent: 100, Count: 10},
			offset: 320,
			want:   snap.ItemGeometry{Offset: -20, Extent: 100},
			wantOK: true,
		},
		{
			name:   "zero offset",
			list:   Linear{Extent: 100, Count: 10},
			offset: 0,
			want:   snap.ItemGeometry{Offset: 0, Extent: 100},
			wantOK: true,
		},
		{
			name:   "empty list resolves nothing",
			list:   Linear{Extent: 100, Count: 0},
			offset: 50,
			wantOK: false,
		},
		{
			name:   "unmeasured items resolve nothing",
			list:   Linear{Extent: 0, Count: 10},
			offset: 50,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.list.FirstVisibleAt(tt.offset)
			if ok != tt.wantOK {
				t.Fatalf("FirstVisibleAt(%v) ok = %v, want %v", tt.offset, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FirstVisibleAt(%v) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestLinearFirstVisibleIndex(t *testing.T) {
	l := Linear{Extent: 80, Count: 20}

	if got := l.FirstVisibleIndex(0); got != 0 {
		t.Errorf("FirstVisibleIndex(0) = %d, want 0", got)
	}
	if got := l.FirstVisibleIndex(79.9); got != 0 {
		t.Errorf("FirstVisibleIndex(79.9) = %d, want 0", got)
	}
	if got := l.FirstVisibleIndex(80); got != 1 {
		t.Errorf("FirstVisibleIndex(80) = %d, want 1", got)
	}
	if got := l.FirstVisibleIndex(410); got != 5 {
		t.Errorf("FirstVisibleIndex(410) = %d, want 5", got)
	}
}

func TestGridRows(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want int
	}{
		{"even split", Grid{Extent: 100, Count: 12, Columns: 3}, 4},
		{"partial last row", Grid{Extent: 100, Count: 13, Columns: 3}, 5},
		{"single row", Grid{Extent: 100, Count: 2, Columns: 3}, 1},
		{"no items", Grid{Extent: 100, Count: 0, Columns: 3}, 0},
		{"no columns", Grid{Extent: 100, Count: 12, Columns: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.Rows(); got != tt.want {
				t.Errorf("Rows() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGridFirstVisibleAt(t *testing.T) {
	g := Grid{Extent: 120, Count: 14, Columns: 4}

	geom, ok := g.FirstVisibleAt(130)
	if !ok {
		t.Fatal("FirstVisibleAt(130) not resolved")
	}
	want := snap.ItemGeometry{Offset: -10, Extent: 120}
	if geom != want {
		t.Errorf("FirstVisibleAt(130) = %+v, want %+v", geom, want)
	}

	if _, ok := (Grid{Extent: 120, Count: 0, Columns: 4}).FirstVisibleAt(0); ok {
		t.Error("empty grid resolved a leading row")
	}
}

func TestClampOffset(t *testing.T) {
	l := Linear{Extent: 100, Count: 10} // content 1000

	tests := []struct {
		name     string
		offset   float64
		viewport float64
		want     float64
	}{
		{"inside range", 300, 360, 300},
		{"below range", -40, 360, 0},
		{"above range", 900, 360, 640},
		{"content smaller than viewport", 50, 2000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampOffset(l, tt.offset, tt.viewport); got != tt.want {
				t.Errorf("ClampOffset(%v, %v) = %v, want %v", tt.offset, tt.viewport, got, tt.want)
			}
		})
	}
}
