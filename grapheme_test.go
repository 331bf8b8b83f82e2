package basicops

import (
	"reflect"
	"testing"
)

func TestGraphemeIndexBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", []int{0}},
		{"ascii", "Hello", []int{0, 1, 2, 3, 4, 5}},
		{"combining accent", "é", []int{0, 3}},
		{"accent then letter", "éx", []int{0, 3, 4}},
		{"flag", "🇩🇪", []int{0, 8}},
		{"flags", "🇩🇪🇫🇷", []int{0, 8, 16}},
		{"family emoji", "👨‍👩‍👧‍👦", []int{0, 25}},
		{"crlf", "a\r\nb", []int{0, 1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewGraphemeIndex(tt.input)
			if got := idx.Boundaries(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Boundaries(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got, want := idx.ClusterCount(), len(tt.want)-1; got != want {
				t.Errorf("ClusterCount(%q) = %d, want %d", tt.input, got, want)
			}
		})
	}
}

func TestGraphemeIndexDeterministic(t *testing.T) {
	const s = "a🇩🇪é👨‍👩‍👧‍👦z"
	first := NewGraphemeIndex(s).Boundaries()
	for i := 0; i < 5; i++ {
		if got := NewGraphemeIndex(s).Boundaries(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Boundaries = %v, want %v", i, got, first)
		}
	}
}

func TestGraphemeIndexResolve(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		position   int
		wantOffset int
		wantExists bool
	}{
		{"first cluster", "abc", 1, 0, true},
		{"last cluster", "abc", 3, 2, true},
		{"end insertion point", "abc", 4, 3, false},
		{"zero clamps to start", "abc", 0, 0, false},
		{"negative clamps to start", "abc", -7, 0, false},
		{"past end clamps to end", "abc", 99, 3, false},
		{"empty insertion point", "", 1, 0, false},
		{"empty out of range", "", 5, 0, false},
		{"multibyte cluster", "éx", 2, 3, true},
		{"flag cluster", "🇩🇪x", 2, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, exists := NewGraphemeIndex(tt.input).Resolve(tt.position)
			if offset != tt.wantOffset || exists != tt.wantExists {
				t.Errorf("Resolve(%q, %d) = (%d, %t), want (%d, %t)",
					tt.input, tt.position, offset, exists, tt.wantOffset, tt.wantExists)
			}
		})
	}
}

func TestGraphemeIndexCluster(t *testing.T) {
	idx := NewGraphemeIndex("a🇩🇪é")
	tests := []struct {
		position int
		want     string
	}{
		{1, "a"},
		{2, "🇩🇪"},
		{3, "é"},
		{0, ""},
		{4, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := idx.Cluster(tt.position); got != tt.want {
			t.Errorf("Cluster(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestGraphemeIndexPosition(t *testing.T) {
	idx := NewGraphemeIndex("éx")
	tests := []struct {
		offset      int
		wantPos     int
		wantAligned bool
	}{
		{0, 1, true},
		{1, 0, false}, // inside the accent cluster
		{2, 0, false},
		{3, 2, true},
		{4, 3, true}, // end of string
		{5, 0, false},
	}
	for _, tt := range tests {
		pos, aligned := idx.position(tt.offset)
		if pos != tt.wantPos || aligned != tt.wantAligned {
			t.Errorf("position(%d) = (%d, %t), want (%d, %t)",
				tt.offset, pos, aligned, tt.wantPos, tt.wantAligned)
		}
	}
}
