package basicops

import (
	"sort"

	"github.com/rivo/uniseg"
)

// GraphemeIndex holds the grapheme cluster boundaries of a string. It maps
// between 1-based grapheme positions and byte offsets, clamping every
// out-of-range position to the nearest valid boundary instead of failing.
//
// Computing the boundaries takes one pass over the string. Callers that make
// repeated position queries against the same string should construct one
// index and reuse it; the package-level operations construct a fresh index
// per call.
type GraphemeIndex struct {
	str        string
	boundaries []int
}

// NewGraphemeIndex segments s into extended grapheme clusters (UAX #29) and
// returns an index over the resulting boundaries. The result is
// deterministic: the same string always produces the same boundaries.
func NewGraphemeIndex(s string) *GraphemeIndex {
	boundaries := make([]int, 1, len(s)/4+2)
	state := -1
	var cluster string
	offset := 0
	for rest := s; len(rest) > 0; {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		boundaries = append(boundaries, offset)
	}
	return &GraphemeIndex{str: s, boundaries: boundaries}
}

// String returns the indexed string.
func (x *GraphemeIndex) String() string {
	return x.str
}

// Boundaries returns the increasing sequence of byte offsets at which
// grapheme clusters begin, including offset 0 and the end-of-string offset.
// For the empty string it is [0]. The returned slice is the index's own
// storage and must not be modified.
func (x *GraphemeIndex) Boundaries() []int {
	return x.boundaries
}

// ClusterCount returns the number of grapheme clusters in the indexed
// string.
func (x *GraphemeIndex) ClusterCount() int {
	return len(x.boundaries) - 1
}

// Resolve maps a 1-based grapheme position to a byte offset. For position in
// [1, ClusterCount()] it returns the offset of that cluster and exists =
// true. Position ClusterCount()+1 is the end-of-string insertion point:
// Resolve returns len(s) and exists = false. Any other position is clamped
// to the nearest boundary (0 or len(s)) with exists = false. Resolve never
// panics, whatever the position.
func (x *GraphemeIndex) Resolve(position int) (offset int, exists bool) {
	count := x.ClusterCount()
	switch {
	case position < 1:
		return 0, false
	case position <= count:
		return x.boundaries[position-1], true
	default:
		return x.boundaries[count], false
	}
}

// Cluster returns the grapheme cluster at the given 1-based position, or ""
// if no cluster exists there.
func (x *GraphemeIndex) Cluster(position int) string {
	if position < 1 || position > x.ClusterCount() {
		return ""
	}
	return x.str[x.boundaries[position-1]:x.boundaries[position]]
}

// isBoundary reports whether the byte offset is a grapheme cluster boundary
// of the indexed string. Offset 0 and len(s) are always boundaries.
func (x *GraphemeIndex) isBoundary(offset int) bool {
	_, ok := x.position(offset)
	return ok
}

// position performs a binary search over the boundary slice and returns the
// 1-based position of the cluster starting at the given byte offset. The
// second return value is false if the offset is not a cluster boundary. The
// end-of-string offset maps to ClusterCount()+1.
func (x *GraphemeIndex) position(offset int) (int, bool) {
	i := sort.SearchInts(x.boundaries, offset)
	if i == len(x.boundaries) || x.boundaries[i] != offset {
		return 0, false
	}
	return i + 1, true
}
