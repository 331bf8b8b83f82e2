package basicops

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Concat returns the concatenation of a then b. The empty string is the
// identity: Concat(a, "") == Concat("", a) == a.
func Concat(a, b string) string {
	return a + b
}

// Length returns the number of grapheme clusters in s. It is 0 exactly for
// the empty string, and Length(Concat(a, b)) == Length(a) + Length(b).
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// IsEmpty reports whether s has no grapheme clusters.
func IsEmpty(s string) bool {
	return s == ""
}

// Substring returns the grapheme clusters of s from position start through
// position end, 1-based and inclusive on both ends. A reversed range
// (start > end) yields "". Out-of-range bounds are clamped to the string:
// an end past the last cluster is treated as Length(s), a start before the
// first cluster as 1. Substring(s, 1, Length(s)) reproduces s exactly.
func Substring(s string, start, end int) string {
	if start > end {
		return ""
	}
	idx := NewGraphemeIndex(s)
	if count := idx.ClusterCount(); end > count {
		end = count
	}
	from, _ := idx.Resolve(start)
	to, _ := idx.Resolve(end + 1)
	if to < from {
		return ""
	}
	return s[from:to]
}

// IndexOf returns the 1-based grapheme position of the first occurrence of
// sub in s, or 0 if sub does not occur. Search is literal and
// leftmost-match; an occurrence must start and end on grapheme cluster
// boundaries of s. The empty substring is trivially present at the start:
// IndexOf(s, "") == 1 for every s, including "".
func IndexOf(s, sub string) int {
	if sub == "" {
		return 1
	}
	_, position := alignedIndex(NewGraphemeIndex(s), sub, 0)
	return position
}

// Contains reports whether sub occurs in s on grapheme cluster boundaries.
// The empty substring is contained in every string, including "".
func Contains(s, sub string) bool {
	return IndexOf(s, sub) != 0
}

// HasPrefix reports whether the first Length(prefix) grapheme clusters of s
// equal prefix. The empty prefix matches every string.
func HasPrefix(s, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	return NewGraphemeIndex(s).isBoundary(len(prefix))
}

// HasSuffix reports whether the last Length(suffix) grapheme clusters of s
// equal suffix. The empty suffix matches every string.
func HasSuffix(s, suffix string) bool {
	if suffix == "" {
		return true
	}
	if !strings.HasSuffix(s, suffix) {
		return false
	}
	return NewGraphemeIndex(s).isBoundary(len(s) - len(suffix))
}

// ToUpper returns s with all letters mapped to upper case using default
// Unicode case mapping. Idempotent.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower returns s with all letters mapped to lower case using default
// Unicode case mapping. Idempotent.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimSpace returns s with leading and trailing whitespace grapheme
// clusters removed. A cluster is whitespace if all of its code points are
// Unicode whitespace; a cluster that merely starts with a space, such as a
// space carrying a combining mark, is preserved. Interior whitespace is
// never touched. Idempotent.
func TrimSpace(s string) string {
	idx := NewGraphemeIndex(s)
	b := idx.boundaries
	lo, hi := 0, idx.ClusterCount()
	for lo < hi && isSpaceCluster(s[b[lo]:b[lo+1]]) {
		lo++
	}
	for hi > lo && isSpaceCluster(s[b[hi-1]:b[hi]]) {
		hi--
	}
	return s[b[lo]:b[hi]]
}

// Split slices s around non-overlapping occurrences of delimiter and
// returns the segments between them, scanning left to right. Occurrences
// must be aligned to grapheme cluster boundaries of s. Empty segments are
// preserved: adjacent delimiters produce an empty string element, and a
// string with no delimiter occurrence (including "") yields a single
// element. An empty delimiter splits s into its individual grapheme
// clusters.
func Split(s, delimiter string) []string {
	idx := NewGraphemeIndex(s)
	if delimiter == "" {
		b := idx.boundaries
		clusters := make([]string, 0, idx.ClusterCount())
		for i := 0; i < idx.ClusterCount(); i++ {
			clusters = append(clusters, s[b[i]:b[i+1]])
		}
		return clusters
	}
	parts := make([]string, 0, 4)
	from := 0
	for {
		at, _ := alignedIndex(idx, delimiter, from)
		if at < 0 {
			return append(parts, s[from:])
		}
		parts = append(parts, s[from:at])
		from = at + len(delimiter)
	}
}

// Join concatenates parts with separator inserted between consecutive
// elements. Join(nil, sep) == "" and a single part is returned as is. For a
// non-empty delimiter d, Join(Split(s, d), d) == s.
func Join(parts []string, separator string) string {
	return strings.Join(parts, separator)
}

// ReplaceAll returns s with every non-overlapping occurrence of old
// replaced by new, scanning left to right. Occurrences must be aligned to
// grapheme cluster boundaries of s. If old is empty or does not occur, s is
// returned unchanged; the empty pattern is never "found" for replacement
// purposes, unlike its treatment in IndexOf and Contains.
func ReplaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	idx := NewGraphemeIndex(s)
	at, _ := alignedIndex(idx, old, 0)
	if at < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	from := 0
	for at >= 0 {
		b.WriteString(s[from:at])
		b.WriteString(new)
		from = at + len(old)
		at, _ = alignedIndex(idx, old, from)
	}
	b.WriteString(s[from:])
	return b.String()
}

// alignedIndex finds the first occurrence of sub in the indexed string at or
// after byte offset from whose start and end both fall on grapheme cluster
// boundaries. It returns the byte offset and 1-based grapheme position of
// the occurrence, or (-1, 0) if there is none.
//
// A plain byte-level match may start or end inside a cluster, for example
// when searching for "e" in "e" + U+0301. Such a match is skipped and the
// scan resumes one byte further.
func alignedIndex(idx *GraphemeIndex, sub string, from int) (offset, position int) {
	s := idx.str
	for from+len(sub) <= len(s) {
		rel := strings.Index(s[from:], sub)
		if rel < 0 {
			break
		}
		at := from + rel
		if pos, ok := idx.position(at); ok && idx.isBoundary(at+len(sub)) {
			return at, pos
		}
		from = at + 1
	}
	return -1, 0
}

// isSpaceCluster reports whether every code point of the cluster is Unicode
// whitespace.
func isSpaceCluster(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
