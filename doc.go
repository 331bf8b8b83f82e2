/*
Package basicops implements a common library of elementary operations whose
observable behavior is reproduced identically across several implementation
languages, enabling cross-language parity testing.

The core of the package is its string operations: every position-based
operation counts user-perceived characters (extended grapheme clusters per
Unicode Standard Annex #29, https://unicode.org/reports/tr29/), uses 1-based
positions, and is total. No operation panics or returns an error for any
input; every boundary condition resolves to a documented safe value.

# Overview

Using this package, you can:
  - Measure and slice strings by grapheme cluster rather than by byte or rune
  - Search, split, and replace with occurrences aligned to cluster boundaries
  - Convert case, trim whitespace, and join string sequences
  - Evaluate the arithmetic, comparison, and logical primitives shared with
    the other language implementations

# Grapheme Clusters

A grapheme cluster is what users perceive as a single "character." For
example, the family emoji 👨‍👩‍👧‍👦 appears as one character but contains 7 Unicode
code points (25 bytes in UTF-8). Standard Go functions report misleading
values:

	len("👨‍👩‍👧‍👦")             // 25 (bytes)
	len([]rune("👨‍👩‍👧‍👦"))      // 7 (code points)
	basicops.Length("👨‍👩‍👧‍👦")  // 1 (what users see)

All position arguments and return values in this package count grapheme
clusters, starting at 1. [GraphemeIndex] exposes the underlying boundary
model for callers that make repeated position queries against one string.

# Totality and Clamping

Out-of-range positions never fail. [Substring] clamps its bounds to the
string, a reversed range yields "", [IndexOf] reports 0 for "not found",
and [ReplaceAll] with an empty pattern returns its input unchanged. The
clamping happens in [GraphemeIndex.Resolve], the single entry point through
which every position is interpreted.

# Boundary-Aligned Search

Substring search is literal (no patterns) and grapheme-aligned: a byte-level
match whose start or end falls inside a grapheme cluster of the searched
string is not an occurrence. For example, "é" built as "e" followed by a
combining accent does not contain "e".

# Parity Harness

The basicops-verify command evaluates YAML test-vector suites against this
implementation. The same vector files are consumed by the sibling
implementations in other languages; a suite passing everywhere demonstrates
behavioral parity.
*/
package basicops
