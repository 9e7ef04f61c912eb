package tinyregex

// Match is a single match result: the half-open byte range [Start, End) of
// source, which Match borrows rather than copies. It must not outlive the
// string it was produced from.
type Match struct {
	source     string
	start, end int
}

// Start returns the byte offset of the first scalar of the match.
func (m Match) Start() int { return m.start }

// End returns the byte offset just past the last scalar of the match.
func (m Match) End() int { return m.end }

// Range returns (Start(), End()).
func (m Match) Range() (start, end int) { return m.start, m.end }

// AsStr returns the matched substring, exactly source[Start():End()].
func (m Match) AsStr() string { return m.source[m.start:m.end] }

// IsEmpty reports whether the match has zero length.
func (m Match) IsEmpty() bool { return m.start == m.end }

// Len returns the byte length of the match, End()-Start().
func (m Match) Len() int { return m.end - m.start }
