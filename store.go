package uri

import "strings"

// Store is the caller-owned byte buffer that backs the views of a Parts
// returned by Encode or Decode. Reserve should be called exactly once
// before any Append, sized to the total bytes the caller intends to
// write, so that no reallocation happens mid-write: reallocating while
// an earlier String() snapshot is still referenced by a live field view
// would silently corrupt that view once new bytes land in the old
// backing array. Append records a (start, end) range; callers must wait
// until every Append is done and take exactly one final String() before
// slicing those ranges into field values.
type Store struct {
	b strings.Builder
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// Reset discards any content written so far.
func (s *Store) Reset() { s.b.Reset() }

// Reserve grows the Store's capacity to at least n bytes without copying
// on every subsequent Append.
func (s *Store) Reserve(n int) { s.b.Grow(n) }

// Len returns the number of bytes written so far.
func (s *Store) Len() int { return s.b.Len() }

// Append writes text to the Store and returns the byte range it now
// occupies, stable once String is called afterward (not before).
func (s *Store) Append(text string) (start, end int) {
	start = s.b.Len()
	s.b.WriteString(text)
	return start, s.b.Len()
}

// String returns the Store's full content. Call it once, after every
// Append for the current operation has completed.
func (s *Store) String() string { return s.b.String() }
