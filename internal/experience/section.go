package experience

import "math"

// SectionTracker maps a scroll offset to a section index and reports
// changes.
type SectionTracker struct {
	current int
}

// Current returns the current section index.
func (s *SectionTracker) Current() int { return s.current }

// OnScroll recomputes the section as round(scroll/viewport). It reports
// whether the section changed and the new index. A non-positive viewport
// reports no change.
func (s *SectionTracker) OnScroll(scrollPx, viewportPx float64) (bool, int) {
	if !(viewportPx > 0) || math.IsNaN(scrollPx) || math.IsInf(scrollPx, 0) {
		return false, s.current
	}
	candidate := int(math.Round(scrollPx / viewportPx))
	if candidate < 0 {
		candidate = 0
	}
	if candidate == s.current {
		return false, s.current
	}
	s.current = candidate
	return true, candidate
}

// MeshIndex wraps a section index onto n section meshes. It returns -1 when
// there are no meshes.
func MeshIndex(section, n int) int {
	if n <= 0 {
		return -1
	}
	i := section % n
	if i < 0 {
		i += n
	}
	return i
}
