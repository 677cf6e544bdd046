package melodraw

import "image/color"

// Stroke is one continuous drawn line: an ordered sequence of points plus the
// color and note it was drawn with. Progress is the fraction of the point
// sequence currently revealed, by index ratio, not arc length; it is 1 for a
// stroke that has just been drawn and is swept from 0 to 1 again during
// playback. A committed stroke is immutable except for Progress.
type Stroke struct {
	Color    color.NRGBA
	Note     Note
	Points   []Point
	Progress float32
}

// Visible returns the prefix of Points revealed at the current Progress: all
// points whose index fraction index/len(Points) is at most Progress. At
// Progress 0 this is a single point; at Progress 1 the whole stroke.
func (s *Stroke) Visible() []Point {
	n := len(s.Points)
	if n == 0 {
		return nil
	}
	count := int(s.Progress*float32(n)) + 1
	if count > n {
		count = n
	}
	if count < 1 {
		count = 1
	}
	return s.Points[:count]
}

// Copy makes a deep copy of the stroke, so that mutations to the original do
// not affect the copy.
func (s *Stroke) Copy() Stroke {
	points := make([]Point, len(s.Points))
	copy(points, s.Points)
	return Stroke{Color: s.Color, Note: s.Note, Points: points, Progress: s.Progress}
}
