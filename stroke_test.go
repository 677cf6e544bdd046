package melodraw

import "testing"

func TestStrokeVisible(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}}
	cases := []struct {
		progress float32
		count    int
	}{
		{0, 1},
		{0.1, 1},
		{0.2, 2},
		{0.5, 3},
		{0.8, 5},
		{1, 5},
	}
	for _, tc := range cases {
		s := Stroke{Points: points, Progress: tc.progress}
		visible := s.Visible()
		if len(visible) != tc.count {
			t.Errorf("progress %v: expected %d visible points, got %d", tc.progress, tc.count, len(visible))
		}
		for i, p := range visible {
			if p != points[i] {
				t.Errorf("progress %v: point %d is %v, expected %v", tc.progress, i, p, points[i])
			}
		}
	}
}

func TestStrokeVisibleEmpty(t *testing.T) {
	s := Stroke{Progress: 1}
	if got := s.Visible(); got != nil {
		t.Fatalf("expected nil for a stroke with no points, got %v", got)
	}
}

func TestStrokeCopy(t *testing.T) {
	orig := Stroke{
		Note:     NoteF,
		Points:   []Point{{1, 2}, {3, 4}},
		Progress: 0.5,
	}
	cpy := orig.Copy()
	orig.Points[0] = Point{9, 9}
	if cpy.Points[0] != (Point{1, 2}) {
		t.Fatal("expected the copy to own its points")
	}
	if cpy.Note != orig.Note || cpy.Progress != orig.Progress {
		t.Fatal("expected note and progress to be copied")
	}
}
