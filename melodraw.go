// Package melodraw contains the core data model of the melodraw toy: strokes
// drawn on a canvas, each carrying a color and a musical note, and the bundled
// sound assets used to play the notes back. The packages under sketch/ build
// the interactive application on top of these types.
package melodraw

// Point is a position on the canvas, in logical canvas units. The canvas is
// CanvasWidth x CanvasHeight logical units regardless of the window size; the
// GUI scales it to fit.
type Point struct {
	X, Y float32
}

// Logical canvas dimensions and stroke width. These are presentation
// constants; the stroke data itself is resolution independent.
const (
	CanvasWidth  = 1000
	CanvasHeight = 800
	StrokeWidth  = 8
)
