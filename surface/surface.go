// Package surface defines the drawing-surface abstraction the layout engine
// writes to. A Document is an ordered list of Pages; a Page is an ordered
// list of primitive draw commands (text runs, filled rectangles, images).
//
// The package never produces bytes. Serializing a Document to a file format
// is done by a renderer such as the render package.
package surface

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Family is an abstract font family. Renderers map it to a concrete face.
type Family string

// Font families used by the dossier.
const (
	Serif Family = "serif"
	Sans  Family = "sans"
)

// Font specifies the face used for a text run.
type Font struct {
	Family Family
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Measurer reports the advance width of a string in page units.
// Implementations are provided by the renderer that will draw the text, so
// that wrapping decisions match the final output.
type Measurer interface {
	StringWidth(f Font, s string) float64
}

// Command is a single draw operation on a page.
type Command interface {
	command()
}

// Text draws a single line of text. X,Y is the top-left corner of the line
// box and H its height; the glyphs are vertically centered in the box.
type Text struct {
	X, Y, H float64
	Font    Font
	Color   Color
	Str     string
}

// Rect draws a filled rectangle. Alpha is the fill opacity in [0,1].
type Rect struct {
	X, Y, W, H float64
	Fill       Color
	Alpha      float64
}

// Image draws the asset identified by Handle into the given box.
type Image struct {
	Handle     string
	X, Y, W, H float64
}

func (Text) command()  {}
func (Rect) command()  {}
func (Image) command() {}
