// Package geom holds the page geometry of a dossier: the landscape page box,
// its margins and content columns, and the contain-fit used to place images.
//
// All values are in millimetres on an A4 landscape sheet. The constants are
// layout policy rather than derived values; they keep two-column text clear
// of the gallery and hero image bleed.
package geom

import (
	"errors"
	"fmt"
)

// ErrNegative is returned for geometry with a negative width or height.
var ErrNegative = errors.New("geom: negative dimension")

// Page box.
const (
	PageWidth  = 297.0
	PageHeight = 210.0
)

// Margins and reserved bands.
const (
	ContentTop    = 20.0 // first baseline area of a content page
	SideMargin    = 15.0
	FooterReserve = 12.0
	BottomMargin  = 15.0

	// OverflowY is the cursor position past which a new block starts on a
	// fresh page.
	OverflowY = 180.0
)

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Validate reports an error wrapping ErrNegative if either side is negative.
func (s Size) Validate() error {
	if s.W < 0 || s.H < 0 {
		return fmt.Errorf("%w: %gx%g", ErrNegative, s.W, s.H)
	}
	return nil
}

// Rect is an axis-aligned box with its top-left corner at X,Y.
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the Y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Size returns the width and height of r.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// PageBox is the full page rectangle.
func PageBox() Rect {
	return Rect{W: PageWidth, H: PageHeight}
}

// UsableBottom is the lowest Y a content line may reach.
func UsableBottom() float64 {
	return PageHeight - BottomMargin
}

// FooterY is the top of the footer band.
func FooterY() float64 {
	return PageHeight - FooterReserve
}

// Column is a vertical strip of a page that text flows into.
type Column struct {
	X     float64
	Width float64
}

// Right returns the right edge of the column.
func (c Column) Right() float64 { return c.X + c.Width }

// Content columns for two-column prose pages.
var (
	LeftColumn  = Column{X: SideMargin, Width: 130}
	RightColumn = Column{X: 155, Width: 130}
)

// Columns of the specifications page: the card grid on the left and the
// asset summary on the right.
var (
	SpecGridColumn = Column{X: SideMargin, Width: 120}
	SummaryColumn  = Column{X: 145, Width: 132}
)

// RuleWidth is the width of a section title divider on a two-column page.
func RuleWidth() float64 {
	return PageWidth - 2*SideMargin
}
