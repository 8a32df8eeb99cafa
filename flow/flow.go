// Package flow lays out paragraph units inside a fixed-width column.
//
// A Flow tracks the vertical cursor of one column across the pages of a
// document section. Before each block header and before each paragraph it
// checks whether the content still fits; when it does not, the flow moves to
// the section's next page (asking its Pager to create it if needed) and
// continues at the top offset. A single paragraph is never split across
// pages.
package flow

import (
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Pager hands out the pages of the section being laid out. Page(i) returns
// the i-th page of the section, creating it when i equals the number of
// pages handed out so far.
type Pager interface {
	Page(i int) *surface.Page
}

// Style describes how a column renders headers, bullets and body text.
type Style struct {
	Heading      surface.Font
	HeadingColor surface.Color
	HeadingH     float64 // line height of a block header

	Body      surface.Font
	BodyColor surface.Color
	LineH     float64 // line height of body text

	Marker      surface.Font
	MarkerColor surface.Color
	MarkerGlyph string
	MarkerW     float64 // width reserved for the marker glyph
	MarkerGap   float64 // space between marker and text

	BlockGap float64 // vertical gap after a block

	// Uppercase transforms every unit's text before wrapping.
	Uppercase bool
}

// Limits holds the page-break policy of a flow.
type Limits struct {
	Top       float64 // cursor Y on a continuation page
	Threshold float64 // a block never starts below this Y
	Bottom    float64 // no line may extend below this Y
}

// DefaultLimits returns the standard page-break policy.
func DefaultLimits() Limits {
	return Limits{
		Top:       geom.ContentTop,
		Threshold: geom.OverflowY,
		Bottom:    geom.UsableBottom(),
	}
}

// Cursor is the mutable position of a column.
type Cursor struct {
	X, Y   float64
	Width  float64
	Page   int     // index of the page within the section
	Height float64 // total height of content placed so far
}

// Flow places paragraph units into one column.
type Flow struct {
	ctx    *surface.RenderContext
	pager  Pager
	style  Style
	limits Limits
	cur    Cursor
	breaks int
}

// New returns a flow for column col starting at page 0 and cursor y.
func New(ctx *surface.RenderContext, pager Pager, col geom.Column, style Style, y float64, limits Limits) *Flow {
	return &Flow{
		ctx:    ctx,
		pager:  pager,
		style:  style,
		limits: limits,
		cur:    Cursor{X: col.X, Y: y, Width: col.Width},
	}
}

// Cursor returns the current column state.
func (f *Flow) Cursor() Cursor { return f.cur }

// Y returns the current cursor position.
func (f *Flow) Y() float64 { return f.cur.Y }

// Breaks returns how many page breaks the flow has taken.
func (f *Flow) Breaks() int { return f.breaks }

// PlaceBlock draws an optional uppercase header followed by units, then
// advances the cursor by the block gap. It returns the new cursor Y.
func (f *Flow) PlaceBlock(title string, units []segment.Unit) float64 {
	if title == "" && len(units) == 0 {
		return f.cur.Y
	}

	need := 0.0
	if title != "" {
		need += f.style.HeadingH
	}
	if len(units) > 0 {
		need += f.unitHeight(units[0])
	}
	if f.cur.Y > f.limits.Threshold || !f.fits(need) {
		f.nextPage()
	}

	if title != "" {
		f.target()
		f.ctx.SetFont(f.style.Heading.Family, f.style.Heading.Style, f.style.Heading.Size)
		f.ctx.SetTextColor(f.style.HeadingColor)
		f.ctx.Text(f.cur.X, f.cur.Y, f.style.HeadingH, segment.Upper(title))
		f.advance(f.style.HeadingH)
	}

	f.Place(units)
	f.advance(f.style.BlockGap)
	return f.cur.Y
}

// Place draws units top to bottom and returns the final cursor Y.
func (f *Flow) Place(units []segment.Unit) float64 {
	for _, u := range units {
		if !f.fits(f.unitHeight(u)) {
			f.nextPage()
		}
		f.placeUnit(u)
	}
	return f.cur.Y
}

func (f *Flow) placeUnit(u segment.Unit) {
	f.target()

	text := u.Text
	if f.style.Uppercase {
		text = segment.Upper(text)
	}

	x, width := f.cur.X, f.cur.Width
	if u.Kind == segment.Bullet {
		f.ctx.SetFont(f.style.Marker.Family, f.style.Marker.Style, f.style.Marker.Size)
		f.ctx.SetTextColor(f.style.MarkerColor)
		f.ctx.Text(x, f.cur.Y, f.style.LineH, f.style.MarkerGlyph)
		x, width = f.textColumn()
	}

	f.ctx.SetFont(f.style.Body.Family, f.style.Body.Style, f.style.Body.Size)
	f.ctx.SetTextColor(f.style.BodyColor)
	for _, line := range Wrap(f.ctx.Measurer(), f.style.Body, text, width) {
		f.ctx.Text(x, f.cur.Y, f.style.LineH, line)
		f.advance(f.style.LineH)
	}
}

// textColumn returns the x and width left for bullet text.
func (f *Flow) textColumn() (float64, float64) {
	indent := f.style.MarkerW + f.style.MarkerGap
	return f.cur.X + indent, f.cur.Width - indent
}

// unitHeight is the height u takes once wrapped.
func (f *Flow) unitHeight(u segment.Unit) float64 {
	text := u.Text
	if f.style.Uppercase {
		text = segment.Upper(text)
	}
	width := f.cur.Width
	if u.Kind == segment.Bullet {
		_, width = f.textColumn()
	}
	n := len(Wrap(f.ctx.Measurer(), f.style.Body, text, width))
	return float64(n) * f.style.LineH
}

// fits reports whether content of height h can be placed at the cursor.
// Content taller than a whole page is placed anyway once at the page top.
func (f *Flow) fits(h float64) bool {
	if f.cur.Y <= f.limits.Top {
		return true
	}
	return f.cur.Y+h <= f.limits.Bottom
}

func (f *Flow) nextPage() {
	f.cur.Page++
	f.cur.Y = f.limits.Top
	f.breaks++
	f.target()
}

func (f *Flow) advance(h float64) {
	f.cur.Y += h
	f.cur.Height += h
}

// target points the shared render context at this column's page.
func (f *Flow) target() {
	f.ctx.SetPage(f.pager.Page(f.cur.Page))
}
