package surface

import (
	"errors"
	"fmt"
)

// ErrNoFont is recorded when text is drawn before a font has been set.
var ErrNoFont = errors.New("surface: font has not been set")

// ErrNoPage is recorded when drawing without a current page.
var ErrNoPage = errors.New("surface: no current page")

// RenderContext carries the drawing state (current page, font, colors,
// opacity) that layout code mutates through explicit setters. Nothing
// carries over silently between sections: Reset clears the font, so a
// section that draws text without first calling SetFont records ErrNoFont.
//
// Errors are sticky. The first failure is kept and later calls are no-ops;
// check Err after a sequence of drawing calls.
type RenderContext struct {
	measurer Measurer
	page     *Page
	font     Font
	text     Color
	fill     Color
	alpha    float64
	err      error
}

// NewRenderContext returns a context measuring text with m.
func NewRenderContext(m Measurer) *RenderContext {
	c := &RenderContext{measurer: m}
	c.Reset()
	return c
}

// Reset clears font, colors and opacity. The current page is kept.
func (c *RenderContext) Reset() {
	c.font = Font{}
	c.text = Color{}
	c.fill = Color{}
	c.alpha = 1
}

// SetPage makes p the target of subsequent draw calls.
func (c *RenderContext) SetPage(p *Page) { c.page = p }

// Page returns the current target page.
func (c *RenderContext) Page() *Page { return c.page }

// SetFont sets the font used by Text and StringWidth.
func (c *RenderContext) SetFont(family Family, style string, size float64) {
	c.font = Font{Family: family, Style: style, Size: size}
}

// SetFontSize changes only the size of the current font.
func (c *RenderContext) SetFontSize(size float64) { c.font.Size = size }

// Font returns the current font.
func (c *RenderContext) Font() Font { return c.font }

// SetTextColor sets the color of subsequent text runs.
func (c *RenderContext) SetTextColor(col Color) { c.text = col }

// SetFillColor sets the fill of subsequent rectangles.
func (c *RenderContext) SetFillColor(col Color) { c.fill = col }

// SetAlpha sets the fill opacity of subsequent rectangles, clamped to [0,1].
func (c *RenderContext) SetAlpha(a float64) {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.alpha = a
}

// StringWidth measures s in the current font.
func (c *RenderContext) StringWidth(s string) float64 {
	if c.measurer == nil || c.font.Size <= 0 {
		return 0
	}
	return c.measurer.StringWidth(c.font, s)
}

// Measurer returns the measurer used by the context.
func (c *RenderContext) Measurer() Measurer { return c.measurer }

// Text draws s in a line box of height h with its top-left corner at x,y.
// Empty strings draw nothing.
func (c *RenderContext) Text(x, y, h float64, s string) {
	if s == "" || c.err != nil {
		return
	}
	if c.font.Size <= 0 || c.font.Family == "" {
		c.fail("Text", ErrNoFont)
		return
	}
	c.append("Text", Text{X: x, Y: y, H: h, Font: c.font, Color: c.text, Str: s})
}

// TextCentered draws s horizontally centered on the span [x, x+w].
func (c *RenderContext) TextCentered(x, y, w, h float64, s string) {
	c.Text(x+(w-c.StringWidth(s))/2, y, h, s)
}

// Rect draws a filled rectangle with the current fill color and opacity.
func (c *RenderContext) Rect(x, y, w, h float64) {
	if c.err != nil || w <= 0 || h <= 0 {
		return
	}
	c.append("Rect", Rect{X: x, Y: y, W: w, H: h, Fill: c.fill, Alpha: c.alpha})
}

// Image draws the asset handle into the box x,y,w,h.
func (c *RenderContext) Image(handle string, x, y, w, h float64) {
	if c.err != nil || handle == "" {
		return
	}
	c.append("Image", Image{Handle: handle, X: x, Y: y, W: w, H: h})
}

// Err reports whether an error has been recorded.
func (c *RenderContext) Err() bool { return c.err != nil }

// Error returns the recorded error, if any.
func (c *RenderContext) Error() error { return c.err }

func (c *RenderContext) append(op string, cmd Command) {
	if c.page == nil {
		c.fail(op, ErrNoPage)
		return
	}
	if err := c.page.Append(cmd); err != nil {
		c.fail(op, err)
	}
}

func (c *RenderContext) fail(op string, err error) {
	if c.err == nil {
		c.err = fmt.Errorf("surface.%s: %w", op, err)
	}
}
