// Package barcode turns QR and PDF417 symbols into module matrices that can
// be drawn as plain filled rectangles.
//
// Symbols are never rasterized into the document: each horizontal run of
// dark modules becomes one rectangle, so the codes stay sharp at any zoom
// and the layout engine keeps dealing only in draw commands.
package barcode

import (
	"errors"
	"fmt"
	"image"

	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/surface"
)

// ErrEmpty is returned when encoding an empty payload.
var ErrEmpty = errors.New("barcode: empty content")

// PDF417 symbol parameters.
const (
	pdf417Columns  = 4
	pdf417Security = 2
)

// Matrix is a grid of modules, true for dark.
type Matrix struct {
	Cols, Rows int
	dark       []bool
}

// FromImage samples one module per pixel of img. A pixel is dark when its
// average intensity is below half.
func FromImage(img image.Image) Matrix {
	b := img.Bounds()
	m := Matrix{Cols: b.Dx(), Rows: b.Dy(), dark: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.dark[y*m.Cols+x] = (r+g+bl)/3 < 0x8000
		}
	}
	return m
}

// Dark reports whether the module at x,y is dark.
func (m Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Cols || y >= m.Rows {
		return false
	}
	return m.dark[y*m.Cols+x]
}

// Run is a horizontal span of dark modules.
type Run struct {
	X, Y, Len int
}

// Runs returns every maximal horizontal run of dark modules, row by row.
func (m Matrix) Runs() []Run {
	var out []Run
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; {
			if !m.Dark(x, y) {
				x++
				continue
			}
			start := x
			for x < m.Cols && m.Dark(x, y) {
				x++
			}
			out = append(out, Run{X: start, Y: y, Len: x - start})
		}
	}
	return out
}

// QR encodes content as a QR code with medium error correction.
func QR(content string) (Matrix, error) {
	if content == "" {
		return Matrix{}, ErrEmpty
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return Matrix{}, fmt.Errorf("barcode: qr: %w", err)
	}
	return FromImage(code), nil
}

// PDF417 encodes content as a PDF417 symbol.
func PDF417(content string) (Matrix, error) {
	if content == "" {
		return Matrix{}, ErrEmpty
	}
	var code image.Image = pdf417.Encode(content, pdf417Columns, pdf417Security)
	return FromImage(code), nil
}

// Draw paints the matrix stretched over box: a light plate with a quiet
// zone of quiet modules on every side, then one rectangle per dark run.
func (m Matrix) Draw(ctx *surface.RenderContext, box geom.Rect, quiet int, light, dark surface.Color) {
	if m.Cols == 0 || m.Rows == 0 {
		return
	}
	mw := box.W / float64(m.Cols+2*quiet)
	mh := box.H / float64(m.Rows+2*quiet)

	ctx.SetAlpha(1)
	ctx.SetFillColor(light)
	ctx.Rect(box.X, box.Y, box.W, box.H)

	ctx.SetFillColor(dark)
	ox := box.X + float64(quiet)*mw
	oy := box.Y + float64(quiet)*mh
	for _, r := range m.Runs() {
		ctx.Rect(ox+float64(r.X)*mw, oy+float64(r.Y)*mh, float64(r.Len)*mw, mh)
	}
}
