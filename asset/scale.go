package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// Downscale returns a copy of a reduced to at most maxPixels pixels with the
// aspect ratio kept. Assets already within the limit are returned as is.
func Downscale(a *Asset, maxPixels int) (*Asset, error) {
	if maxPixels <= 0 || a.Pixels() <= maxPixels {
		return a, nil
	}
	src, _, err := image.Decode(bytes.NewReader(a.Data))
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", a.Handle, err)
	}

	f := math.Sqrt(float64(maxPixels) / float64(a.Pixels()))
	w := max(1, int(float64(a.Width)*f))
	h := max(1, int(float64(a.Height)*f))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	format := a.Format
	switch format {
	case "jpg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90})
	default:
		format = "png"
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("asset: %s: encoding scaled image: %w", a.Handle, err)
	}
	return &Asset{Handle: a.Handle, Width: w, Height: h, Format: format, Data: buf.Bytes()}, nil
}

// Scratch owns the scaled copies made during one document build. Release
// drops them; callers defer it right after creating the scratch.
type Scratch struct {
	maxPixels int
	bufs      []*Asset
}

// NewScratch returns a scratch that downscales assets above maxPixels.
func NewScratch(maxPixels int) *Scratch {
	return &Scratch{maxPixels: maxPixels}
}

// Prepare returns a, or a scaled copy of it tracked by the scratch.
func (s *Scratch) Prepare(a *Asset) (*Asset, error) {
	out, err := Downscale(a, s.maxPixels)
	if err != nil {
		return nil, err
	}
	if out != a {
		s.bufs = append(s.bufs, out)
	}
	return out, nil
}

// Len returns the number of scaled copies held.
func (s *Scratch) Len() int { return len(s.bufs) }

// Release drops every scaled copy.
func (s *Scratch) Release() {
	for _, b := range s.bufs {
		b.Data = nil
	}
	s.bufs = nil
}
