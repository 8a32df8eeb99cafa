package geom

import "fmt"

// Placement is the displayed size and position of an image inside its
// container, relative to the container's top-left corner.
type Placement struct {
	X, Y, W, H float64
}

// Offset translates p by the container origin.
func (p Placement) Offset(x, y float64) Placement {
	p.X += x
	p.Y += y
	return p
}

// Aspect returns width/height of an intrinsic size. A zero height yields 1
// so degenerate images still get a square placement.
func Aspect(intrinsic Size) float64 {
	if intrinsic.H == 0 {
		return 1
	}
	if intrinsic.W == 0 {
		return 1
	}
	return intrinsic.W / intrinsic.H
}

// Fit scales an image of the given intrinsic size to lie fully inside
// container, preserving its aspect ratio and centering it on both axes.
// The image is never cropped; it is fitted to the container width first and
// to the height when the width fit would be too tall.
func Fit(container, intrinsic Size) (Placement, error) {
	if err := container.Validate(); err != nil {
		return Placement{}, fmt.Errorf("geom: fit container: %w", err)
	}
	if err := intrinsic.Validate(); err != nil {
		return Placement{}, fmt.Errorf("geom: fit image: %w", err)
	}

	aspect := Aspect(intrinsic)

	w := container.W
	h := w / aspect
	if h > container.H {
		h = container.H
		w = h * aspect
	}

	return Placement{
		X: (container.W - w) / 2,
		Y: (container.H - h) / 2,
		W: w,
		H: h,
	}, nil
}

// FitInto is Fit against a positioned box; the result is in page coordinates.
func FitInto(box Rect, intrinsic Size) (Placement, error) {
	p, err := Fit(box.Size(), intrinsic)
	if err != nil {
		return Placement{}, err
	}
	return p.Offset(box.X, box.Y), nil
}

// ScaleToWidth returns the height an image takes when drawn at width w.
func ScaleToWidth(w float64, intrinsic Size) float64 {
	return w / Aspect(intrinsic)
}
