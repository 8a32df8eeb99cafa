// Package asset loads the raster images placed in a dossier.
//
// An Asset is an encoded image with its pixel dimensions known up front, so
// layout can fit it without decoding. JPEG, PNG and GIF data is kept as is;
// WebP, BMP and TIFF are decoded once and re-encoded as PNG so that any PDF
// writer can embed them.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/jetspec/dossier/geom"
)

// ErrEmpty is returned for an empty image buffer.
var ErrEmpty = errors.New("asset: empty image data")

// Asset is an encoded raster image.
type Asset struct {
	Handle string // identifies the image in draw commands
	Width  int    // pixel width
	Height int    // pixel height
	Format string // "jpg", "png" or "gif"
	Data   []byte
}

// Size returns the intrinsic size used by the image fitter.
func (a *Asset) Size() geom.Size {
	return geom.Size{W: float64(a.Width), H: float64(a.Height)}
}

// Pixels returns Width*Height.
func (a *Asset) Pixels() int { return a.Width * a.Height }

// Decode inspects data and returns an asset identified by handle.
func Decode(handle string, data []byte) (*Asset, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", handle, err)
	}

	a := &Asset{Handle: handle, Width: cfg.Width, Height: cfg.Height, Data: data}
	switch format {
	case "jpeg":
		a.Format = "jpg"
	case "png", "gif":
		a.Format = format
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("asset: %s: %w", handle, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("asset: %s: re-encoding %s: %w", handle, format, err)
		}
		a.Format = "png"
		a.Data = buf.Bytes()
	}
	return a, nil
}

// Load reads the image at path. The file name becomes the handle.
func Load(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	return Decode(filepath.Base(path), data)
}

// LoadAll loads paths in order. Files sharing a base name get distinct
// handles.
func LoadAll(paths ...string) ([]*Asset, error) {
	out := make([]*Asset, 0, len(paths))
	seen := make(map[string]int, len(paths))
	for _, p := range paths {
		a, err := Load(p)
		if err != nil {
			return nil, err
		}
		if n := seen[a.Handle]; n > 0 {
			seen[a.Handle]++
			a.Handle = fmt.Sprintf("%s#%d", a.Handle, n+1)
		} else {
			seen[a.Handle] = 1
		}
		out = append(out, a)
	}
	return out, nil
}
