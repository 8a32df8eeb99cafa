package render_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetspec/dossier"
	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/render"
	"github.com/jetspec/dossier/surface"
)

func TestMain(m *testing.M) {
	api.DisableConfigDir()
	os.Exit(m.Run())
}

func pngAsset(t *testing.T, handle string, w, h int) *asset.Asset {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	a, err := asset.Decode(handle, buf.Bytes())
	require.NoError(t, err)
	return a
}

func metrics(t *testing.T) *render.Metrics {
	t.Helper()
	m, err := render.NewMetrics(render.CoreFonts())
	require.NoError(t, err)
	return m
}

func buildDossier(t *testing.T, images []*asset.Asset) *surface.Document {
	t.Helper()
	rec := &record.Record{
		Make:       "Gulfstream",
		Model:      "G650",
		Year:       "2016",
		Tagline:    "Ultra long range",
		KeySpecs:   []record.Spec{{Label: "Range", Value: "7000nm"}},
		Highlights: []record.Highlight{{Point: "Low hours"}},
		Avionics:   "PlaneView II\nDual FMS",
	}
	doc, err := dossier.Build(context.Background(), rec, images,
		dossier.WithVariant(dossier.Clean),
		dossier.WithMeasurer(metrics(t)),
	)
	require.NoError(t, err)
	return doc
}

func write(t *testing.T, doc *surface.Document, assets []*asset.Asset, opts ...render.Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, doc, assets, opts...))
	return buf.Bytes()
}

func TestWriteReadsBack(t *testing.T) {
	imgs := []*asset.Asset{pngAsset(t, "hero", 64, 36), pngAsset(t, "side", 48, 48)}
	doc := buildDossier(t, imgs)
	out := write(t, doc, imgs, render.WithCompression(false))

	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	rep, err := render.Inspect(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Equal(t, doc.NumPages(), rep.Pages)

	var galleryPage int
	for i, p := range doc.Pages {
		if p.Section() == "gallery" && galleryPage == 0 {
			galleryPage = i + 1
		}
	}
	require.NotZero(t, galleryPage)
	assert.True(t, rep.Contains(galleryPage, "VIEW 1"), rep.Text[galleryPage-1])
	assert.True(t, rep.Contains(1, "G650"))
}

func TestWriteFileAndValidate(t *testing.T) {
	imgs := []*asset.Asset{pngAsset(t, "hero", 32, 18)}
	doc := buildDossier(t, imgs)
	path := filepath.Join(t.TempDir(), "dossier.pdf")
	require.NoError(t, render.WriteFile(path, doc, imgs,
		render.WithCreationDate(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))))

	n, err := render.PageCount(path)
	require.NoError(t, err)
	assert.Equal(t, doc.NumPages(), n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.NoError(t, render.Validate(f))
}

func TestUnknownImageHandle(t *testing.T) {
	p := surface.NewPage("gallery")
	require.NoError(t, p.Append(surface.Image{Handle: "missing", X: 10, Y: 10, W: 50, H: 50}))
	doc := &surface.Document{Pages: []*surface.Page{p}}

	err := render.Write(&bytes.Buffer{}, doc, nil)
	assert.ErrorIs(t, err, render.ErrUnknownImage)
	assert.Contains(t, err.Error(), "page 1")
}

func TestAppendix(t *testing.T) {
	imgs := []*asset.Asset{pngAsset(t, "hero", 32, 18)}
	base := buildDossier(t, imgs)

	extra := &surface.Document{}
	for _, name := range []string{"a", "b"} {
		p := surface.NewPage(name)
		require.NoError(t, p.Append(surface.Rect{X: 10, Y: 10, W: 50, H: 20, Alpha: 1}))
		extra.Pages = append(extra.Pages, p)
	}
	path := filepath.Join(t.TempDir(), "appendix.pdf")
	require.NoError(t, render.WriteFile(path, extra, nil))

	out := write(t, base, imgs, render.WithAppendix(path))
	n, err := api.PageCount(bytes.NewReader(out), model.NewDefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, base.NumPages()+2, n)
}

func TestAppendixMissing(t *testing.T) {
	doc := &surface.Document{Pages: []*surface.Page{surface.NewPage("cover")}}
	err := render.Write(&bytes.Buffer{}, doc, nil, render.WithAppendix(filepath.Join(t.TempDir(), "none.pdf")))
	assert.Error(t, err)
}

func TestOptimize(t *testing.T) {
	imgs := []*asset.Asset{pngAsset(t, "hero", 32, 18)}
	doc := buildDossier(t, imgs)
	out := write(t, doc, imgs, render.WithOptimize(true))

	n, err := api.PageCount(bytes.NewReader(out), model.NewDefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, doc.NumPages(), n)
}

func TestMaxImagePixels(t *testing.T) {
	imgs := []*asset.Asset{pngAsset(t, "hero", 200, 100)}
	doc := buildDossier(t, imgs)
	small := write(t, doc, imgs, render.WithMaxImagePixels(500))
	full := write(t, doc, imgs)
	assert.Less(t, len(small), len(full))
	assert.NotNil(t, imgs[0].Data, "caller's asset is untouched")
}

func TestMetrics(t *testing.T) {
	m := metrics(t)
	regular := surface.Font{Family: surface.Sans, Size: 10}
	bold := surface.Font{Family: surface.Sans, Style: "B", Size: 10}

	w := m.StringWidth(regular, "GULFSTREAM")
	assert.Greater(t, w, 0.0)
	assert.Greater(t, m.StringWidth(regular, "GULFSTREAM G650"), w)
	assert.GreaterOrEqual(t, m.StringWidth(bold, "GULFSTREAM"), w)
	assert.InDelta(t, 2*w, m.StringWidth(surface.Font{Family: surface.Sans, Size: 20}, "GULFSTREAM"), 1e-6)
	assert.Zero(t, m.StringWidth(regular, ""))
	assert.Zero(t, m.StringWidth(surface.Font{Family: surface.Serif}, "x"))
}

func TestResolveFonts(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, render.CoreFonts(), render.ResolveFonts(dir))
	assert.Equal(t, render.CoreFonts(), render.ResolveFonts(""))

	for _, name := range []string{"Manrope-Regular.ttf", "Manrope-Bold.ttf", "PlayfairDisplay-Regular.ttf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	fs := render.ResolveFonts(dir)
	assert.True(t, fs.Sans.Embedded())
	assert.Equal(t, "Manrope", fs.Sans.Family)
	assert.False(t, fs.Serif.Embedded(), "serif needs both weights")
	assert.Equal(t, "Times", fs.Serif.Family)
	assert.True(t, strings.HasSuffix(fs.Sans.Bold, "Manrope-Bold.ttf"))
}
