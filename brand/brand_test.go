package brand_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/surface"
)

func TestDefaultPalette(t *testing.T) {
	b := brand.Default()
	assert.Equal(t, surface.Color{R: 212, G: 175, B: 55}, b.Palette.Accent)
	assert.Equal(t, surface.Color{R: 5, G: 5, B: 5}, b.Palette.Background)
	assert.Equal(t, surface.Color{R: 220, G: 220, B: 220}, b.Palette.Body)
	assert.Nil(t, b.Logo)
	assert.Len(t, b.Contact.Lines(), 4)
}

func TestParseColor(t *testing.T) {
	c, err := brand.ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, surface.Color{R: 255, G: 255, B: 255}, c)

	_, err = brand.ParseColor("gold")
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 50, 20))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), buf.Bytes(), 0o644))

	cfg := `{
		"name": "Acme Jets",
		"logo": "logo.png",
		"colors": {"accent": "#c0c0c0"},
		"contact": {"email": "sales@acme.test", "website": "acme.test"}
	}`
	path := filepath.Join(dir, "brand.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	b, err := brand.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Jets", b.Name)
	assert.Equal(t, surface.Color{R: 192, G: 192, B: 192}, b.Palette.Accent)
	assert.Equal(t, brand.Default().Palette.Body, b.Palette.Body)
	assert.Equal(t, []string{"sales@acme.test", "acme.test"}, b.Contact.Lines())
	require.NotNil(t, b.Logo)
	assert.Equal(t, 50, b.Logo.Width)
	assert.Equal(t, "Specification subject to verification", b.Footer)
}

func TestParseErrors(t *testing.T) {
	_, err := brand.Parse([]byte(`{"colors": {"neon": "#ff00ff"}}`), "")
	assert.Error(t, err)

	_, err = brand.Parse([]byte(`{"colors": {"accent": "nope"}}`), "")
	assert.Error(t, err)

	_, err = brand.Parse([]byte(`{"logo": "missing.png"}`), t.TempDir())
	assert.Error(t, err)
}
