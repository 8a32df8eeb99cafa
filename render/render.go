// Package render serializes a surface.Document to PDF.
//
// The writer replays every page's draw commands onto a gofpdf document,
// embeds the referenced images, and can append the pages of an existing PDF
// and post-process the result with pdfcpu. Metrics, built from the same
// FontSet, is the text measurer the layout engine must use so that line
// breaks match the output.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/surface"
)

// ErrUnknownImage is returned when a page draws an image handle that was
// not supplied.
var ErrUnknownImage = errors.New("render: unknown image handle")

// Option is a functional option for Write.
type Option func(*config)

type config struct {
	fonts     *FontSet
	fontDir   string
	compress  bool
	appendix  string
	optimize  bool
	maxPixels int
	created   time.Time
}

// WithFontDir sets the directory searched for TrueType files.
func WithFontDir(dir string) Option {
	return func(c *config) {
		c.fontDir = dir
	}
}

// WithFonts sets the font set directly, overriding WithFontDir.
func WithFonts(fs FontSet) Option {
	return func(c *config) {
		c.fonts = &fs
	}
}

// WithCompression enables or disables page stream compression.
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}

// WithAppendix appends every page of the PDF at path after the dossier.
func WithAppendix(path string) Option {
	return func(c *config) {
		c.appendix = path
	}
}

// WithOptimize runs the output through pdfcpu's optimizer.
func WithOptimize(on bool) Option {
	return func(c *config) {
		c.optimize = on
	}
}

// WithMaxImagePixels downscales images above n pixels before embedding.
// Zero keeps images as supplied.
func WithMaxImagePixels(n int) Option {
	return func(c *config) {
		c.maxPixels = n
	}
}

// WithCreationDate fixes the creation date in the document information.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.created = t
	}
}

func (c *config) fontSet() FontSet {
	if c.fonts != nil {
		return *c.fonts
	}
	return ResolveFonts(c.fontDir)
}

// Write renders doc as PDF to w. assets must hold every image handle the
// pages draw.
func Write(w io.Writer, doc *surface.Document, assets []*asset.Asset, opts ...Option) error {
	cfg := &config{compress: true}
	for _, opt := range opts {
		opt(cfg)
	}

	fs := cfg.fontSet()
	pdf, err := newPDF(fs)
	if err != nil {
		return err
	}
	pdf.SetCompression(cfg.compress)
	setMetadata(pdf, doc.Meta, cfg)

	scratch := asset.NewScratch(cfg.maxPixels)
	defer scratch.Release()

	known, err := registerImages(pdf, scratch, assets)
	if err != nil {
		return err
	}

	p := &painter{pdf: pdf, fonts: fs, enc: newEncoder(pdf, fs), images: known}
	for i, page := range doc.Pages {
		pdf.AddPage()
		for _, cmd := range page.Commands() {
			if err := p.draw(cmd); err != nil {
				return fmt.Errorf("render: page %d: %w", i+1, err)
			}
		}
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("render: page %d: %w", i+1, err)
		}
	}

	if cfg.appendix != "" {
		if err := appendPDF(pdf, cfg.appendix); err != nil {
			return err
		}
	}

	if !cfg.optimize {
		return pdf.Output(w)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return err
	}
	return optimize(bytes.NewReader(buf.Bytes()), w)
}

// WriteFile renders doc to the file at path.
func WriteFile(path string, doc *surface.Document, assets []*asset.Asset, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err := Write(f, doc, assets, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func setMetadata(pdf *gofpdf.Fpdf, m surface.Metadata, cfg *config) {
	if m.Title != "" {
		pdf.SetTitle(m.Title, true)
	}
	if m.Author != "" {
		pdf.SetAuthor(m.Author, true)
	}
	if m.Subject != "" {
		pdf.SetSubject(m.Subject, true)
	}
	if m.Keywords != "" {
		pdf.SetKeywords(m.Keywords, true)
	}
	pdf.SetCreator("jetspec dossier", true)
	if !cfg.created.IsZero() {
		pdf.SetCreationDate(cfg.created)
	}
}

func registerImages(pdf *gofpdf.Fpdf, scratch *asset.Scratch, assets []*asset.Asset) (map[string]bool, error) {
	known := make(map[string]bool, len(assets))
	for _, a := range assets {
		if a == nil || known[a.Handle] {
			continue
		}
		img, err := scratch.Prepare(a)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		pdf.RegisterImageOptionsReader(a.Handle, gofpdf.ImageOptions{ImageType: img.Format}, bytes.NewReader(img.Data))
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("render: image %s: %w", a.Handle, err)
		}
		known[a.Handle] = true
	}
	return known, nil
}

// painter replays draw commands.
type painter struct {
	pdf    *gofpdf.Fpdf
	fonts  FontSet
	enc    encoder
	images map[string]bool
}

func (p *painter) draw(cmd surface.Command) error {
	switch c := cmd.(type) {
	case surface.Rect:
		p.pdf.SetFillColor(c.Fill.R, c.Fill.G, c.Fill.B)
		if c.Alpha < 1 {
			p.pdf.SetAlpha(c.Alpha, "Normal")
		}
		p.pdf.Rect(c.X, c.Y, c.W, c.H, "F")
		if c.Alpha < 1 {
			p.pdf.SetAlpha(1, "Normal")
		}
	case surface.Image:
		if !p.images[c.Handle] {
			return fmt.Errorf("%w: %q", ErrUnknownImage, c.Handle)
		}
		p.pdf.ImageOptions(c.Handle, c.X, c.Y, c.W, c.H, false, gofpdf.ImageOptions{}, 0, "")
	case surface.Text:
		p.pdf.SetFont(p.fonts.face(c.Font.Family).Family, c.Font.Style, c.Font.Size)
		p.pdf.SetTextColor(c.Color.R, c.Color.G, c.Color.B)
		s := p.enc.text(c.Font.Family, c.Str)
		p.pdf.SetXY(c.X, c.Y)
		p.pdf.CellFormat(p.pdf.GetStringWidth(s), c.H, s, "", 0, "L", false, 0, "")
	default:
		return fmt.Errorf("render: unsupported command %T", cmd)
	}
	return nil
}
