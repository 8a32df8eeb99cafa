package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/jetspec/dossier/surface"
)

// Face maps an abstract font family onto a concrete one. A face with font
// files is embedded as a UTF-8 TrueType font; otherwise Family names one of
// the PDF core fonts.
type Face struct {
	Family  string
	Regular string // path of the regular TrueType file
	Bold    string // path of the bold TrueType file
}

// Embedded reports whether the face uses TrueType files.
func (f Face) Embedded() bool { return f.Regular != "" && f.Bold != "" }

// FontSet is the concrete faces behind the serif and sans families.
type FontSet struct {
	Serif Face
	Sans  Face
}

// CoreFonts returns the built-in Times and Helvetica faces.
func CoreFonts() FontSet {
	return FontSet{
		Serif: Face{Family: "Times"},
		Sans:  Face{Family: "Helvetica"},
	}
}

// ResolveFonts looks for the PlayfairDisplay (serif) and Manrope (sans)
// TrueType files in dir and falls back to the core fonts for any family
// whose regular or bold file is missing.
func ResolveFonts(dir string) FontSet {
	fs := CoreFonts()
	if dir == "" {
		return fs
	}
	if f, ok := lookFace(dir, "PlayfairDisplay"); ok {
		fs.Serif = f
	}
	if f, ok := lookFace(dir, "Manrope"); ok {
		fs.Sans = f
	}
	return fs
}

func lookFace(dir, family string) (Face, bool) {
	f := Face{
		Family:  family,
		Regular: filepath.Join(dir, family+"-Regular.ttf"),
		Bold:    filepath.Join(dir, family+"-Bold.ttf"),
	}
	for _, p := range []string{f.Regular, f.Bold} {
		if _, err := os.Stat(p); err != nil {
			return Face{}, false
		}
	}
	return f, true
}

func (fs FontSet) face(f surface.Family) Face {
	if f == surface.Sans {
		return fs.Sans
	}
	return fs.Serif
}

// newPDF returns an A4 landscape document in millimetres with the embedded
// faces of fs registered.
func newPDF(fs FontSet) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)

	for _, f := range []Face{fs.Serif, fs.Sans} {
		if !f.Embedded() {
			continue
		}
		for style, path := range map[string]string{"": f.Regular, "B": f.Bold} {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("render: font %s: %w", f.Family, err)
			}
			pdf.AddUTF8FontFromBytes(f.Family, style, data)
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render: registering fonts: %w", err)
	}
	return pdf, nil
}

// encoder converts text for the face it is drawn in: core fonts take
// cp1252 bytes, embedded fonts take UTF-8.
type encoder struct {
	fonts FontSet
	cp    func(string) string
}

func newEncoder(pdf *gofpdf.Fpdf, fs FontSet) encoder {
	return encoder{fonts: fs, cp: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (e encoder) text(f surface.Family, s string) string {
	if e.fonts.face(f).Embedded() {
		return s
	}
	return e.cp(s)
}

// Metrics measures text with the font metrics the writer will use.
// A Metrics is not safe for concurrent use.
type Metrics struct {
	pdf   *gofpdf.Fpdf
	fonts FontSet
	enc   encoder
}

// NewMetrics returns a measurer for fs.
func NewMetrics(fs FontSet) (*Metrics, error) {
	pdf, err := newPDF(fs)
	if err != nil {
		return nil, err
	}
	return &Metrics{pdf: pdf, fonts: fs, enc: newEncoder(pdf, fs)}, nil
}

// StringWidth implements surface.Measurer.
func (m *Metrics) StringWidth(f surface.Font, s string) float64 {
	if f.Size <= 0 || s == "" {
		return 0
	}
	m.pdf.SetFont(m.fonts.face(f.Family).Family, f.Style, f.Size)
	return m.pdf.GetStringWidth(m.enc.text(f.Family, s))
}
