package render

import (
	"fmt"
	"io"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// Report is what a written dossier reads back as.
type Report struct {
	Pages int      `json:"pages"`
	Text  []string `json:"text"` // plain text per page
}

// Contains reports whether page n (1-based) contains s.
func (r *Report) Contains(n int, s string) bool {
	if n < 1 || n > len(r.Text) {
		return false
	}
	return strings.Contains(r.Text[n-1], s)
}

// Inspect reads a PDF of the given size from r.
func Inspect(r io.ReaderAt, size int64) (*Report, error) {
	pr, err := lpdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("render: inspecting: %w", err)
	}
	return inspect(pr)
}

// InspectFile reads the PDF at path.
func InspectFile(path string) (*Report, error) {
	f, pr, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: inspecting %s: %w", path, err)
	}
	defer f.Close()
	return inspect(pr)
}

// PageCount returns the number of pages of the PDF at path.
func PageCount(path string) (int, error) {
	f, pr, err := lpdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("render: reading %s: %w", path, err)
	}
	defer f.Close()
	return pr.NumPage(), nil
}

func inspect(pr *lpdf.Reader) (*Report, error) {
	rep := &Report{Pages: pr.NumPage()}
	for i := 1; i <= rep.Pages; i++ {
		p := pr.Page(i)
		if p.V.IsNull() {
			rep.Text = append(rep.Text, "")
			continue
		}
		fonts := make(map[string]*lpdf.Font)
		for _, name := range p.Fonts() {
			f := p.Font(name)
			fonts[name] = &f
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("render: page %d text: %w", i, err)
		}
		rep.Text = append(rep.Text, text)
	}
	return rep, nil
}
