package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// appendPDF imports every page of the file at path after the pages already
// in pdf, keeping each page's own media box.
func appendPDF(pdf *gofpdf.Fpdf, path string) error {
	n, err := PageCount(path)
	if err != nil {
		return fmt.Errorf("render: appendix: %w", err)
	}

	imp := gofpdi.NewImporter()
	for i := 1; i <= n; i++ {
		tplID, w, h := importPage(pdf, imp, path, i)
		if w == 0 || h == 0 {
			w, h = 297, 210
		}
		orientation := "P"
		if w > h {
			orientation = "L"
		}
		pdf.AddPageFormat(orientation, gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render: appendix %s: %w", path, err)
	}
	return nil
}

// importPage imports page pageNum of sourceFile and returns its template
// and size in document units.
func importPage(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, sourceFile string, pageNum int) (tplID int, w, h float64) {
	tplID = imp.ImportPage(pdf, sourceFile, pageNum, "/MediaBox")
	if dims, ok := imp.GetPageSizes()[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = pdf.PointConvert(mb["w"])
			h = pdf.PointConvert(mb["h"])
		}
	}
	return
}
