package render

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// optimize rewrites the PDF read from rs to w with duplicate resources
// merged and unused objects removed.
func optimize(rs io.ReadSeeker, w io.Writer) error {
	conf := model.NewDefaultConfiguration()
	if err := api.Optimize(rs, w, conf); err != nil {
		return fmt.Errorf("render: optimizing: %w", err)
	}
	return nil
}

// Validate checks the PDF read from rs against the PDF specification.
func Validate(rs io.ReadSeeker) error {
	conf := model.NewDefaultConfiguration()
	if err := api.Validate(rs, conf); err != nil {
		return fmt.Errorf("render: validating: %w", err)
	}
	return nil
}
