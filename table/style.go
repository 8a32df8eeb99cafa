// Package table lays out fixed-column tables onto surface pages.
//
// It provides fixed and auto-width columns, a styled header row, alternating
// row fills, colspan, a rule under each body row, and a choice of what
// happens when rows run past the usable area of the page: drop the rest, or
// continue on a new page with the header repeated.
package table

import "github.com/jetspec/dossier/surface"

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// RuleStyle defines the line drawn under each body row.
type RuleStyle struct {
	Width float64
	Color surface.Color
}

// CellStyle defines the visual appearance of a cell.
type CellStyle struct {
	FillColor *surface.Color
	TextColor *surface.Color
	Font      *surface.Font
	Align     string // "L", "C", "R"
	Uppercase bool
}

// AlternateStyle defines alternating row fills.
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	Rule          *RuleStyle
	AlternateRows *AlternateStyle
	HeaderStyle   *CellStyle
	CellPadding   Padding
	CellFont      surface.Font
	CellColor     surface.Color
	RowHeight     float64 // minimum body row height
	HeaderHeight  float64 // minimum header row height
	LineHeight    float64 // height of one wrapped text line
}

// Overflow selects what happens to rows that do not fit on the page.
type Overflow int

const (
	// OverflowDrop stops at the first row that would pass the usable
	// bottom; it and every later row are dropped.
	OverflowDrop Overflow = iota
	// OverflowPaginate continues on the next page and repeats header rows.
	OverflowPaginate
)
