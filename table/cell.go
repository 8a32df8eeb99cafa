package table

import (
	"fmt"
)

// CellContent represents the content of a table cell.
type CellContent interface {
	cellContent()
}

// TextContent is a simple text cell content.
type TextContent struct {
	Text string
}

func (TextContent) cellContent() {}

// ImageContent is an image cell content, contained and centered in the cell.
type ImageContent struct {
	Handle        string
	Width, Height int // intrinsic pixel size
}

func (ImageContent) cellContent() {}

// Cell represents a single cell in a table row.
type Cell struct {
	content CellContent
	colspan int
	style   *CellStyle
}

// SetColspan sets the number of columns this cell spans.
func (c *Cell) SetColspan(n int) *Cell {
	if n > 0 {
		c.colspan = n
	}
	return c
}

// SetStyle sets the style for this cell, overriding table/row defaults.
func (c *Cell) SetStyle(s CellStyle) *Cell {
	c.style = &s
	return c
}

// SetAlign sets the horizontal alignment for this cell.
func (c *Cell) SetAlign(align string) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Align = align
	return c
}

// Row represents a single row in a table.
type Row struct {
	cells    []*Cell
	style    *CellStyle
	isHeader bool
	minH     float64
}

// AddCell adds a text cell to the row and returns the cell for chaining.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{
		content: TextContent{Text: text},
		colspan: 1,
	}
	r.cells = append(r.cells, c)
	return c
}

// AddCellf adds a formatted text cell to the row.
func (r *Row) AddCellf(format string, args ...any) *Cell {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// AddImageCell adds an image cell to the row.
func (r *Row) AddImageCell(handle string, width, height int) *Cell {
	c := &Cell{
		content: ImageContent{Handle: handle, Width: width, Height: height},
		colspan: 1,
	}
	r.cells = append(r.cells, c)
	return c
}

// SetStyle sets the style for all cells in this row.
func (r *Row) SetStyle(s CellStyle) *Row {
	r.style = &s
	return r
}

// SetMinHeight sets the minimum height for this row.
func (r *Row) SetMinHeight(h float64) *Row {
	r.minH = h
	return r
}

// Empty reports whether every text cell of the row is blank.
func (r *Row) Empty() bool {
	for _, c := range r.cells {
		switch v := c.content.(type) {
		case TextContent:
			if v.Text != "" {
				return false
			}
		case ImageContent:
			return false
		}
	}
	return true
}
