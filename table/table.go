package table

import (
	"strings"

	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Width    float64 // Fixed width. 0 means auto/fill.
	MinWidth float64 // Minimum width for auto columns.
	MaxWidth float64 // Maximum width for auto columns. 0 means unlimited.
	Align    string  // Default alignment for this column ("L", "C", "R").
}

// Table is a table builder that draws onto the pages handed out by a pager.
type Table struct {
	ctx        *surface.RenderContext
	pager      flow.Pager
	columns    []ColumnDef
	rows       []*Row
	style      TableStyle
	x, y       float64
	tableWidth float64
	overflow   Overflow
	top        float64
	bottom     float64
}

// New creates a table drawing through ctx onto pages of pager.
func New(ctx *surface.RenderContext, pager flow.Pager) *Table {
	return &Table{
		ctx:   ctx,
		pager: pager,
		style: TableStyle{
			CellPadding: UniformPadding(1),
			CellFont:    surface.Font{Family: surface.Serif, Size: 8},
			LineHeight:  5,
		},
		x:      geom.SideMargin,
		y:      geom.ContentTop,
		top:    geom.ContentTop,
		bottom: geom.UsableBottom(),
	}
}

// SetColumns sets column definitions for the table.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetColumnWidths is a convenience method to set column widths directly.
// A width of 0 means the column will auto-fill remaining space.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.columns = make([]ColumnDef, len(widths))
	for i, w := range widths {
		t.columns[i] = ColumnDef{Width: w}
	}
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s TableStyle) *Table {
	if s.LineHeight <= 0 {
		s.LineHeight = t.style.LineHeight
	}
	if s.CellFont.Size <= 0 {
		s.CellFont = t.style.CellFont
	}
	t.style = s
	return t
}

// SetPosition sets the top-left corner of the table on its first page.
func (t *Table) SetPosition(x, y float64) *Table {
	t.x = x
	t.y = y
	return t
}

// SetWidth sets the total table width used to size auto columns.
func (t *Table) SetWidth(w float64) *Table {
	t.tableWidth = w
	return t
}

// SetOverflow selects the overflow policy.
func (t *Table) SetOverflow(o Overflow) *Table {
	t.overflow = o
	return t
}

// SetLimits sets the top of continuation pages and the lowest Y a row may
// reach.
func (t *Table) SetLimits(top, bottom float64) *Table {
	t.top = top
	t.bottom = bottom
	return t
}

// AddRow adds a new data row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddHeaderRow adds a new header row and returns it for chaining.
// Header rows always render before body rows.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	insertIdx := 0
	for i, existing := range t.rows {
		if !existing.isHeader {
			insertIdx = i
			break
		}
		insertIdx = i + 1
	}
	t.rows = append(t.rows, nil)
	copy(t.rows[insertIdx+1:], t.rows[insertIdx:])
	t.rows[insertIdx] = r
	return r
}

// BodyRows returns the number of non-header rows.
func (t *Table) BodyRows() int {
	n := 0
	for _, r := range t.rows {
		if !r.isHeader {
			n++
		}
	}
	return n
}

// Result reports where a rendered table ended.
type Result struct {
	Page    int     // index of the last page used
	Y       float64 // cursor below the last row
	Dropped int     // body rows dropped by OverflowDrop
}

// Render draws the table and reports where it ended.
func (t *Table) Render() (Result, error) {
	widths := t.calculateWidths()
	res := Result{Y: t.y}
	if len(widths) == 0 {
		return res, t.ctx.Error()
	}

	var headerRows, bodyRows []*Row
	for _, r := range t.rows {
		if r.isHeader {
			headerRows = append(headerRows, r)
		} else {
			bodyRows = append(bodyRows, r)
		}
	}

	for _, r := range headerRows {
		res.Y = t.renderRow(r, widths, res.Page, res.Y, -1)
	}

	for i, r := range bodyRows {
		rowH := t.rowHeight(r, widths)
		if res.Y+rowH > t.bottom {
			if t.overflow == OverflowDrop {
				res.Dropped = len(bodyRows) - i
				break
			}
			res.Page++
			res.Y = t.top
			for _, hr := range headerRows {
				res.Y = t.renderRow(hr, widths, res.Page, res.Y, -1)
			}
		}
		res.Y = t.renderRow(r, widths, res.Page, res.Y, i)
	}

	return res, t.ctx.Error()
}

// calculateWidths computes final column widths based on definitions and available space.
func (t *Table) calculateWidths() []float64 {
	totalWidth := t.tableWidth
	if totalWidth == 0 {
		totalWidth = geom.PageWidth - t.x - geom.SideMargin
	}

	numCols := len(t.columns)
	if numCols == 0 {
		if len(t.rows) > 0 {
			numCols = len(t.rows[0].cells)
		}
		if numCols == 0 {
			return nil
		}
		t.columns = make([]ColumnDef, numCols)
	}

	widths := make([]float64, numCols)
	fixedTotal := 0.0
	autoCount := 0

	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixedTotal += col.Width
		} else {
			autoCount++
		}
	}

	if autoCount > 0 {
		remaining := totalWidth - fixedTotal
		if remaining < 0 {
			remaining = 0
		}
		autoWidth := remaining / float64(autoCount)
		for i, col := range t.columns {
			if col.Width == 0 {
				w := autoWidth
				if col.MinWidth > 0 && w < col.MinWidth {
					w = col.MinWidth
				}
				if col.MaxWidth > 0 && w > col.MaxWidth {
					w = col.MaxWidth
				}
				widths[i] = w
			}
		}
	}

	return widths
}

// spanWidth is the width of the cell at column i including its colspan.
func spanWidth(cell *Cell, widths []float64, i int) float64 {
	w := widths[i]
	for j := 1; j < cell.colspan && i+j < len(widths); j++ {
		w += widths[i+j]
	}
	return w
}

// rowHeight computes the height needed for a row based on cell content.
func (t *Table) rowHeight(r *Row, widths []float64) float64 {
	maxH := t.style.RowHeight
	if r.isHeader && t.style.HeaderHeight > 0 {
		maxH = t.style.HeaderHeight
	}
	if r.minH > maxH {
		maxH = r.minH
	}

	padding := t.style.CellPadding
	col := 0
	for _, cell := range r.cells {
		if col >= len(widths) {
			break
		}
		contentW := spanWidth(cell, widths, col) - padding.Left - padding.Right
		if contentW < 1 {
			contentW = 1
		}
		style := t.resolveCellStyle(cell, r, -1)

		var cellH float64
		switch c := cell.content.(type) {
		case TextContent:
			lines := flow.Wrap(t.ctx.Measurer(), t.cellFont(style), t.cellText(c.Text, style), contentW)
			cellH = float64(len(lines))*t.style.LineHeight + padding.Top + padding.Bottom
		case ImageContent:
			cellH = 10 + padding.Top + padding.Bottom
		}
		if cellH > maxH {
			maxH = cellH
		}
		col += cell.colspan
	}
	return maxH
}

// renderRow draws r at y on the given page and returns the Y below it.
func (t *Table) renderRow(r *Row, widths []float64, page int, y float64, bodyIdx int) float64 {
	rowH := t.rowHeight(r, widths)
	padding := t.style.CellPadding
	t.ctx.SetPage(t.pager.Page(page))

	x := t.x
	col := 0
	for _, cell := range r.cells {
		if col >= len(widths) {
			break
		}
		cellW := spanWidth(cell, widths, col)
		style := t.resolveCellStyle(cell, r, bodyIdx)

		if style.FillColor != nil {
			t.ctx.SetAlpha(1)
			t.ctx.SetFillColor(*style.FillColor)
			t.ctx.Rect(x, y, cellW, rowH)
		}

		align := "L"
		if style.Align != "" {
			align = style.Align
		} else if col < len(t.columns) && t.columns[col].Align != "" {
			align = t.columns[col].Align
		}

		contentX := x + padding.Left
		contentW := cellW - padding.Left - padding.Right

		switch c := cell.content.(type) {
		case TextContent:
			font := t.cellFont(style)
			t.ctx.SetFont(font.Family, font.Style, font.Size)
			if style.TextColor != nil {
				t.ctx.SetTextColor(*style.TextColor)
			} else {
				t.ctx.SetTextColor(t.style.CellColor)
			}
			lines := flow.Wrap(t.ctx.Measurer(), font, t.cellText(c.Text, style), contentW)
			if len(lines) == 1 {
				t.drawAligned(lines[0], align, contentX, contentW, y, rowH)
			} else {
				for li, line := range lines {
					t.drawAligned(line, align, contentX, contentW, y+padding.Top+float64(li)*t.style.LineHeight, t.style.LineHeight)
				}
			}
		case ImageContent:
			box := geom.Rect{X: contentX, Y: y + padding.Top, W: contentW, H: rowH - padding.Top - padding.Bottom}
			p, err := geom.FitInto(box, geom.Size{W: float64(c.Width), H: float64(c.Height)})
			if err == nil {
				t.ctx.Image(c.Handle, p.X, p.Y, p.W, p.H)
			}
		}

		x += cellW
		col += cell.colspan
	}

	if !r.isHeader && t.style.Rule != nil && t.style.Rule.Width > 0 {
		total := 0.0
		for _, w := range widths {
			total += w
		}
		t.ctx.SetAlpha(1)
		t.ctx.SetFillColor(t.style.Rule.Color)
		t.ctx.Rect(t.x, y+rowH-t.style.Rule.Width/2, total, t.style.Rule.Width)
	}

	return y + rowH
}

func (t *Table) drawAligned(s, align string, x, w, y, h float64) {
	switch strings.ToUpper(align) {
	case "C":
		x += (w - t.ctx.StringWidth(s)) / 2
	case "R":
		x += w - t.ctx.StringWidth(s)
	}
	t.ctx.Text(x, y, h, s)
}

func (t *Table) cellFont(style CellStyle) surface.Font {
	if style.Font != nil {
		return *style.Font
	}
	return t.style.CellFont
}

func (t *Table) cellText(s string, style CellStyle) string {
	if style.Uppercase {
		return segment.Upper(s)
	}
	return s
}

// resolveCellStyle determines the effective style for a cell by merging
// header, alternate row, row, and cell-level styles.
func (t *Table) resolveCellStyle(cell *Cell, row *Row, bodyIdx int) CellStyle {
	var result CellStyle

	if row.isHeader && t.style.HeaderStyle != nil {
		mergeStyle(&result, t.style.HeaderStyle)
	}

	if !row.isHeader && t.style.AlternateRows != nil && bodyIdx >= 0 {
		if bodyIdx%2 == 0 {
			mergeStyle(&result, &t.style.AlternateRows.Even)
		} else {
			mergeStyle(&result, &t.style.AlternateRows.Odd)
		}
	}

	if row.style != nil {
		mergeStyle(&result, row.style)
	}

	if cell.style != nil {
		mergeStyle(&result, cell.style)
	}

	return result
}

// mergeStyle copies non-nil fields from src to dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
	if src.Uppercase {
		dst.Uppercase = true
	}
}
