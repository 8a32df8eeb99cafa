package section

import (
	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Spec grid layout.
const (
	cardW       = 60.0
	cardH       = 22.0
	cardInset   = 4.0
	cardLabelH  = 4.0
	cardValueY  = 10.0
	cardValueH  = 8.0
	cardValue   = 14.0 // value font size
	cardValueSm = 11.0 // value font size when the value is too wide

	summaryTitleY = geom.ContentTop
	summaryBodyY  = 35.0
	summaryLineH  = 6.0
	summaryGap    = 5.0
	summaryBottom = 185.0 // no highlight starts below this Y
	pointSquare   = 2.0
	pointIndent   = 5.0
)

// Specs lays out the specifications page: a grid of spec cards on the left
// and the asset summary (description and highlights) on the right. The page
// exists when any of the three is present; each side renders only when it
// has content. Neither side paginates: cards past the overflow threshold,
// description lines past the usable bottom and highlights past the summary
// bottom are dropped, earliest kept.
func Specs(env *Env, rec *record.Record) (Outcome, error) {
	specs := rec.Specs()
	points := rec.Points()
	desc := segment.Normalize(rec.Description.String())
	if len(specs) == 0 && len(points) == 0 && desc == "" {
		return Outcome{}, nil
	}

	ctx := env.Ctx
	ctx.Reset()
	pg := newPager(env, NameSpecs)
	ctx.SetPage(pg.Page(0))

	var out Outcome
	if len(specs) > 0 {
		env.title("Technical Specifications", 20, geom.SpecGridColumn.Width, geom.SpecGridColumn.X)
		out.Dropped += env.specGrid(specs)
	}
	if desc != "" || len(points) > 0 {
		out.Dropped += env.summary(desc, points)
	}

	if out.Dropped > 0 {
		env.logger().WithFields(logrus.Fields{
			"section": NameSpecs,
			"dropped": out.Dropped,
		}).Debug("specs page full")
	}
	out.Pages = pg.pages
	return out, ctx.Error()
}

// specGrid draws two cards per row and returns how many were dropped.
func (e *Env) specGrid(specs []record.Spec) int {
	ctx := e.Ctx
	p := e.palette()
	col := geom.SpecGridColumn

	for i, s := range specs {
		x := col.X + float64(i%2)*cardW
		y := contentY + float64(i/2)*cardH
		if y > e.Limits.Threshold {
			return len(specs) - i
		}

		ctx.SetAlpha(1)
		ctx.SetFillColor(p.Card)
		ctx.Rect(x, y, cardW, cardH)

		ctx.SetFont(surface.Serif, "", 7)
		ctx.SetTextColor(p.Label)
		ctx.Text(x+cardInset, y+cardInset, cardLabelH, segment.Upper(s.Label.String()))

		value := segment.Normalize(s.Value.String())
		ctx.SetFont(surface.Serif, "", cardValue)
		ctx.SetTextColor(p.Title)
		if ctx.StringWidth(value) > cardW-2*cardInset {
			ctx.SetFontSize(cardValueSm)
		}
		ctx.Text(x+cardInset, y+cardValueY, cardValueH, value)
	}
	return 0
}

// summary draws "The Asset" column and returns how many description lines
// and highlights were dropped. Nothing is drawn below the usable bottom.
func (e *Env) summary(desc string, points []string) int {
	ctx := e.Ctx
	p := e.palette()
	col := geom.SummaryColumn
	bottom := e.Limits.Bottom
	if bottom <= 0 {
		bottom = geom.UsableBottom()
	}

	ctx.SetFont(surface.Serif, "B", 20)
	ctx.SetTextColor(p.Accent)
	ctx.Text(col.X, summaryTitleY, titleH, "The Asset")

	dropped := 0
	y := summaryBodyY
	if desc != "" {
		body := surface.Font{Family: surface.Serif, Size: 10}
		ctx.SetFont(body.Family, body.Style, body.Size)
		ctx.SetTextColor(p.Body)
		width := geom.PageWidth - col.X - geom.SideMargin
		lines := flow.Wrap(ctx.Measurer(), body, desc, width)
		for i, line := range lines {
			if y+summaryLineH > bottom {
				dropped += len(lines) - i
				break
			}
			ctx.Text(col.X, y, summaryLineH, line)
			y += summaryLineH
		}
		y += summaryGap
	}

	body := surface.Font{Family: surface.Serif, Size: 10}
	textX := col.X + pointIndent
	for i, pt := range points {
		if y > summaryBottom || y+summaryLineH > bottom {
			return dropped + len(points) - i
		}
		ctx.SetAlpha(1)
		ctx.SetFillColor(p.Accent)
		ctx.Rect(col.X, y+pointSquare, pointSquare, pointSquare)

		ctx.SetFont(body.Family, body.Style, body.Size)
		ctx.SetTextColor(p.Highlight)
		for _, line := range flow.Wrap(ctx.Measurer(), body, segment.Normalize(pt), col.Width) {
			if y+summaryLineH > bottom {
				break
			}
			ctx.Text(textX, y, summaryLineH, line)
			y += summaryLineH
		}
	}
	return dropped
}
