package section

import (
	"fmt"
	"strings"

	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Cover layout.
const (
	coverPlateY     = 150.0
	coverPlateAlpha = 0.8
	coverTextX      = 20.0
	coverTaglineY   = 160.0
	coverTaglineH   = 8.0
	coverModelW     = 180.0
	coverModelLineH = 18.0
	coverSubH       = 10.0

	defaultTagline = "AIRCRAFT DOSSIER"
	defaultModel   = "AIRCRAFT"
)

// Cover lays out the cover page. It is always emitted; without a hero image
// the cover shows the text block on the plain background.
func Cover(env *Env, rec *record.Record, hero *asset.Asset) (Outcome, error) {
	ctx := env.Ctx
	ctx.Reset()
	pg := newPager(env, NameCover)
	ctx.SetPage(pg.Page(0))
	p := env.palette()

	if hero != nil {
		pl, err := geom.FitInto(geom.PageBox(), hero.Size())
		if err != nil {
			return Outcome{}, fmt.Errorf("section: cover image %s: %w", hero.Handle, err)
		}
		ctx.Image(hero.Handle, pl.X, pl.Y, pl.W, pl.H)

		ctx.SetFillColor(p.Plate)
		ctx.SetAlpha(coverPlateAlpha)
		ctx.Rect(0, coverPlateY, geom.PageWidth, geom.PageHeight-coverPlateY)
		ctx.SetAlpha(1)
	}

	y := coverTaglineY
	ctx.SetFont(surface.Sans, "B", 10)
	ctx.SetTextColor(p.Accent)
	ctx.Text(coverTextX, y, coverTaglineH, segment.Upper(rec.Tagline.Or(defaultTagline)))
	y += coverTaglineH

	model := surface.Font{Family: surface.Serif, Style: "B", Size: 42}
	ctx.SetFont(model.Family, model.Style, model.Size)
	ctx.SetTextColor(p.Title)
	for _, line := range flow.Wrap(ctx.Measurer(), model, segment.Normalize(rec.Model.Or(defaultModel)), coverModelW) {
		ctx.Text(coverTextX, y, coverModelLineH, line)
		y += coverModelLineH
	}

	if sub := subLine(rec); sub != "" {
		ctx.SetFont(surface.Serif, "", 12)
		ctx.SetTextColor(p.Body)
		ctx.Text(coverTextX, y, coverSubH, segment.Upper(sub))
	}

	return Outcome{Pages: pg.pages}, ctx.Error()
}

// subLine joins the non-empty year and make with a separator.
func subLine(rec *record.Record) string {
	var parts []string
	for _, t := range []record.Text{rec.Year, rec.Make} {
		if !t.Empty() {
			parts = append(parts, t.String())
		}
	}
	return strings.Join(parts, " | ")
}
