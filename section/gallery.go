package section

import (
	"fmt"

	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Caption plate in the lower-left corner of a gallery page.
var captionPlate = geom.Rect{X: 10, Y: 193, W: 80, H: 10}

const (
	captionAlpha = 0.7
	captionInset = 2.0
	captionH     = 6.0
)

// Gallery gives every image after the hero a page of its own, contained in
// the page box, captioned with the model and a 1-based view number.
func Gallery(env *Env, rec *record.Record, images []*asset.Asset) (Outcome, error) {
	if len(images) < 2 {
		return Outcome{}, nil
	}

	ctx := env.Ctx
	ctx.Reset()
	pg := newPager(env, NameGallery)
	p := env.palette()

	for i, img := range images[1:] {
		ctx.SetPage(pg.Page(i))

		pl, err := geom.FitInto(geom.PageBox(), img.Size())
		if err != nil {
			return Outcome{Pages: pg.pages}, fmt.Errorf("section: gallery image %s: %w", img.Handle, err)
		}
		ctx.Image(img.Handle, pl.X, pl.Y, pl.W, pl.H)

		ctx.SetFillColor(p.Plate)
		ctx.SetAlpha(captionAlpha)
		ctx.Rect(captionPlate.X, captionPlate.Y, captionPlate.W, captionPlate.H)
		ctx.SetAlpha(1)

		ctx.SetFont(surface.Serif, "", captionSize)
		ctx.SetTextColor(p.Title)
		ctx.Text(captionPlate.X+captionInset, captionPlate.Y+captionInset, captionH, Caption(rec, i+1))
	}
	return Outcome{Pages: pg.pages}, ctx.Error()
}

// Caption returns the gallery caption of view n, e.g. "G650 | VIEW 2".
func Caption(rec *record.Record, n int) string {
	view := fmt.Sprintf("VIEW %d", n)
	if rec.Model.Empty() {
		return view
	}
	return segment.Upper(rec.Model.String() + " | " + view)
}
