package section

import (
	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/barcode"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Contact page layout.
const (
	contactLogoW     = 80.0
	contactLogoY     = 60.0
	contactLogoTextY = 95.0
	contactHeadingY  = 80.0
	contactHeadingH  = 15.0
	contactTextY     = 105.0
	contactLineH     = 8.0
	contactCodesGap  = 8.0
	contactQR        = 30.0 // side of the QR code
	contactPDF417W   = 60.0
	contactPDF417H   = 20.0
	contactCodesSep  = 10.0
	contactQuiet     = 2
)

// Contact lays out the closing contact page: the brand logo (or a heading
// when the brand has none), the contact lines, a QR code for the website and
// a PDF417 code carrying the dossier reference.
func Contact(env *Env, reference string) (Outcome, error) {
	ctx := env.Ctx
	ctx.Reset()
	pg := newPager(env, NameContact)
	ctx.SetPage(pg.Page(0))
	p := env.palette()
	b := env.Brand

	y := contactTextY
	if b.Logo != nil {
		h := geom.ScaleToWidth(contactLogoW, b.Logo.Size())
		ctx.Image(b.Logo.Handle, (geom.PageWidth-contactLogoW)/2, contactLogoY, contactLogoW, h)
		y = contactLogoTextY
	} else {
		ctx.SetFont(surface.Serif, "B", 40)
		ctx.SetTextColor(p.Accent)
		ctx.TextCentered(0, contactHeadingY, geom.PageWidth, contactHeadingH, "CONTACT US")
	}

	ctx.SetFont(surface.Serif, "", 14)
	ctx.SetTextColor(p.Highlight)
	for _, line := range b.Contact.Lines() {
		ctx.TextCentered(0, y, geom.PageWidth, contactLineH, segment.Normalize(line))
		y += contactLineH
	}

	env.codes(y+contactCodesGap, b.Contact.Website, reference)
	return Outcome{Pages: pg.pages}, ctx.Error()
}

// codes draws the website QR code and the reference PDF417 side by side,
// centered, with their tops at y. A payload that cannot be encoded is
// skipped.
func (e *Env) codes(y float64, website, reference string) {
	p := e.palette()
	var boxes []geom.Rect
	var mats []barcode.Matrix

	if website != "" {
		m, err := barcode.QR(website)
		if err != nil {
			e.logger().WithFields(logrus.Fields{"section": NameContact}).WithError(err).Debug("qr code skipped")
		} else {
			boxes = append(boxes, geom.Rect{W: contactQR, H: contactQR})
			mats = append(mats, m)
		}
	}
	if reference != "" {
		m, err := barcode.PDF417(reference)
		if err != nil {
			e.logger().WithFields(logrus.Fields{"section": NameContact}).WithError(err).Debug("pdf417 code skipped")
		} else {
			boxes = append(boxes, geom.Rect{W: contactPDF417W, H: contactPDF417H})
			mats = append(mats, m)
		}
	}
	if len(boxes) == 0 {
		return
	}

	total := contactCodesSep * float64(len(boxes)-1)
	tallest := 0.0
	for _, b := range boxes {
		total += b.W
		tallest = max(tallest, b.H)
	}
	x := (geom.PageWidth - total) / 2
	for i, b := range boxes {
		b.X = x
		b.Y = y + (tallest-b.H)/2
		mats[i].Draw(e.Ctx, b, contactQuiet, p.Title, p.Plate)
		x += b.W + contactCodesSep
	}
}
