// Package dossier builds the page sequence of an aircraft dossier.
//
// Build takes a record, the caller-selected images (the first is the hero)
// and a branding variant, and returns a surface.Document: an ordered list of
// pages of draw commands. Sections are planned in a fixed order and any
// section without content is skipped without leaving a blank page. Turning
// the document into PDF bytes is the job of the render package.
//
// Example:
//
//	metrics, _ := render.NewMetrics(fonts)
//	doc, err := dossier.Build(ctx, rec, images,
//	    dossier.WithVariant(dossier.Clean),
//	    dossier.WithMeasurer(metrics),
//	)
package dossier

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/section"
	"github.com/jetspec/dossier/surface"
)

// Corner logo stamped on every page of the full variant.
const (
	logoX = 260.0
	logoY = 10.0
	logoW = 25.0

	footerH    = 10.0
	footerSize = 8.0
)

// step is one section of the fixed document order.
type step struct {
	name string
	plan func() (section.Outcome, error)
}

// builder owns the page sequence. It is the Sink section planners draw on.
type builder struct {
	cfg *buildConfig
	doc *surface.Document
	bg  *surface.RenderContext // draws page backgrounds only
}

// NewPage starts a page with the background drawn.
func (b *builder) NewPage(name string) *surface.Page {
	p := surface.NewPage(name)
	box := geom.PageBox()
	b.bg.SetPage(p)
	b.bg.SetFillColor(b.cfg.brand.Palette.Background)
	b.bg.SetAlpha(1)
	b.bg.Rect(box.X, box.Y, box.W, box.H)
	b.doc.Pages = append(b.doc.Pages, p)
	return p
}

// finish stamps the footer and, in the full variant, the corner logo on
// pages, then freezes them.
func (b *builder) finish(name string, pages []*surface.Page) {
	br := b.cfg.brand
	stamp := surface.NewRenderContext(b.cfg.measurer)
	for _, p := range pages {
		stamp.SetPage(p)
		if br.Footer != "" {
			stamp.SetFont(surface.Serif, "", footerSize)
			stamp.SetTextColor(br.Palette.Footer)
			stamp.TextCentered(0, geom.FooterY(), geom.PageWidth, footerH, br.Footer)
		}
		if b.cfg.variant.Branded() && br.Logo != nil && name != section.NameContact {
			stamp.Image(br.Logo.Handle, logoX, logoY, logoW, geom.ScaleToWidth(logoW, br.Logo.Size()))
		}
		p.Finalize()
	}
}

// Build lays out the dossier for rec and images.
//
// Data-quality problems (missing fields, unsupported characters, content
// past a fixed region, zero-height images) are recovered inside the
// sections. Build fails only for a misconfigured call, an image with a
// negative size, or a cancelled ctx; the error is then a *BuildError naming
// the section being planned.
func Build(ctx context.Context, rec *record.Record, images []*asset.Asset, opts ...Option) (*surface.Document, error) {
	cfg := newBuildConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &record.Record{}
	}
	for _, img := range images {
		if err := img.Size().Validate(); err != nil {
			return nil, newBuildError("images", fmt.Errorf("%w: %s: %w", ErrInvalidGeometry, img.Handle, err))
		}
	}

	b := &builder{
		cfg: cfg,
		doc: &surface.Document{Meta: metadata(rec, cfg.brand)},
		bg:  surface.NewRenderContext(cfg.measurer),
	}
	env := &section.Env{
		Ctx:   surface.NewRenderContext(cfg.measurer),
		Sink:  b,
		Brand: cfg.brand,
		Limits: flow.Limits{
			Top:       geom.ContentTop,
			Threshold: cfg.threshold,
			Bottom:    geom.UsableBottom(),
		},
		Log: cfg.log,
	}

	for _, s := range steps(env, rec, images, cfg.variant) {
		if err := ctx.Err(); err != nil {
			return nil, newBuildError(s.name, err)
		}

		out, err := s.plan()
		if err == nil {
			err = b.bg.Error()
		}
		if err != nil {
			if errors.Is(err, geom.ErrNegative) {
				err = fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
			}
			return nil, newBuildError(s.name, err)
		}
		b.finish(s.name, out.Pages)

		log := cfg.log.WithField("section", s.name)
		if !out.Emitted() {
			log.WithField("reason", "empty").Debug("section skipped")
			continue
		}
		log.WithFields(logrus.Fields{
			"pages":   len(out.Pages),
			"dropped": out.Dropped,
		}).Debug("section planned")
	}

	cfg.log.WithFields(logrus.Fields{
		"pages":   b.doc.NumPages(),
		"variant": cfg.variant.String(),
	}).Debug("dossier built")
	return b.doc, nil
}

// steps returns the sections in document order.
func steps(env *section.Env, rec *record.Record, images []*asset.Asset, v Variant) []step {
	var hero *asset.Asset
	if len(images) > 0 {
		hero = images[0]
	}
	out := []step{
		{section.NameCover, func() (section.Outcome, error) { return section.Cover(env, rec, hero) }},
		{section.NameSpecs, func() (section.Outcome, error) { return section.Specs(env, rec) }},
		{section.NameGallery, func() (section.Outcome, error) { return section.Gallery(env, rec, images) }},
		{section.NameTechnical, func() (section.Outcome, error) { return section.Technical(env, rec) }},
		{section.NameAvionics, func() (section.Outcome, error) { return section.Avionics(env, rec) }},
		{section.NameEquipment, func() (section.Outcome, error) { return section.Equipment(env, rec) }},
		{section.NameMaintenance, func() (section.Outcome, error) { return section.Maintenance(env, rec) }},
		{section.NameConfiguration, func() (section.Outcome, error) { return section.Configuration(env, rec) }},
	}
	if v.Branded() {
		out = append(out, step{section.NameContact, func() (section.Outcome, error) {
			return section.Contact(env, rec.Reference())
		}})
	}
	return out
}

// SectionOrder returns the names of the sections v lays out, in document
// order. Sections without content are skipped at build time.
func SectionOrder(v Variant) []string {
	names := []string{
		section.NameCover,
		section.NameSpecs,
		section.NameGallery,
		section.NameTechnical,
		section.NameAvionics,
		section.NameEquipment,
		section.NameMaintenance,
		section.NameConfiguration,
	}
	if v.Branded() {
		names = append(names, section.NameContact)
	}
	return names
}

func (c *buildConfig) validate() error {
	if c.measurer == nil {
		return ErrNoMeasurer
	}
	if !c.variant.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidVariant, c.variant)
	}
	if c.threshold <= geom.ContentTop || c.threshold > geom.UsableBottom() {
		return fmt.Errorf("%w: overflow threshold %g outside (%g, %g]",
			ErrInvalidGeometry, c.threshold, geom.ContentTop, geom.UsableBottom())
	}
	return nil
}

func metadata(rec *record.Record, b *brand.Brand) surface.Metadata {
	return surface.Metadata{
		Title:    rec.Model.Or("Aircraft") + " Dossier",
		Author:   b.Name,
		Subject:  rec.Tagline.Or("Aircraft Dossier"),
		Keywords: rec.Reference(),
	}
}

// PageInfo summarizes one page of a built document.
type PageInfo struct {
	Number   int    `json:"number"` // 1-based
	Section  string `json:"section"`
	Texts    int    `json:"texts"`
	Images   int    `json:"images"`
	Commands int    `json:"commands"`
}

// Plan builds the document and returns a per-page summary of it.
func Plan(ctx context.Context, rec *record.Record, images []*asset.Asset, opts ...Option) ([]PageInfo, error) {
	doc, err := Build(ctx, rec, images, opts...)
	if err != nil {
		return nil, err
	}
	return Summarize(doc), nil
}

// Summarize returns a per-page summary of doc.
func Summarize(doc *surface.Document) []PageInfo {
	out := make([]PageInfo, len(doc.Pages))
	for i, p := range doc.Pages {
		out[i] = PageInfo{
			Number:   i + 1,
			Section:  p.Section(),
			Texts:    len(p.Texts()),
			Images:   len(p.Images()),
			Commands: p.Len(),
		}
	}
	return out
}
