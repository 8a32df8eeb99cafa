package dossier

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/surface"
)

// Option is a functional option for configuring a build via Build or Plan.
type Option func(*buildConfig)

type buildConfig struct {
	variant   Variant
	brand     *brand.Brand
	measurer  surface.Measurer
	log       logrus.FieldLogger
	threshold float64
}

func newBuildConfig(opts []Option) *buildConfig {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	cfg := &buildConfig{
		variant:   Full,
		brand:     brand.Default(),
		log:       discard,
		threshold: geom.OverflowY,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithVariant selects the branding variant. The default is Full.
func WithVariant(v Variant) Option {
	return func(c *buildConfig) {
		c.variant = v
	}
}

// WithBrand sets the palette, contact details and logo.
// A nil brand keeps the default.
func WithBrand(b *brand.Brand) Option {
	return func(c *buildConfig) {
		if b != nil {
			c.brand = b
		}
	}
}

// WithMeasurer sets the text measurer. It must measure text the way the
// renderer that will draw the document does, usually render.Metrics.
func WithMeasurer(m surface.Measurer) Option {
	return func(c *buildConfig) {
		c.measurer = m
	}
}

// WithLogger sets the logger that receives per-section decisions at debug
// level. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOverflowThreshold sets the cursor Y past which a new block, spec card
// row or column subsection starts on a fresh page (or is dropped, where the
// section does not paginate).
func WithOverflowThreshold(y float64) Option {
	return func(c *buildConfig) {
		c.threshold = y
	}
}
