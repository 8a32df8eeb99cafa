// Command jetspec renders an aircraft dossier PDF from an asset record and
// a set of images.
//
// Usage:
//
//	jetspec -record g650.json -o g650.pdf [-variant clean] [-brand brand.json]
//	        [-fonts dir] [-appendix source.pdf] [-optimize] [-v] image1.jpg image2.jpg ...
//
// The first image is the cover image; all images appear in the gallery in
// the order given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier"
	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/render"
)

type options struct {
	record    string
	output    string
	variant   string
	brand     string
	fonts     string
	appendix  string
	optimize  bool
	maxPixels int
	threshold float64
	verbose   bool
	images    []string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("jetspec", flag.ContinueOnError)
	o := &options{}
	fs.StringVar(&o.record, "record", "", "asset record JSON file (required)")
	fs.StringVar(&o.output, "o", "dossier.pdf", "output PDF file")
	fs.StringVar(&o.variant, "variant", "full", "branding variant: full or clean")
	fs.StringVar(&o.brand, "brand", "", "brand JSON file")
	fs.StringVar(&o.fonts, "fonts", "", "directory holding PlayfairDisplay and Manrope TrueType files")
	fs.StringVar(&o.appendix, "appendix", "", "PDF whose pages are appended after the dossier")
	fs.BoolVar(&o.optimize, "optimize", false, "optimize the output with pdfcpu")
	fs.IntVar(&o.maxPixels, "max-pixels", 0, "downscale images above this many pixels before embedding")
	fs.Float64Var(&o.threshold, "threshold", 0, "overflow threshold in mm (default 180)")
	fs.BoolVar(&o.verbose, "v", false, "log layout decisions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.record == "" {
		return nil, errors.New("-record is required")
	}
	o.images = fs.Args()
	return o, nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "jetspec: %v\n", err)
		os.Exit(2)
	}
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, log); err != nil {
		log.WithError(err).Fatal("jetspec")
	}
}

func run(ctx context.Context, o *options, log logrus.FieldLogger) error {
	rec, err := record.Load(o.record)
	if err != nil {
		return err
	}
	images, err := asset.LoadAll(o.images...)
	if err != nil {
		return err
	}
	variant, err := dossier.ParseVariant(o.variant)
	if err != nil {
		return err
	}
	b := brand.Default()
	if o.brand != "" {
		if b, err = brand.Load(o.brand); err != nil {
			return err
		}
	}

	fonts := render.ResolveFonts(o.fonts)
	metrics, err := render.NewMetrics(fonts)
	if err != nil {
		return err
	}

	opts := []dossier.Option{
		dossier.WithVariant(variant),
		dossier.WithBrand(b),
		dossier.WithMeasurer(metrics),
		dossier.WithLogger(log),
	}
	if o.threshold > 0 {
		opts = append(opts, dossier.WithOverflowThreshold(o.threshold))
	}
	doc, err := dossier.Build(ctx, rec, images, opts...)
	if err != nil {
		return err
	}

	assets := images
	if b.Logo != nil {
		assets = append(assets, b.Logo)
	}
	ropts := []render.Option{
		render.WithFonts(fonts),
		render.WithMaxImagePixels(o.maxPixels),
		render.WithOptimize(o.optimize),
	}
	if o.appendix != "" {
		ropts = append(ropts, render.WithAppendix(o.appendix))
	}
	if err := render.WriteFile(o.output, doc, assets, ropts...); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"output":   o.output,
		"pages":    doc.NumPages(),
		"sections": doc.Sections(),
	}).Info("dossier written")
	return nil
}
