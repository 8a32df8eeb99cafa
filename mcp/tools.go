package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier"
	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/render"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Config holds what the tools share between calls.
type Config struct {
	FontDir string       // TrueType directory; empty uses the core fonts
	Brand   *brand.Brand // default brand; nil uses brand.Default
	Log     logrus.FieldLogger
}

type toolset struct {
	cfg   Config
	fonts render.FontSet
}

// RegisterDefaultTools adds the dossier tools to the server.
func RegisterDefaultTools(s *Server, cfg Config) {
	ts := &toolset{cfg: cfg, fonts: render.ResolveFonts(cfg.FontDir)}
	s.AddTool(generateDossierTool(ts))
	s.AddTool(planDossierTool(ts))
	s.AddTool(segmentTextTool())
}

// dossierInputs is the input schema shared by generate and plan.
func dossierInputs(extra map[string]any) map[string]any {
	props := map[string]any{
		"record": map[string]any{
			"type":        "object",
			"description": "Asset record: make, model, year, tagline, description, highlights, keySpecs, airframe, engines, apu, interior, exterior, avionics, equipment, maintenanceStatus",
		},
		"recordPath": map[string]any{
			"type":        "string",
			"description": "Path to a record JSON file, used when 'record' is omitted",
		},
		"images": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Image file paths in display order; the first is the cover image",
		},
		"variant": map[string]any{
			"type":        "string",
			"enum":        []string{"full", "clean"},
			"description": "Branding variant (default full)",
		},
		"brandPath": map[string]any{
			"type":        "string",
			"description": "Optional brand JSON file (palette, contact, logo)",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{"type": "object", "properties": props}
}

func generateDossierTool(ts *toolset) Tool {
	return Tool{
		Name:        "generate_dossier",
		Description: "Lay out an aircraft dossier from an asset record and images and render it to PDF. Returns the file path or the PDF as base64.",
		InputSchema: dossierInputs(map[string]any{
			"outputPath": map[string]any{
				"type":        "string",
				"description": "Optional file path to save the PDF. If omitted, returns base64.",
			},
		}),
		Handler: ts.generate,
	}
}

func (ts *toolset) generate(ctx context.Context, args map[string]any) (ToolResult, error) {
	in, err := ts.inputs(args)
	if err != nil {
		return ToolResult{}, err
	}
	doc, err := ts.build(ctx, in)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, doc, in.assets(), render.WithFonts(ts.fonts)); err != nil {
		return ToolResult{}, fmt.Errorf("rendering PDF: %w", err)
	}

	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return textResult("Dossier created: %s (%d pages, %d bytes)", outputPath, doc.NumPages(), buf.Len()), nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return textResult("Dossier created (%d pages, %d bytes). Base64 data:\n%s", doc.NumPages(), buf.Len(), encoded), nil
}

func planDossierTool(ts *toolset) Tool {
	return Tool{
		Name:        "plan_dossier",
		Description: "Lay out an aircraft dossier without rendering it and return the section and draw-command counts of every page.",
		InputSchema: dossierInputs(nil),
		Handler:     ts.plan,
	}
}

func (ts *toolset) plan(ctx context.Context, args map[string]any) (ToolResult, error) {
	in, err := ts.inputs(args)
	if err != nil {
		return ToolResult{}, err
	}
	doc, err := ts.build(ctx, in)
	if err != nil {
		return ToolResult{}, err
	}
	out, err := json.MarshalIndent(map[string]any{
		"pages":    doc.NumPages(),
		"sections": doc.Sections(),
		"layout":   dossier.Summarize(doc),
	}, "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return textResult("%s", out), nil
}

func segmentTextTool() Tool {
	return Tool{
		Name:        "segment_text",
		Description: "Normalize a free-text record field and split it into paragraph units, marking list items as bullets.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Field text, one item per line",
				},
			},
			"required": []string{"text"},
		},
		Handler: handleSegmentText,
	}
}

func handleSegmentText(_ context.Context, args map[string]any) (ToolResult, error) {
	text, ok := args["text"].(string)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'text' argument")
	}

	type unit struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	units := make([]unit, 0)
	for _, u := range segment.Segment(segment.Normalize(text)) {
		units = append(units, unit{Kind: u.Kind.String(), Text: u.Text})
	}
	out, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return textResult("%s", out), nil
}

// inputs is a decoded generate/plan request.
type inputs struct {
	rec     *record.Record
	images  []*asset.Asset
	variant dossier.Variant
	brand   *brand.Brand
}

// assets returns every image the document may draw.
func (in inputs) assets() []*asset.Asset {
	out := append([]*asset.Asset(nil), in.images...)
	if in.brand.Logo != nil {
		out = append(out, in.brand.Logo)
	}
	return out
}

func (ts *toolset) inputs(args map[string]any) (inputs, error) {
	var in inputs
	var err error

	switch {
	case args["record"] != nil:
		data, merr := json.Marshal(args["record"])
		if merr != nil {
			return in, fmt.Errorf("encoding record: %w", merr)
		}
		in.rec, err = record.Parse(data)
	case args["recordPath"] != nil:
		path, _ := args["recordPath"].(string)
		in.rec, err = record.Load(path)
	default:
		return in, fmt.Errorf("missing 'record' or 'recordPath' argument")
	}
	if err != nil {
		return in, err
	}

	var paths []string
	if raw, ok := args["images"].([]any); ok {
		for _, p := range raw {
			s, ok := p.(string)
			if !ok {
				return in, fmt.Errorf("'images' must be a list of paths")
			}
			paths = append(paths, s)
		}
	}
	if in.images, err = asset.LoadAll(paths...); err != nil {
		return in, err
	}

	in.variant = dossier.Full
	if v, ok := args["variant"].(string); ok && v != "" {
		if in.variant, err = dossier.ParseVariant(v); err != nil {
			return in, err
		}
	}

	switch {
	case args["brandPath"] != nil:
		path, _ := args["brandPath"].(string)
		if in.brand, err = brand.Load(path); err != nil {
			return in, err
		}
	case ts.cfg.Brand != nil:
		in.brand = ts.cfg.Brand
	default:
		in.brand = brand.Default()
	}
	return in, nil
}

func (ts *toolset) build(ctx context.Context, in inputs) (*surface.Document, error) {
	m, err := render.NewMetrics(ts.fonts)
	if err != nil {
		return nil, err
	}
	opts := []dossier.Option{
		dossier.WithVariant(in.variant),
		dossier.WithBrand(in.brand),
		dossier.WithMeasurer(m),
		dossier.WithLogger(ts.cfg.Log),
	}
	return dossier.Build(ctx, in.rec, in.images, opts...)
}
