// Package section plans the logical sections of a dossier.
//
// Each planner reads the record, decides whether its section has anything to
// say, and if so lays it out onto pages obtained from a Sink. A section with
// no content emits no page at all. Planners never decide page furniture
// (background, footer, logo); the Sink and the document builder own that.
package section

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// Section names, in document order.
const (
	NameCover         = "cover"
	NameSpecs         = "specs"
	NameGallery       = "gallery"
	NameTechnical     = "technical"
	NameAvionics      = "avionics"
	NameEquipment     = "equipment"
	NameMaintenance   = "maintenance"
	NameConfiguration = "configuration"
	NameContact       = "contact"
)

// Sink creates the pages planners draw on.
type Sink interface {
	// NewPage appends a fresh page attributed to section and returns it.
	NewPage(section string) *surface.Page
}

// Env is what every planner draws with.
type Env struct {
	Ctx    *surface.RenderContext
	Sink   Sink
	Brand  *brand.Brand
	Limits flow.Limits
	Log    logrus.FieldLogger
}

// Outcome reports what a planner emitted.
type Outcome struct {
	Pages   []*surface.Page
	Dropped int // items left out because their region was full
}

// Emitted reports whether the section produced any page.
func (o Outcome) Emitted() bool { return len(o.Pages) > 0 }

// pager hands out the pages of one section, creating them on demand.
type pager struct {
	sink  Sink
	name  string
	pages []*surface.Page
}

func newPager(env *Env, name string) *pager {
	return &pager{sink: env.Sink, name: name}
}

func (p *pager) Page(i int) *surface.Page {
	for len(p.pages) <= i {
		p.pages = append(p.pages, p.sink.NewPage(p.name))
	}
	return p.pages[i]
}

// Balance splits items in two by position: the first ceil(n/2) go left and
// the rest go right.
func Balance[T any](items []T) (left, right []T) {
	mid := (len(items) + 1) / 2
	return items[:mid], items[mid:]
}

// Subsection is a named block of a two-column section. An empty title draws
// no header.
type Subsection struct {
	Title string
	Units []segment.Unit
}

// NewSubsection normalizes and segments text under title.
func NewSubsection(title, text string) Subsection {
	return Subsection{Title: title, Units: segment.Segment(segment.Normalize(text))}
}

// Empty reports whether the subsection has no units.
func (s Subsection) Empty() bool { return len(s.Units) == 0 }

// Layout constants shared by the content pages.
const (
	titleY      = geom.ContentTop
	titleH      = 10.0
	dividerY    = 32.0
	dividerH    = 0.5
	contentY    = 40.0
	captionSize = 8.0
)

func (e *Env) palette() brand.Palette { return e.Brand.Palette }

func (e *Env) logger() logrus.FieldLogger {
	if e.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return e.Log
}

// title draws a section title and its accent divider of width w.
func (e *Env) title(text string, size, w float64, x float64) {
	p := e.palette()
	e.Ctx.SetFont(surface.Serif, "B", size)
	e.Ctx.SetTextColor(p.Title)
	e.Ctx.Text(x, titleY, titleH, segment.Normalize(text))
	e.divider(x, dividerY, w)
}

func (e *Env) divider(x, y, w float64) {
	e.Ctx.SetAlpha(1)
	e.Ctx.SetFillColor(e.palette().Accent)
	e.Ctx.Rect(x, y, w, dividerH)
}

// ProseStyle is the column style of the two-column sections.
func ProseStyle(p brand.Palette, uppercase bool) flow.Style {
	return flow.Style{
		Heading:      surface.Font{Family: surface.Serif, Style: "B", Size: 10},
		HeadingColor: p.Accent,
		HeadingH:     6,
		Body:         surface.Font{Family: surface.Serif, Size: 9},
		BodyColor:    p.Body,
		LineH:        5,
		Marker:       surface.Font{Family: surface.Serif, Style: "B", Size: 14},
		MarkerColor:  p.Accent,
		MarkerGlyph:  "•",
		MarkerW:      5,
		MarkerGap:    1,
		BlockGap:     5,
		Uppercase:    uppercase,
	}
}
