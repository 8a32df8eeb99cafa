package section_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/section"
	"github.com/jetspec/dossier/segment"
	"github.com/jetspec/dossier/surface"
)

// scaled measures every rune as a tenth of the font size.
type scaled struct{}

func (scaled) StringWidth(f surface.Font, s string) float64 {
	return float64(len([]rune(s))) * f.Size / 10
}

type sink struct {
	pages []*surface.Page
}

func (s *sink) NewPage(name string) *surface.Page {
	p := surface.NewPage(name)
	s.pages = append(s.pages, p)
	return p
}

func newEnv() (*section.Env, *sink) {
	s := &sink{}
	return &section.Env{
		Ctx:    surface.NewRenderContext(scaled{}),
		Sink:   s,
		Brand:  brand.Default(),
		Limits: flow.DefaultLimits(),
	}, s
}

func textsAt(p *surface.Page) []surface.Text {
	var out []surface.Text
	for _, c := range p.Commands() {
		if t, ok := c.(surface.Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func findText(t *testing.T, p *surface.Page, s string) surface.Text {
	t.Helper()
	for _, txt := range textsAt(p) {
		if txt.Str == s {
			return txt
		}
	}
	t.Fatalf("text %q not found in %v", s, p.Texts())
	return surface.Text{}
}

func rectsOf(p *surface.Page, keep func(surface.Rect) bool) []surface.Rect {
	var out []surface.Rect
	for _, c := range p.Commands() {
		if r, ok := c.(surface.Rect); ok && keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func TestBalance(t *testing.T) {
	for n := 0; n <= 7; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		left, right := section.Balance(items)
		assert.Len(t, left, (n+1)/2, "n=%d", n)
		assert.Len(t, right, n/2, "n=%d", n)
		assert.Equal(t, items, append(append([]int{}, left...), right...), "n=%d", n)
	}
}

func TestCoverWithHero(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{Make: "Gulfstream", Model: "G650", Year: "2016"}
	hero := &asset.Asset{Handle: "hero", Width: 400, Height: 300}

	out, err := section.Cover(env, rec, hero)
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)
	require.Len(t, s.pages, 1)

	page := s.pages[0]
	assert.Equal(t, section.NameCover, page.Section())
	assert.Equal(t, []surface.Image{{Handle: "hero", X: 8.5, Y: 0, W: 280, H: 210}}, page.Images())

	plates := rectsOf(page, func(r surface.Rect) bool { return r.Y == 150 })
	require.Len(t, plates, 1)
	assert.Equal(t, 0.8, plates[0].Alpha)
	assert.Equal(t, 60.0, plates[0].H)

	assert.Equal(t, []string{"AIRCRAFT DOSSIER", "G650", "2016 | GULFSTREAM"}, page.Texts())
	tagline := findText(t, page, "AIRCRAFT DOSSIER")
	assert.Equal(t, surface.Sans, tagline.Font.Family)
	assert.Equal(t, 186.0, findText(t, page, "2016 | GULFSTREAM").Y)
}

func TestCoverWithoutHeroOrFields(t *testing.T) {
	env, s := newEnv()
	out, err := section.Cover(env, &record.Record{Make: "Dassault", Tagline: "Ultra long range"}, nil)
	require.NoError(t, err)
	assert.True(t, out.Emitted())
	page := s.pages[0]
	assert.Empty(t, page.Images())
	assert.Empty(t, rectsOf(page, func(surface.Rect) bool { return true }))
	assert.Equal(t, []string{"ULTRA LONG RANGE", "AIRCRAFT", "DASSAULT"}, page.Texts())
}

func TestSpecsSuppressedWhenEmpty(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{KeySpecs: []record.Spec{{}}, Highlights: []record.Highlight{{Point: " "}}}
	out, err := section.Specs(env, rec)
	require.NoError(t, err)
	assert.False(t, out.Emitted())
	assert.Empty(t, s.pages)
}

func TestSpecsSuppressedWhenHighlightsUnprintable(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{Highlights: []record.Highlight{{Point: "低工时"}, {Point: "\u200b"}}}
	out, err := section.Specs(env, rec)
	require.NoError(t, err)
	assert.False(t, out.Emitted())
	assert.Empty(t, s.pages)
}

func TestSpecsGridOnly(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{Model: "G650", KeySpecs: []record.Spec{{Label: "Range", Value: "7000nm"}}}
	out, err := section.Specs(env, rec)
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)

	page := s.pages[0]
	assert.Equal(t, []string{"Technical Specifications", "RANGE", "7000nm"}, page.Texts())
	value := findText(t, page, "7000nm")
	assert.Equal(t, 14.0, value.Font.Size)
	assert.Equal(t, 19.0, value.X)
	assert.Equal(t, 50.0, value.Y)
}

func TestSpecsGridDropsPastThreshold(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{}
	for i := 0; i < 20; i++ {
		rec.KeySpecs = append(rec.KeySpecs, record.Spec{Label: record.Text(fmt.Sprintf("Spec %d", i)), Value: "1"})
	}
	rec.KeySpecs[0].Value = record.Text(strings.Repeat("x", 40))

	out, err := section.Specs(env, rec)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Dropped)

	page := s.pages[0]
	cards := rectsOf(page, func(r surface.Rect) bool { return r.W == 60 && r.H == 22 })
	assert.Len(t, cards, 14)
	assert.Equal(t, 75.0, cards[1].X)
	assert.Equal(t, 172.0, cards[13].Y)

	assert.Equal(t, 11.0, findText(t, page, strings.Repeat("x", 40)).Font.Size)
	assert.NotContains(t, page.Texts(), "SPEC 14")
}

func TestSpecsSummaryDropsHighlights(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{}
	for i := 0; i < 30; i++ {
		rec.Highlights = append(rec.Highlights, record.Highlight{Point: record.Text(fmt.Sprintf("Point %d", i))})
	}
	out, err := section.Specs(env, rec)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Dropped)

	page := s.pages[0]
	assert.Equal(t, "The Asset", page.Texts()[0])
	assert.NotContains(t, page.Texts(), "Technical Specifications")
	squares := rectsOf(page, func(r surface.Rect) bool { return r.W == 2 })
	assert.Len(t, squares, 26)
	assert.Equal(t, 150.0, findText(t, page, "Point 0").X)
}

func TestSpecsDescriptionPushesHighlights(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{Description: "A well kept example.", Highlights: []record.Highlight{{Point: "Low hours"}}}
	_, err := section.Specs(env, rec)
	require.NoError(t, err)

	page := s.pages[0]
	assert.Equal(t, 35.0, findText(t, page, "A well kept example.").Y)
	assert.Equal(t, 46.0, findText(t, page, "Low hours").Y)
}

func TestSpecsLongDescriptionStaysOnPage(t *testing.T) {
	env, s := newEnv()
	desc := strings.Repeat("word ", 900)
	rec := &record.Record{Description: record.Text(desc), Highlights: []record.Highlight{{Point: "Low hours"}}}
	out, err := section.Specs(env, rec)
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)

	page := s.pages[0]
	for _, txt := range textsAt(page) {
		assert.LessOrEqual(t, txt.Y+txt.H, geom.UsableBottom(), "text %q at y=%g", txt.Str, txt.Y)
	}

	body := surface.Font{Family: surface.Serif, Size: 10}
	lines := flow.Wrap(scaled{}, body, strings.TrimSpace(desc), geom.PageWidth-geom.SummaryColumn.X-geom.SideMargin)
	// 26 lines fit between y=35 and the usable bottom; the highlight is dropped too.
	assert.Equal(t, len(lines)-26+1, out.Dropped)
	assert.NotContains(t, page.Texts(), "Low hours")
	assert.Empty(t, rectsOf(page, func(r surface.Rect) bool { return r.W == 2 }))
}

func TestUppercaseKeepsLatin1Letters(t *testing.T) {
	env, s := newEnv()
	_, err := section.Avionics(env, &record.Record{Avionics: "Display 10 µs latency\nCafé ÿ unit"})
	require.NoError(t, err)
	texts := s.pages[0].Texts()
	assert.Contains(t, texts, "DISPLAY 10 µS LATENCY")
	assert.Contains(t, texts, "CAFÉ ÿ UNIT")
}

func TestGalleryScenarioD(t *testing.T) {
	env, s := newEnv()
	var images []*asset.Asset
	for i := 0; i < 5; i++ {
		images = append(images, &asset.Asset{Handle: fmt.Sprintf("img%d", i), Width: 400, Height: 300})
	}
	out, err := section.Gallery(env, &record.Record{Model: "G650"}, images)
	require.NoError(t, err)
	require.Len(t, out.Pages, 4)

	for i, page := range s.pages {
		assert.Equal(t, section.NameGallery, page.Section())
		require.Len(t, page.Images(), 1)
		assert.Equal(t, fmt.Sprintf("img%d", i+1), page.Images()[0].Handle)
		assert.Equal(t, []string{fmt.Sprintf("G650 | VIEW %d", i+1)}, page.Texts())
	}
	caption := findText(t, s.pages[0], "G650 | VIEW 1")
	assert.Equal(t, 12.0, caption.X)
	assert.Equal(t, 195.0, caption.Y)
}

func TestGalleryNeedsTwoImages(t *testing.T) {
	env, s := newEnv()
	out, err := section.Gallery(env, &record.Record{}, []*asset.Asset{{Handle: "hero", Width: 1, Height: 1}})
	require.NoError(t, err)
	assert.False(t, out.Emitted())
	assert.Empty(t, s.pages)
}

func TestGalleryDegenerateImage(t *testing.T) {
	env, s := newEnv()
	images := []*asset.Asset{{Handle: "hero"}, {Handle: "flat", Width: 640, Height: 0}}
	_, err := section.Gallery(env, &record.Record{}, images)
	require.NoError(t, err)
	img := s.pages[0].Images()[0]
	assert.Equal(t, img.W, img.H)
	assert.Equal(t, []string{"VIEW 1"}, s.pages[0].Texts())
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "CITATION X | VIEW 3", section.Caption(&record.Record{Model: "Citation X"}, 3))
	assert.Equal(t, "VIEW 1", section.Caption(&record.Record{}, 1))
}

func TestLineListScenarioC(t *testing.T) {
	env, s := newEnv()
	units := segment.Segment("Item A\nItem B\nItem C")
	require.Len(t, units, 3)
	assert.Equal(t, 3, segment.Count(units, segment.Bullet))

	out, err := section.LineList(env, section.NameAvionics, "Avionics", "Item A\nItem B\nItem C", true)
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)

	page := s.pages[0]
	assert.Equal(t, []string{"Avionics", "•", "ITEM A", "•", "ITEM B", "•", "ITEM C"}, page.Texts())
	assert.Equal(t, 21.0, findText(t, page, "ITEM A").X)
	assert.Equal(t, 21.0, findText(t, page, "ITEM B").X)
	right := findText(t, page, "ITEM C")
	assert.Equal(t, 161.0, right.X)
	assert.Equal(t, 40.0, right.Y)
}

func TestLineListEquipmentKeepsCase(t *testing.T) {
	env, s := newEnv()
	_, err := section.Equipment(env, &record.Record{Equipment: "Wi-Fi\nSatcom"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Equipment", "•", "Wi-Fi", "•", "Satcom"}, s.pages[0].Texts())
}

func TestColumnsSuppressedWhenEmpty(t *testing.T) {
	env, s := newEnv()
	for _, plan := range []func(*section.Env, *record.Record) (section.Outcome, error){
		section.Technical, section.Avionics, section.Equipment, section.Configuration,
	} {
		out, err := plan(env, &record.Record{Airframe: "  ", Interior: "\n\n"})
		require.NoError(t, err)
		assert.False(t, out.Emitted())
	}
	assert.Empty(t, s.pages)
}

func TestTechnicalSingleSubsection(t *testing.T) {
	env, s := newEnv()
	out, err := section.Technical(env, &record.Record{Engines: "Two Rolls-Royce BR725"})
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)

	page := s.pages[0]
	assert.Equal(t, []string{"Technical Specifications (Cont.)", "ENGINES", "Two Rolls-Royce BR725"}, page.Texts())
	header := findText(t, page, "ENGINES")
	assert.Equal(t, 15.0, header.X)
	assert.Equal(t, 40.0, header.Y)

	divider := rectsOf(page, func(r surface.Rect) bool { return r.H == 0.5 })
	require.Len(t, divider, 1)
	assert.Equal(t, 267.0, divider[0].W)
}

func TestColumnsOverflowKeepsRightColumnOnFirstPage(t *testing.T) {
	env, s := newEnv()
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("Airframe item %d", i))
	}
	rec := &record.Record{Airframe: record.Text(strings.Join(lines, "\n")), APU: "Honeywell RE220"}

	out, err := section.Technical(env, rec)
	require.NoError(t, err)
	require.Len(t, out.Pages, 2)
	require.Len(t, s.pages, 2)

	apu := findText(t, s.pages[0], "APU")
	assert.Equal(t, 155.0, apu.X)
	assert.Equal(t, 40.0, apu.Y)

	assert.Contains(t, s.pages[0].Texts(), "Airframe item 28")
	assert.NotContains(t, s.pages[0].Texts(), "Airframe item 29")
	first := findText(t, s.pages[1], "Airframe item 29")
	assert.Equal(t, 20.0, first.Y)
	assert.Equal(t, section.NameTechnical, s.pages[1].Section())
}

func TestConfiguration(t *testing.T) {
	env, s := newEnv()
	_, err := section.Configuration(env, &record.Record{Interior: "Fourteen seats", Exterior: "Matterhorn white"})
	require.NoError(t, err)
	page := s.pages[0]
	assert.Equal(t, 15.0, findText(t, page, "INTERIOR").X)
	assert.Equal(t, 155.0, findText(t, page, "EXTERIOR").X)
}

func TestMaintenanceScenarioB(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{MaintenanceStatus: []record.Inspection{{}}}
	out, err := section.Maintenance(env, rec)
	require.NoError(t, err)
	assert.False(t, out.Emitted())
	assert.Empty(t, s.pages)
}

func TestMaintenanceRows(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{MaintenanceStatus: []record.Inspection{
		{Inspection: "C-Check", LastPerformed: "Mar 2023", NextDue: "Mar 2027"},
		{},
		{NextDue: "Jan 2025"},
	}}
	out, err := section.Maintenance(env, rec)
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)

	page := s.pages[0]
	assert.Equal(t, []string{
		"Maintenance Status",
		"INSPECTION", "LAST", "NEXT",
		"C-CHECK", "MAR 2023", "MAR 2027",
		"JAN 2025",
	}, page.Texts())
	header := findText(t, page, "INSPECTION")
	assert.Equal(t, brand.Default().Palette.Accent, header.Color)

	rules := rectsOf(page, func(r surface.Rect) bool { return r.H == 0.2 })
	assert.Len(t, rules, 2)
}

func TestMaintenanceDropsOverflowRows(t *testing.T) {
	env, s := newEnv()
	rec := &record.Record{}
	for i := 0; i < 30; i++ {
		rec.MaintenanceStatus = append(rec.MaintenanceStatus, record.Inspection{Inspection: record.Text(fmt.Sprintf("Check %d", i))})
	}
	out, err := section.Maintenance(env, rec)
	require.NoError(t, err)
	assert.Equal(t, 9, out.Dropped)
	require.Len(t, s.pages, 1)
	assert.Contains(t, s.pages[0].Texts(), "CHECK 20")
	assert.NotContains(t, s.pages[0].Texts(), "CHECK 21")
}

func TestContactWithoutLogo(t *testing.T) {
	env, s := newEnv()
	out, err := section.Contact(env, "4f1c0a3e-5d0b-5c11-9a0e-3b2f6f6b9c41")
	require.NoError(t, err)
	require.Len(t, out.Pages, 1)

	page := s.pages[0]
	assert.Equal(t, section.NameContact, page.Section())
	assert.Equal(t, []string{
		"CONTACT US",
		"glintero@glintero.com",
		"+971 4 330 1528",
		"PO Box 453440, Dubai, UAE",
		"www.glintero.com",
	}, page.Texts())
	assert.Equal(t, 105.0, findText(t, page, "glintero@glintero.com").Y)

	white := brand.Default().Palette.Title
	plates := rectsOf(page, func(r surface.Rect) bool { return r.Fill == white })
	require.Len(t, plates, 2)
	assert.Equal(t, 30.0, plates[0].W)
	assert.Equal(t, 60.0, plates[1].W)
	assert.Equal(t, 148.5, (plates[0].X+plates[1].X+plates[1].W)/2)
}

func TestContactWithLogo(t *testing.T) {
	env, s := newEnv()
	env.Brand.Logo = &asset.Asset{Handle: "brand-logo", Width: 400, Height: 100}
	env.Brand.Contact = brand.Contact{Email: "sales@acme.test"}

	_, err := section.Contact(env, "")
	require.NoError(t, err)
	page := s.pages[0]
	assert.Equal(t, []surface.Image{{Handle: "brand-logo", X: 108.5, Y: 60, W: 80, H: 20}}, page.Images())
	assert.Equal(t, []string{"sales@acme.test"}, page.Texts())
	assert.Equal(t, 95.0, findText(t, page, "sales@acme.test").Y)
	assert.Empty(t, rectsOf(page, func(surface.Rect) bool { return true }))
}
