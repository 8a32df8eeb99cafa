package section

import (
	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/flow"
	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/segment"
)

// Columns lays out a two-column prose section. Empty subsections are
// dropped; when none remain the section emits nothing. The first ceil(n/2)
// subsections flow down the left column and the rest down the right one.
// Both columns start below the title on the section's first page and
// continue onto the section's following pages independently.
func Columns(env *Env, name, title string, subs []Subsection, uppercase bool) (Outcome, error) {
	var kept []Subsection
	for _, s := range subs {
		if !s.Empty() {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return Outcome{}, nil
	}

	ctx := env.Ctx
	ctx.Reset()
	pg := newPager(env, name)
	ctx.SetPage(pg.Page(0))
	env.title(title, 20, geom.RuleWidth(), geom.SideMargin)

	style := ProseStyle(env.palette(), uppercase)
	left, right := Balance(kept)

	breaks := 0
	for _, group := range []struct {
		col  geom.Column
		subs []Subsection
	}{
		{geom.LeftColumn, left},
		{geom.RightColumn, right},
	} {
		f := flow.New(ctx, pg, group.col, style, contentY, env.Limits)
		for _, s := range group.subs {
			f.PlaceBlock(s.Title, s.Units)
		}
		breaks += f.Breaks()
	}

	env.logger().WithFields(logrus.Fields{
		"section": name,
		"left":    len(left),
		"right":   len(right),
		"pages":   len(pg.pages),
		"breaks":  breaks,
	}).Debug("columns placed")
	return Outcome{Pages: pg.pages}, ctx.Error()
}

// LineList lays out a newline-delimited list in two columns without headers.
// The whole list is segmented first and its units are split by count, so a
// three-line list puts two bullets left and one right.
func LineList(env *Env, name, title, text string, uppercase bool) (Outcome, error) {
	units := segment.Segment(segment.Normalize(text))
	left, right := Balance(units)
	return Columns(env, name, title, []Subsection{{Units: left}, {Units: right}}, uppercase)
}

// Technical lays out the airframe, engines and APU prose.
func Technical(env *Env, rec *record.Record) (Outcome, error) {
	return Columns(env, NameTechnical, "Technical Specifications (Cont.)", []Subsection{
		NewSubsection("Airframe", rec.Airframe.String()),
		NewSubsection("Engines", rec.Engines.String()),
		NewSubsection("APU", rec.APU.String()),
	}, false)
}

// Avionics lays out the avionics list in uppercase.
func Avionics(env *Env, rec *record.Record) (Outcome, error) {
	return LineList(env, NameAvionics, "Avionics", rec.Avionics.String(), true)
}

// Equipment lays out the equipment list.
func Equipment(env *Env, rec *record.Record) (Outcome, error) {
	return LineList(env, NameEquipment, "Equipment", rec.Equipment.String(), false)
}

// Configuration lays out the interior and exterior prose.
func Configuration(env *Env, rec *record.Record) (Outcome, error) {
	return Columns(env, NameConfiguration, "Configuration Details", []Subsection{
		NewSubsection("Interior", rec.Interior.String()),
		NewSubsection("Exterior", rec.Exterior.String()),
	}, false)
}
