package section

import (
	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/geom"
	"github.com/jetspec/dossier/record"
	"github.com/jetspec/dossier/surface"
	"github.com/jetspec/dossier/table"
)

// Maintenance table layout.
const (
	maintWidth   = 125.0
	maintTableY  = 38.0
	maintHeaderH = 8.0
	maintRowH    = 7.0
	maintRule    = 0.2
)

var maintColumns = []float64{45, 40, 40}

// Maintenance lays out the maintenance table. Only rows with at least one
// populated field are included, and no rows means no page. Rows that would
// pass the usable bottom of the page are dropped, earliest kept.
func Maintenance(env *Env, rec *record.Record) (Outcome, error) {
	rows := rec.Inspections()
	if len(rows) == 0 {
		return Outcome{}, nil
	}

	ctx := env.Ctx
	ctx.Reset()
	pg := newPager(env, NameMaintenance)
	ctx.SetPage(pg.Page(0))
	env.title("Maintenance Status", 18, maintWidth, geom.SideMargin)

	p := env.palette()
	tbl := table.New(ctx, pg)
	tbl.SetColumnWidths(maintColumns...)
	tbl.SetPosition(geom.SideMargin, maintTableY)
	tbl.SetLimits(env.Limits.Top, env.Limits.Bottom)
	tbl.SetOverflow(table.OverflowDrop)
	tbl.SetStyle(table.TableStyle{
		CellPadding:  table.Padding{Left: 1, Right: 1, Top: 1, Bottom: 1},
		CellFont:     surface.Font{Family: surface.Serif, Size: 8},
		CellColor:    p.Body,
		RowHeight:    maintRowH,
		HeaderHeight: maintHeaderH,
		LineHeight:   5,
		Rule:         &table.RuleStyle{Width: maintRule, Color: p.Rule},
		HeaderStyle: &table.CellStyle{
			TextColor: &p.Accent,
			Font:      &surface.Font{Family: surface.Serif, Style: "B", Size: 8},
		},
	})

	header := tbl.AddHeaderRow()
	header.AddCell("INSPECTION")
	header.AddCell("LAST")
	header.AddCell("NEXT")

	for _, m := range rows {
		row := tbl.AddRow().SetStyle(table.CellStyle{Uppercase: true})
		row.AddCell(m.Inspection.String())
		row.AddCell(m.LastPerformed.String())
		row.AddCell(m.NextDue.String())
	}

	res, err := tbl.Render()
	if err != nil {
		return Outcome{Pages: pg.pages}, err
	}
	if res.Dropped > 0 {
		env.logger().WithFields(logrus.Fields{
			"section": NameMaintenance,
			"dropped": res.Dropped,
		}).Debug("maintenance rows past the page bottom dropped")
	}
	return Outcome{Pages: pg.pages, Dropped: res.Dropped}, nil
}
