package table_test

import (
	"fmt"

	"github.com/jetspec/dossier/surface"
	"github.com/jetspec/dossier/table"
)

// ExampleTable lays out a maintenance schedule with a gold header and a
// hairline rule under each row.
func ExampleTable() {
	p := &pages{}
	ctx := surface.NewRenderContext(monospace{})

	gold := surface.Color{R: 212, G: 175, B: 55}
	tbl := table.New(ctx, p)
	tbl.SetColumnWidths(45, 40, 40)
	tbl.SetPosition(15, 38)
	tbl.SetStyle(table.TableStyle{
		CellPadding:  table.Padding{Left: 1, Right: 1, Top: 1, Bottom: 1},
		CellColor:    surface.Color{R: 220, G: 220, B: 220},
		RowHeight:    7,
		HeaderHeight: 8,
		Rule:         &table.RuleStyle{Width: 0.2, Color: surface.Color{R: 50, G: 50, B: 50}},
		HeaderStyle: &table.CellStyle{
			TextColor: &gold,
			Font:      &surface.Font{Family: surface.Serif, Style: "B", Size: 8},
		},
	})

	header := tbl.AddHeaderRow()
	header.AddCell("INSPECTION")
	header.AddCell("LAST")
	header.AddCell("NEXT")

	data := [][]string{
		{"C-Check", "Mar 2023", "Mar 2027"},
		{"12 Month", "Jan 2024", "Jan 2025"},
	}
	for _, d := range data {
		row := tbl.AddRow().SetStyle(table.CellStyle{Uppercase: true})
		for _, v := range d {
			row.AddCell(v)
		}
	}

	res, err := tbl.Render()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.list[0].Texts())
	fmt.Printf("end y=%.0f dropped=%d\n", res.Y, res.Dropped)
	// Output:
	// [INSPECTION LAST NEXT C-CHECK MAR 2023 MAR 2027 12 MONTH JAN 2024 JAN 2025]
	// end y=60 dropped=0
}
