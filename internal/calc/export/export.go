// Package export renders a chart curve set into interchange formats for
// callers that do their own plotting: a flat CSV and an xlsx workbook with
// one sheet per curve family.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"Psychro/internal/chart"
)

// ToCSV writes every curve point as one row: family, curve label, dry-bulb
// temperature and humidity ratio.
func ToCSV(set chart.Set, buf *bytes.Buffer) {
	buf.WriteString("family,curve,t_c,w_kg_per_kg\n")
	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, fam := range set.Families {
		for ci, c := range fam.Curves {
			label := c.Label
			if label == "" {
				label = strconv.Itoa(ci)
			}
			for _, p := range c.Points {
				buf.WriteString(fam.Name)
				buf.WriteString(",")
				buf.WriteString(label)
				writeFloat(p.T)
				writeFloat(p.W)
				buf.WriteString("\n")
			}
		}
	}
}

// ToXLSX builds a workbook with a summary sheet (pressure and axis ranges)
// and one sheet per family.
func ToXLSX(set chart.Set) (*excelize.File, error) {
	f := excelize.NewFile()
	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)

	f.SetCellValue(summary, "A1", "Pressure (Pa)")
	f.SetCellValue(summary, "B1", set.PressurePa)
	f.SetCellValue(summary, "A2", "Dry-bulb range (C)")
	f.SetCellValue(summary, "B2", set.TMinC)
	f.SetCellValue(summary, "C2", set.TMaxC)
	f.SetCellValue(summary, "A3", "Humidity ratio range (kg/kg)")
	f.SetCellValue(summary, "B3", set.WMin)
	f.SetCellValue(summary, "C3", set.WMax)

	row := 5
	f.SetCellValue(summary, "A4", "Families")
	for _, fam := range set.Families {
		f.SetCellValue(summary, fmt.Sprintf("A%d", row), fam.Name)
		f.SetCellValue(summary, fmt.Sprintf("B%d", row), fam.Legend)
		f.SetCellValue(summary, fmt.Sprintf("C%d", row), fam.Style)
		row++
	}

	for _, fam := range set.Families {
		if _, err := f.NewSheet(fam.Name); err != nil {
			return nil, err
		}
		f.SetCellValue(fam.Name, "A1", "curve")
		f.SetCellValue(fam.Name, "B1", "t_c")
		f.SetCellValue(fam.Name, "C1", "w_kg_per_kg")
		r := 2
		for ci, c := range fam.Curves {
			label := c.Label
			if label == "" {
				label = strconv.Itoa(ci)
			}
			for _, p := range c.Points {
				f.SetCellValue(fam.Name, fmt.Sprintf("A%d", r), label)
				f.SetCellValue(fam.Name, fmt.Sprintf("B%d", r), p.T)
				f.SetCellValue(fam.Name, fmt.Sprintf("C%d", r), p.W)
				r++
			}
		}
	}
	return f, nil
}
