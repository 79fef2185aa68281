package report

import (
	"github.com/xuri/excelize/v2"
)

type styles struct {
	letterhead int
	title      int
	subtitle   int
	bold       int
	header     int
	cell       int
	total      int
	totalLabel int
}

// sheet wraps one worksheet and keeps the first excelize error, so layout
// code can issue writes without checking each one.
type sheet struct {
	f      *excelize.File
	name   string
	styles styles
	err    error
}

func newSheet(f *excelize.File, name string) (*sheet, error) {
	s := &sheet{f: f, name: name}

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	fill := excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1}
	accent := &excelize.Font{Bold: true, Color: accentFont}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.styles.letterhead, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		}},
		{&s.styles.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 14, Underline: "single"},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.styles.subtitle, &excelize.Style{
			Font:      &excelize.Font{Size: 12},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.styles.bold, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		}},
		{&s.styles.header, &excelize.Style{
			Font:      accent,
			Fill:      fill,
			Border:    thin,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}},
		{&s.styles.cell, &excelize.Style{
			Border:    thin,
			Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		}},
		{&s.styles.total, &excelize.Style{
			Font:      accent,
			Fill:      fill,
			Border:    thin,
			Alignment: &excelize.Alignment{Vertical: "center"},
		}},
		{&s.styles.totalLabel, &excelize.Style{
			Font:      accent,
			Fill:      fill,
			Border:    thin,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.dst = id
	}
	return s, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (s *sheet) set(col, row int, v interface{}) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellValue(s.name, cellName(col, row), v)
}

func (s *sheet) row(row int, values []interface{}) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetSheetRow(s.name, cellName(1, row), &values)
}

func (s *sheet) richText(col, row int, runs []excelize.RichTextRun) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellRichText(s.name, cellName(col, row), runs)
}

func (s *sheet) merge(c1, r1, c2, r2 int) {
	if s.err != nil {
		return
	}
	s.err = s.f.MergeCell(s.name, cellName(c1, r1), cellName(c2, r2))
}

func (s *sheet) style(c1, r1, c2, r2, id int) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellStyle(s.name, cellName(c1, r1), cellName(c2, r2), id)
}

func (s *sheet) height(row int, h float64) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetRowHeight(s.name, row, h)
}

func (s *sheet) width(col int, w float64) {
	if s.err != nil {
		return
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetColWidth(s.name, name, name, w)
}

// picture anchors img at the cell, scaled to tw×th pixels.
func (s *sheet) picture(col, row int, img *Image, tw, th float64, offX, offY int) {
	if s.err != nil {
		return
	}
	s.err = s.f.AddPictureFromBytes(s.name, cellName(col, row), &excelize.Picture{
		Extension: img.Ext,
		File:      img.Data,
		Format: &excelize.GraphicOptions{
			OffsetX:     offX,
			OffsetY:     offY,
			ScaleX:      tw / float64(img.Width),
			ScaleY:      th / float64(img.Height),
			Positioning: "oneCell",
		},
	})
}
