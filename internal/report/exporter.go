package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	SheetName   = "Packing List"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	fixedColumns  = 21
	pictureColumn = 4

	pictureMaxW = 150.0
	pictureMaxH = 50.0
	logoHeight  = 70.0

	headerFill = "FEF9C3"
	accentFont = "800000"
)

var columnWidths = []float64{5, 12, 18, 18, 30, 6, 6, 6, 8, 8, 8, 10, 6, 8, 10, 10, 10, 10, 12, 14, 18}

const customColumnWidth = 15

// Options carries the letterhead lines and image settings of the export.
type Options struct {
	CompanyName    string
	CompanyTagline string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyWebsite string
	LogoPath       string

	ImageBaseURL string
	Workers      int
}

type Exporter struct {
	opts   Options
	images ImageSource
	logger logger.ZapLogger
}

func NewExporter(opts Options, images ImageSource, log logger.ZapLogger) *Exporter {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	return &Exporter{opts: opts, images: images, logger: log}
}

// FileName names an export of orderID taken at now.
func FileName(orderID int64, now time.Time) string {
	return fmt.Sprintf("%d_%s.xlsx", orderID, now.Format("02012006"))
}

// Export renders the packing list of rep as an xlsx workbook into w.
// Pictures that cannot be loaded leave their cell empty.
func (e *Exporter) Export(ctx context.Context, rep *model.OrderReport, w io.Writer) error {
	pictures := e.loadPictures(ctx, rep.Items)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	s, err := newSheet(f, SheetName)
	if err != nil {
		return err
	}

	columns := []string(rep.Order.CustomColumns)
	lastCol := fixedColumns + len(columns)

	e.writeLetterhead(s)
	writeTitle(s, rep.Order, lastCol)
	writeInfo(s, rep.Order, rep.Summary)
	writeHeader(s, columns, rep.Summary.Currency)

	row := headerRow + 2
	for i := range rep.Items {
		writeItem(s, row, i, &rep.Items[i], columns, lastCol)
		if img := pictures[i]; img != nil {
			tw, th := Fit(img.Width, img.Height, pictureMaxW, pictureMaxH)
			s.picture(pictureColumn, row, img, tw, th, 6, 8)
		}
		row++
	}
	writeTotal(s, row, rep.Summary, lastCol)

	for i, width := range columnWidths {
		s.width(i+1, width)
	}
	for i := range columns {
		s.width(fixedColumns+1+i, customColumnWidth)
	}

	if s.err != nil {
		return fmt.Errorf("build packing list: %w", s.err)
	}
	return f.Write(w)
}

func (e *Exporter) writeLetterhead(s *sheet) {
	s.height(1, 110)
	s.merge(4, 1, 12, 1)

	var runs []excelize.RichTextRun
	add := func(text string, font *excelize.Font) {
		if text == "" {
			return
		}
		if len(runs) > 0 {
			runs[len(runs)-1].Text += "\n"
		}
		runs = append(runs, excelize.RichTextRun{Text: text, Font: font})
	}
	add(e.opts.CompanyName, &excelize.Font{Bold: true, Size: 14})
	add(e.opts.CompanyTagline, &excelize.Font{Bold: true, Size: 12})
	add(e.opts.CompanyAddress, &excelize.Font{Size: 11})
	add(e.opts.CompanyPhone, &excelize.Font{Size: 11})
	add(e.opts.CompanyEmail, &excelize.Font{Size: 11})
	add(e.opts.CompanyWebsite, &excelize.Font{Size: 11, Color: accentFont})
	if len(runs) > 0 {
		s.richText(4, 1, runs)
		s.style(4, 1, 4, 1, s.styles.letterhead)
	}

	if e.opts.LogoPath == "" {
		return
	}
	raw, err := os.ReadFile(e.opts.LogoPath)
	if err != nil {
		e.logger.Warn("Failed to read report logo", zap.String("path", e.opts.LogoPath), zap.Error(err))
		return
	}
	logo, err := Prepare(raw, 600, 200)
	if err != nil {
		e.logger.Warn("Failed to decode report logo", zap.String("path", e.opts.LogoPath), zap.Error(err))
		return
	}
	tw := logoHeight * float64(logo.Width) / float64(logo.Height)
	s.picture(1, 1, logo, tw, logoHeight, 8, 20)
}

func writeTitle(s *sheet, o *model.Order, lastCol int) {
	s.set(1, 3, "Packing List & Invoice")
	s.merge(1, 3, lastCol, 3)
	s.height(3, 24)
	s.style(1, 3, lastCol, 3, s.styles.title)

	s.set(1, 4, "NO PI : "+o.NoPI)
	s.merge(1, 4, lastCol, 4)
	s.height(4, 20)
	s.style(1, 4, lastCol, 4, s.styles.subtitle)
}

// Buyer details fill A:J, invoice details sit as label/value pairs in L:M.
func writeInfo(s *sheet, o *model.Order, summary model.OrderSummary) {
	s.set(1, 5, "Buyer Information")
	s.merge(1, 5, 10, 5)
	s.set(12, 5, "Invoice Information")
	s.merge(12, 5, 21, 5)
	s.style(1, 5, 1, 5, s.styles.bold)
	s.style(12, 5, 12, 5, s.styles.bold)

	s.set(1, 6, o.BuyerName)
	s.merge(1, 6, 10, 6)

	s.set(1, 7, deref(o.BuyerAddress))
	s.merge(1, 7, 10, 7)

	volume := summary.TotalCBM
	if v := deref(o.Volume); v != "" {
		volume = v + " CBM"
	}
	date := "-"
	switch {
	case o.InvoiceDate.Valid:
		date = o.InvoiceDate.Time.Format("02/01/2006")
	case !o.CreatedAt.IsZero():
		date = o.CreatedAt.Format("02/01/2006")
	}

	pairs := []struct{ label, value string }{
		{"Volume:", volume},
		{"Port of Loading:", orDash(deref(o.PortLoading))},
		{"Destination Port:", orDash(deref(o.DestinationPort))},
		{"Date:", date},
	}
	for i, p := range pairs {
		row := 7 + i
		s.set(12, row, p.label)
		s.set(13, row, p.value)
		s.style(12, row, 13, row, s.styles.bold)
	}
}

const headerRow = 11

func writeHeader(s *sheet, columns []string, currency string) {
	top := []interface{}{
		"No", "Client Code", "KM Code", "Picture", "Description",
		"Size (cm)", "", "", "Packing Size (cm)", "", "",
		"Color", "Qty", "CBM", "Weight (kgs)", "", "", "",
		"FOB", "Total", "HS Code",
	}
	bottom := []interface{}{
		"", "", "", "", "",
		"W", "D", "H", "W", "D", "H",
		"", "", "", "Gross W", "Net W", "Total GW", "Total NW",
		currency, currency, "",
	}
	for _, c := range columns {
		top = append(top, c)
		bottom = append(bottom, "")
	}
	s.row(headerRow, top)
	s.row(headerRow+1, bottom)

	// FOB and Total keep their second row for the currency code.
	for _, col := range []int{1, 2, 3, 4, 5, 12, 13, 14, 21} {
		s.merge(col, headerRow, col, headerRow+1)
	}
	for i := range columns {
		col := fixedColumns + 1 + i
		s.merge(col, headerRow, col, headerRow+1)
	}
	s.merge(6, headerRow, 8, headerRow)
	s.merge(9, headerRow, 11, headerRow)
	s.merge(15, headerRow, 18, headerRow)

	lastCol := fixedColumns + len(columns)
	s.style(1, headerRow, lastCol, headerRow+1, s.styles.header)
	s.height(headerRow, 24)
	s.height(headerRow+1, 24)
}

func writeItem(s *sheet, row, idx int, it *model.ReportItem, columns []string, lastCol int) {
	clientCode := deref(it.ClientCode)
	if clientCode == "" {
		clientCode = "-"
	}
	values := []interface{}{
		idx + 1,
		clientCode,
		deref(it.KMCode),
		"",
		deref(it.Description),
		num(it.SizeWidth), num(it.SizeDepth), num(it.SizeHeight),
		num(it.PackingWidth), num(it.PackingDepth), num(it.PackingHeight),
		deref(it.Color),
		qty(it.Qty),
		num(it.CBMTotal),
		num(it.GrossWeightTotal), num(it.NetWeightTotal),
		num(it.TotalGWTotal), num(it.TotalNWTotal),
		num(it.FOB),
		num(it.FOBTotalUSD),
		deref(it.HSCode),
	}
	for _, c := range columns {
		values = append(values, it.CustomColumnValues.Text(c))
	}

	s.row(row, values)
	s.height(row, 60)
	s.style(1, row, lastCol, row, s.styles.cell)
}

func writeTotal(s *sheet, row int, summary model.OrderSummary, lastCol int) {
	s.set(1, row, "TOTAL")
	s.set(14, row, summary.TotalCBM)
	s.set(15, row, summary.TotalGrossWeight)
	s.set(16, row, summary.TotalNetWeight)
	s.set(17, row, summary.TotalGW)
	s.set(18, row, summary.TotalNW)
	s.set(20, row, summary.TotalUSD)
	s.style(1, row, lastCol, row, s.styles.total)
	s.style(1, row, 1, row, s.styles.totalLabel)
	s.merge(1, row, 13, row)
}

// loadPictures fetches and prepares item pictures concurrently. A failed
// picture is logged and left nil.
func (e *Exporter) loadPictures(ctx context.Context, items []model.ReportItem) []*Image {
	out := make([]*Image, len(items))
	if e.images == nil {
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i := range items {
		url := e.pictureURL(items[i].PictureURL)
		if url == "" {
			continue
		}
		i := i
		g.Go(func() error {
			raw, err := e.images.Fetch(gctx, url)
			if err != nil {
				e.logger.Warn("Failed to fetch item picture", zap.String("url", url), zap.Error(err))
				return nil
			}
			img, err := Prepare(raw, 2*int(pictureMaxW), 2*int(pictureMaxH))
			if err != nil {
				e.logger.Warn("Failed to prepare item picture", zap.String("url", url), zap.Error(err))
				return nil
			}
			out[i] = img
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *Exporter) pictureURL(p *string) string {
	v := strings.TrimSpace(deref(p))
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	if !strings.HasPrefix(v, "/") {
		v = "/" + v
	}
	return strings.TrimRight(e.opts.ImageBaseURL, "/") + v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func num(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	f, _ := d.Decimal.Float64()
	return f
}

func qty(q *int64) interface{} {
	if q == nil {
		return ""
	}
	return *q
}
