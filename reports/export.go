package reports

import (
	"fmt"
	"io"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

// Export formats
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// CheckFormat rejects formats other than xlsx and pdf with a bad request error
func CheckFormat(format string) error {
	if format == FormatXLSX || format == FormatPDF {
		return nil
	}
	return utils.BadRequestError(fmt.Sprintf("Unsupported export format %q, use xlsx or pdf", format), nil)
}

// ContentType returns the MIME type for an export format
func ContentType(format string) string {
	if format == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Report is the content of a statistics export
type Report struct {
	Title   string
	Filters string
	Stats   Statistics
	Orders  []models.Order
}

var orderHeaders = []string{"Order ID", "Date", "Status", "Items", "Payments", "Total", "Paid", "Balance"}

func (r Report) summaryRows() [][]string {
	avg := "-"
	if r.Stats.AverageOrderValue != nil {
		avg = r.Stats.AverageOrderValue.StringFixed(AmountPlaces)
	}
	return [][]string{
		{"Total Orders", fmt.Sprintf("%d", r.Stats.TotalOrders)},
		{"Total Revenue", r.Stats.TotalRevenue.StringFixed(AmountPlaces)},
		{"Avg. Order Value", avg},
	}
}

func (r Report) orderRow(order models.Order) []string {
	agg := Summarize(order)
	return []string{
		fmt.Sprintf("%d", order.OrderID),
		order.Date().Format("2006-01-02"),
		order.OrderStatus,
		fmt.Sprintf("%d", agg.ItemCount),
		fmt.Sprintf("%d", agg.PaymentCount),
		agg.TotalAmount.StringFixed(AmountPlaces),
		agg.TotalPaid.StringFixed(AmountPlaces),
		agg.PaymentBalance.StringFixed(AmountPlaces),
	}
}

// WriteXLSX renders the report as a single sheet workbook
func WriteXLSX(w io.Writer, r Report) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Order Statistics")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	boldRow := func(values ...string) {
		row := sheet.AddRow()
		for _, v := range values {
			cell := row.AddCell()
			cell.SetString(v)
			cell.SetStyle(bold)
		}
	}

	sheet.AddRow().AddCell().SetString(r.Title)
	if r.Filters != "" {
		sheet.AddRow().AddCell().SetString("Filters: " + r.Filters)
	}
	sheet.AddRow()

	boldRow("Summary")
	for _, data := range r.summaryRows() {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}
	sheet.AddRow()

	boldRow("Order Status", "Count")
	for _, s := range r.Stats.OrdersByStatus {
		row := sheet.AddRow()
		row.AddCell().SetString(s.Status)
		row.AddCell().SetInt(s.Count)
	}
	sheet.AddRow()

	groupTable := func(title string, groups []PaymentGroup) {
		boldRow(title, "Count", "Total Paid")
		for _, g := range groups {
			row := sheet.AddRow()
			row.AddCell().SetString(g.Key)
			row.AddCell().SetInt(g.Count)
			row.AddCell().SetString(g.Total.StringFixed(AmountPlaces))
		}
		sheet.AddRow()
	}
	groupTable("Payment Method", r.Stats.PaymentMethods)
	groupTable("Payment Status", r.Stats.PaymentStatuses)

	boldRow(orderHeaders...)
	for _, order := range r.Orders {
		row := sheet.AddRow()
		for _, v := range r.orderRow(order) {
			row.AddCell().SetString(v)
		}
	}

	return file.Write(w)
}

// WritePDF renders the report as a landscape A4 document
func WritePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, r.Title)
	pdf.Ln(10)
	if r.Filters != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, "Filters: "+r.Filters)
		pdf.Ln(10)
	}

	heading := func(title string, width float64) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(220, 230, 250)
		pdf.CellFormat(width, 9, title, "1", 0, "C", true, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
	}

	heading("Summary", 90)
	for _, data := range r.summaryRows() {
		pdf.CellFormat(50, 8, data[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, data[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	heading("Orders by Status", 90)
	for _, s := range r.Stats.OrdersByStatus {
		pdf.CellFormat(50, 8, s.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d", s.Count), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	groupTable := func(title string, groups []PaymentGroup) {
		heading(title, 120)
		for _, g := range groups {
			pdf.CellFormat(50, 8, g.Key, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 8, fmt.Sprintf("%d", g.Count), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 8, g.Total.StringFixed(AmountPlaces), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}
	groupTable("Payment Methods", r.Stats.PaymentMethods)
	groupTable("Payment Status", r.Stats.PaymentStatuses)

	colWidths := []float64{25, 30, 35, 20, 25, 35, 35, 35}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range orderHeaders {
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, order := range r.Orders {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		for i, v := range r.orderRow(order) {
			align := "C"
			if i >= 5 {
				align = "R"
			}
			pdf.CellFormat(colWidths[i], 8, v, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.Output(w)
}

// Write renders the report in the requested format
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, r)
	case FormatPDF:
		return WritePDF(w, r)
	default:
		return CheckFormat(format)
	}
}
