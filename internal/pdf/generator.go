package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the printable moving contract with the frozen quote
// breakdown exactly as it was at issue time.
func (g *Generator) Generate(doc model.ContractDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "MOVING SERVICE CONTRACT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract No. %s, dated %s", doc.Contract.ContractNumber, formatDate(doc.Contract.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", doc.Contract.Status), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addPartyBlock(pdf, "Provider", []string{
		doc.Company.Name,
		fmt.Sprintf("Address: %s", safeValue(doc.Company.Address)),
		fmt.Sprintf("Phone: %s", safeValue(doc.Company.Phone)),
		fmt.Sprintf("Tax code: %s", safeValue(doc.Company.TaxCode)),
	})
	pdf.Ln(2)
	g.addPartyBlock(pdf, "Customer", []string{
		doc.Contract.CustomerName,
		fmt.Sprintf("Email: %s", safeValue(doc.Contract.CustomerEmail)),
		fmt.Sprintf("Phone: %s", safeValue(doc.Request.CustomerPhone)),
	})
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Move details", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	details := []string{
		fmt.Sprintf("From: %s", doc.Request.PickupAddress),
		fmt.Sprintf("To: %s", doc.Request.DropoffAddress),
		fmt.Sprintf("Distance: %.1f km, vehicle: %s", doc.Request.DistanceKm, doc.Request.VehicleClass),
		fmt.Sprintf("Items: %d, packing: %s, service: %s", doc.Request.ItemCount, doc.Request.PackingTier, doc.Request.SpeedTier),
		fmt.Sprintf("Scheduled: %s", doc.Request.ScheduledAt.Format("02.01.2006 15:04")),
	}
	for _, line := range details {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Price breakdown", "", 1, "L", false, 0, "")

	headers := []string{"Item", "Amount (VND)"}
	colWidths := []float64{120, 60}
	g.drawTableRow(pdf, headers, colWidths, true)

	quote := doc.Contract.Pricing
	rows := [][2]string{
		{"Distance fee", formatAmount(quote.DistanceFee)},
		{baseFeeLabel(quote), formatAmount(quote.BaseFee)},
		{"Loading and labor", formatAmount(quote.LaborFee)},
		{"Packing", formatAmount(quote.PackingFee)},
		{"Stairs surcharge", formatAmount(quote.StairsFee)},
		{fmt.Sprintf("Subtotal (x%.2f speed)", quote.SpeedMultiplier), formatAmount(quote.Subtotal)},
	}
	if quote.NightApplied {
		rows = append(rows, [2]string{fmt.Sprintf("Night surcharge (+%.0f%%)", quote.NightSurchargeRate*100), formatAmount(quote.Total - quote.Subtotal)})
	}
	for _, row := range rows {
		g.drawTableRow(pdf, row[:], colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %s VND", formatAmount(quote.Total)), "", 1, "R", false, 0, "")

	if doc.Contract.RejectionReason != nil && *doc.Contract.RejectionReason != "" {
		pdf.Ln(2)
		pdf.SetTextColor(200, 0, 0)
		pdf.MultiCell(0, 6, fmt.Sprintf("Rejected: %s", *doc.Contract.RejectionReason), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Signatures", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Provider: ______________________ /%s/", safeValue(doc.Company.Name)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: ______________________ /%s/", safeValue(doc.Contract.CustomerName)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addPartyBlock(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func (g *Generator) drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func baseFeeLabel(quote model.Quote) string {
	if quote.MinimumApplied {
		return "Base fee (minimum trip fee applied)"
	}
	return "Base fee"
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// formatAmount writes whole VND with dot thousand separators, 1234567 -> 1.234.567.
func formatAmount(value int64) string {
	s := fmt.Sprintf("%d", value)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	result := strings.Join(parts, ".")
	if negative {
		result = "-" + result
	}
	return result
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
