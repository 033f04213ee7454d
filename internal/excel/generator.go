package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the admin contracts workbook: a summary sheet with totals
// per status plus one detail sheet listing every contract in the period.
func (g *Generator) Generate(contracts []model.Contract, from, to time.Time) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, contracts, from, to); err != nil {
		return nil, err
	}

	detailSheet := "Contracts"
	file.NewSheet(detailSheet)
	if err := g.writeDetail(file, detailSheet, contracts); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, contracts []model.Contract, from, to time.Time) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	countByStatus := map[model.ContractStatus]int{}
	revenueByStatus := map[model.ContractStatus]int64{}
	for _, c := range contracts {
		countByStatus[c.Status]++
		revenueByStatus[c.Status] += c.Pricing.Total
	}

	set("A1", "Period start")
	set("B1", from.Format("2006-01-02"))
	set("A2", "Period end")
	set("B2", to.Format("2006-01-02"))
	set("A3", "Total contracts")
	set("B3", len(contracts))

	set("A5", "Status")
	set("B5", "Count")
	set("C5", "Total value (VND)")

	statuses := []model.ContractStatus{
		model.ContractStatusDraft,
		model.ContractStatusIssued,
		model.ContractStatusAccepted,
		model.ContractStatusRejected,
		model.ContractStatusCancelled,
	}
	for i, status := range statuses {
		row := 6 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), countByStatus[status])
		set(fmt.Sprintf("C%d", row), revenueByStatus[status])
	}
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, contracts []model.Contract) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Contract No.", "Customer", "Email", "Status",
		"Base fee", "Labor fee", "Packing fee", "Stairs fee",
		"Subtotal", "Total", "Created", "Issued", "Rejection reason",
	}
	for i, header := range headers {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		set(fmt.Sprintf("%s1", column), header)
	}

	for i, c := range contracts {
		row := i + 2
		values := []interface{}{
			c.ContractNumber,
			c.CustomerName,
			c.CustomerEmail,
			string(c.Status),
			c.Pricing.BaseFee,
			c.Pricing.LaborFee,
			c.Pricing.PackingFee,
			c.Pricing.StairsFee,
			c.Pricing.Subtotal,
			c.Pricing.Total,
			c.CreatedAt.Format("2006-01-02 15:04"),
			formatOptionalTime(c.IssuedAt),
			formatOptionalReason(c.RejectionReason),
		}
		for j, value := range values {
			column, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return err
			}
			set(fmt.Sprintf("%s%d", column, row), value)
		}
	}
	return nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func formatOptionalReason(reason *string) string {
	if reason == nil {
		return ""
	}
	return *reason
}
