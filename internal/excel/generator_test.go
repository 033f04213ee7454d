package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

func TestGenerate(t *testing.T) {
	issued := time.Date(2026, 3, 11, 14, 0, 0, 0, time.Local)
	contracts := []model.Contract{
		{
			ID:             uuid.New(),
			ContractNumber: "HD-20260310-9F3A21BC",
			CustomerName:   "Lan Nguyen",
			CustomerEmail:  "lan.nguyen@example.com",
			Status:         model.ContractStatusAccepted,
			Pricing:        model.Quote{BaseFee: 350000, LaborFee: 90000, PackingFee: 50000, Subtotal: 490000, Total: 490000},
			IssuedAt:       &issued,
			CreatedAt:      time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local),
		},
		{
			ID:             uuid.New(),
			ContractNumber: "HD-20260312-04D7E1AA",
			CustomerName:   "Minh Tran",
			Status:         model.ContractStatusDraft,
			Pricing:        model.Quote{Subtotal: 637000, Total: 637000},
			CreatedAt:      time.Date(2026, 3, 12, 9, 0, 0, 0, time.Local),
		},
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local)

	content, err := NewGenerator().Generate(contracts, from, to)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("expected non-empty workbook")
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	total, err := file.GetCellValue("Summary", "B3")
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if total != "2" {
		t.Errorf("total contracts = %q, want 2", total)
	}

	number, err := file.GetCellValue("Contracts", "A2")
	if err != nil {
		t.Fatalf("read detail: %v", err)
	}
	if number != "HD-20260310-9F3A21BC" {
		t.Errorf("first contract number = %q", number)
	}
}
