package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

func sampleDocument() model.ContractDocument {
	reason := "schedule no longer works"
	scheduled := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	return model.ContractDocument{
		Contract: model.Contract{
			ID:             uuid.New(),
			ContractNumber: "HD-20260310-9F3A21BC",
			CustomerName:   "Lan Nguyen",
			CustomerEmail:  "lan.nguyen@example.com",
			Status:         model.ContractStatusRejected,
			Pricing: model.Quote{
				DistanceFee:     120000,
				MinimumApplied:  true,
				BaseFee:         350000,
				LaborFee:        90000,
				PackingFee:      50000,
				SpeedMultiplier: 1.0,
				Subtotal:        490000,
				Total:           490000,
				Currency:        "VND",
			},
			RejectionReason: &reason,
			CreatedAt:       time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local),
		},
		Request: model.MoveRequest{
			CustomerPhone:  "0901234567",
			PickupAddress:  "12 Nguyen Trai, District 1",
			DropoffAddress: "45 Le Loi, District 3",
			DistanceKm:     10,
			VehicleClass:   model.VehicleTruck750,
			PackingTier:    model.PackingStandard,
			SpeedTier:      model.SpeedStandard,
			ItemCount:      5,
			ScheduledAt:    scheduled,
		},
		Company: model.CompanyInfo{
			Name:    "G5 Moving Service",
			Address: "1 Vo Van Ngan, Thu Duc",
			Phone:   "1900 0000",
			TaxCode: "0312345678",
		},
	}
}

func TestGenerate(t *testing.T) {
	content, err := NewGenerator().Generate(sampleDocument())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("expected non-empty pdf")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("unexpected file header: %q", content[:8])
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{490000, "490.000"},
		{1234567, "1.234.567"},
		{-637000, "-637.000"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.value); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
