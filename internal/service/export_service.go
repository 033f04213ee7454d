package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

type PDFGenerator interface {
	Generate(doc model.ContractDocument) ([]byte, error)
}

type ExcelGenerator interface {
	Generate(contracts []model.Contract, from, to time.Time) ([]byte, error)
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportService renders the printable contract PDF and the admin contracts
// spreadsheet.
type ExportService struct {
	contracts ContractStore
	requests  RequestStore
	pdf       PDFGenerator
	excel     ExcelGenerator
	company   model.CompanyInfo
}

func NewExportService(
	contracts ContractStore,
	requests RequestStore,
	pdf PDFGenerator,
	excel ExcelGenerator,
	company model.CompanyInfo,
) *ExportService {
	return &ExportService{
		contracts: contracts,
		requests:  requests,
		pdf:       pdf,
		excel:     excel,
		company:   company,
	}
}

func (s *ExportService) ContractPDF(ctx context.Context, id uuid.UUID, principal model.Principal) (*ExportResult, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if principal.IsCustomer() && !strings.EqualFold(principal.Email, c.CustomerEmail) {
		return nil, ErrPermissionDenied
	}

	req, err := s.requests.GetByID(ctx, c.RequestID)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.ContractDocument{
		Contract: *c,
		Request:  *req,
		Company:  s.company,
	})
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("contract-%s.pdf", sanitizeFileName(c.ContractNumber)),
		Content:  content,
	}, nil
}

func (s *ExportService) ContractsSpreadsheet(
	ctx context.Context,
	status *model.ContractStatus,
	from, to time.Time,
	principal model.Principal,
) (*ExportResult, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}

	periodStart := dateOnly(from)
	periodEnd := dateOnly(to)
	if periodStart.After(periodEnd) {
		return nil, fmt.Errorf("%w: period start must be before or equal to period end", ErrInvalidInput)
	}
	endExclusive := periodEnd.Add(24 * time.Hour)

	contracts, err := s.contracts.List(ctx, status, &periodStart, &endExclusive)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(contracts, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	period := fmt.Sprintf("%s-%s", periodStart.Format("20060102"), periodEnd.Format("20060102"))
	return &ExportResult{
		FileName: fmt.Sprintf("contracts-%s.xlsx", period),
		Content:  content,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
