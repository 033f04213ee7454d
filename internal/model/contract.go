package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusIssued    ContractStatus = "ISSUED"
	ContractStatusAccepted  ContractStatus = "ACCEPTED"
	ContractStatusRejected  ContractStatus = "REJECTED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// Contract is created from an approved MoveRequest. Pricing is the quote
// frozen at creation time; later tariff changes never touch it.
type Contract struct {
	ID             uuid.UUID
	ContractNumber string
	RequestID      uuid.UUID
	CustomerID     uuid.UUID
	CustomerName   string
	CustomerEmail  string

	Status          ContractStatus
	Pricing         Quote
	RejectionReason *string

	IssuedAt    *time.Time
	AcceptedAt  *time.Time
	RejectedAt  *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
}

// ContractDocument bundles everything the PDF rendering needs.
type ContractDocument struct {
	Contract Contract
	Request  MoveRequest
	Company  CompanyInfo
}

type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxCode string
}
