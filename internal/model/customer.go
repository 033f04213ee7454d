package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

type Review struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Rating       int // 1-5
	Comment      string
	Published    bool
	CreatedAt    time.Time
}

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "OPEN"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
)

type Complaint struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ContractID *uuid.UUID
	Subject    string
	Body       string
	Status     ComplaintStatus
	Resolution *string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
