package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusDeclined RequestStatus = "DECLINED"
)

// MoveRequest describes one prospective moving job. Distance and duration
// come from the routing provider on the customer-facing form; the request is
// not edited after a contract has been created from it.
type MoveRequest struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	PickupAddress  string
	DropoffAddress string
	DistanceKm     float64
	DurationMin    float64

	VehicleClass  VehicleClass
	PackingTier   PackingTier
	SpeedTier     SpeedTier
	ItemCount     int
	PickupFloors  int // floors above ground level at pickup
	DropoffFloors int

	ScheduledAt time.Time
	Status      RequestStatus
	Note        string
	CreatedAt   time.Time
}
