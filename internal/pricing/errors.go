package pricing

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
	ErrUnknownPackingTier  = errors.New("unknown packing tier")
)
