package model

// Quote is the itemized price breakdown for one MoveRequest. It is derived
// on demand from a MoveRequest and a PricingConfig and never stored on its
// own; contracts keep a frozen copy of the quote they were issued with.
// Amounts are VND.
type Quote struct {
	DistanceFee    int64 `json:"distance_fee"`
	MinimumApplied bool  `json:"minimum_applied"`
	BaseFee        int64 `json:"base_fee"`
	LaborFee       int64 `json:"labor_fee"`
	PackingFee     int64 `json:"packing_fee"`
	StairsFee      int64 `json:"stairs_fee"`

	SpeedMultiplier    float64 `json:"speed_multiplier"`
	Subtotal           int64   `json:"subtotal"`
	NightApplied       bool    `json:"night_applied"`
	NightSurchargeRate float64 `json:"night_surcharge_rate"`

	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}
