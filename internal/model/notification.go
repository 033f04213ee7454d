package model

// ContractIssuedNotification is handed to the notifier after a contract
// moves to ISSUED. Delivery is best effort and never affects the transition.
type ContractIssuedNotification struct {
	CustomerEmail string
	CustomerName  string
	Request       MoveRequest
	Contract      Contract
}

// ContractRejectedNotification is handed to the notifier after a contract
// moves to REJECTED.
type ContractRejectedNotification struct {
	CustomerEmail   string
	CustomerName    string
	Request         MoveRequest
	RejectionReason string
}
