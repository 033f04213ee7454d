package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

var (
	ErrInvalidTransition = errors.New("invalid contract status transition")
	ErrMissingReason     = errors.New("rejection reason is required")
)

// allowTransition is the contract lifecycle as a directed graph.
// REJECTED and CANCELLED are terminal.
var allowTransition = map[model.ContractStatus][]model.ContractStatus{
	model.ContractStatusDraft:     {model.ContractStatusIssued},
	model.ContractStatusIssued:    {model.ContractStatusAccepted, model.ContractStatusRejected, model.ContractStatusCancelled},
	model.ContractStatusAccepted:  {model.ContractStatusCancelled},
	model.ContractStatusRejected:  {},
	model.ContractStatusCancelled: {},
}

// CanTransition reports whether from -> to is an allowed lifecycle step.
func CanTransition(from, to model.ContractStatus) bool {
	allowed, ok := allowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition validates a requested transition including the non-empty
// reason rule for rejections. The repository re-checks the same precondition
// atomically when writing, so a racing caller still loses cleanly.
func CheckTransition(from, to model.ContractStatus, reason string) error {
	if to == model.ContractStatusRejected && strings.TrimSpace(reason) == "" {
		return ErrMissingReason
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
