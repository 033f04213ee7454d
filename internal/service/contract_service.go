package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/contract"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/pricing"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/repository"
)

// ContractService drives the contract lifecycle. Every transition is a
// compare-and-set on the stored status, so two racing calls resolve to one
// winner. Email notifications go out only after the transition is committed
// and never roll it back.
type ContractService struct {
	contracts ContractStore
	requests  RequestStore
	pricing   PricingSource
	notifier  Notifier
	log       zerolog.Logger
}

func NewContractService(
	contracts ContractStore,
	requests RequestStore,
	pricing PricingSource,
	notifier Notifier,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		contracts: contracts,
		requests:  requests,
		pricing:   pricing,
		notifier:  notifier,
		log:       log,
	}
}

// CreateFromRequest issues a DRAFT contract for an approved move request.
// The quote computed here becomes the frozen pricing snapshot; later tariff
// changes require a new contract.
func (s *ContractService) CreateFromRequest(ctx context.Context, requestID uuid.UUID, principal model.Principal) (*model.Contract, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Status != model.RequestStatusApproved {
		return nil, fmt.Errorf("%w: request must be approved before contracting", ErrInvalidInput)
	}

	cfg, err := s.pricing.Load(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.ComputeQuote(*req, *cfg)
	if err != nil {
		return nil, err
	}

	return s.contracts.Create(ctx, model.Contract{
		ContractNumber: buildContractNumber(time.Now()),
		RequestID:      req.ID,
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		Status:         model.ContractStatusDraft,
		Pricing:        quote,
	})
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	c, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.IsCustomer() && !strings.EqualFold(principal.Email, c.CustomerEmail) {
		return nil, ErrPermissionDenied
	}
	return c, nil
}

func (s *ContractService) List(ctx context.Context, status *model.ContractStatus, from, to *time.Time, principal model.Principal) ([]model.Contract, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	return s.contracts.List(ctx, status, from, to)
}

// Issue moves DRAFT -> ISSUED and sends the approval email.
func (s *ContractService) Issue(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	if principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	updated, err := s.transition(ctx, id, model.ContractStatusIssued, "")
	if err != nil {
		return nil, err
	}

	if req, reqErr := s.requests.GetByID(ctx, updated.RequestID); reqErr != nil {
		s.log.Warn().Err(reqErr).Str("contract_id", updated.ID.String()).Msg("issue notification skipped: request lookup failed")
	} else if notifyErr := s.notifier.ContractIssued(ctx, model.ContractIssuedNotification{
		CustomerEmail: updated.CustomerEmail,
		CustomerName:  updated.CustomerName,
		Request:       *req,
		Contract:      *updated,
	}); notifyErr != nil {
		s.log.Warn().Err(notifyErr).Str("contract_id", updated.ID.String()).Msg("issue notification failed")
	}

	return updated, nil
}

// Accept moves ISSUED -> ACCEPTED. A customer may only accept their own
// contract.
func (s *ContractService) Accept(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	if err := s.checkOwnership(ctx, id, principal); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, model.ContractStatusAccepted, "")
}

// Reject moves ISSUED -> REJECTED, requires a non-empty reason, and sends
// the rejection email. Rejection is terminal.
func (s *ContractService) Reject(ctx context.Context, id uuid.UUID, reason string, principal model.Principal) (*model.Contract, error) {
	if err := s.checkOwnership(ctx, id, principal); err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, id, model.ContractStatusRejected, reason)
	if err != nil {
		return nil, err
	}

	if req, reqErr := s.requests.GetByID(ctx, updated.RequestID); reqErr != nil {
		s.log.Warn().Err(reqErr).Str("contract_id", updated.ID.String()).Msg("rejection notification skipped: request lookup failed")
	} else if notifyErr := s.notifier.ContractRejected(ctx, model.ContractRejectedNotification{
		CustomerEmail:   updated.CustomerEmail,
		CustomerName:    updated.CustomerName,
		Request:         *req,
		RejectionReason: reason,
	}); notifyErr != nil {
		s.log.Warn().Err(notifyErr).Str("contract_id", updated.ID.String()).Msg("rejection notification failed")
	}

	return updated, nil
}

// Cancel is valid from ISSUED or ACCEPTED.
func (s *ContractService) Cancel(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	if err := s.checkOwnership(ctx, id, principal); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, model.ContractStatusCancelled, "")
}

// transition reads the current status, validates the lifecycle step, then
// writes with a compare-and-set against the status it read. If another call
// commits in between, the write affects zero rows and the caller gets
// ErrInvalidTransition instead of silently overwriting.
func (s *ContractService) transition(ctx context.Context, id uuid.UUID, to model.ContractStatus, reason string) (*model.Contract, error) {
	current, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := contract.CheckTransition(current.Status, to, reason); err != nil {
		return nil, err
	}

	var reasonPtr *string
	if to == model.ContractStatusRejected {
		trimmed := strings.TrimSpace(reason)
		reasonPtr = &trimmed
	}

	updated, err := s.contracts.UpdateStatus(ctx, id, current.Status, to, reasonPtr)
	if err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, fmt.Errorf("%w: %s -> %s", contract.ErrInvalidTransition, current.Status, to)
		}
		return nil, err
	}
	return updated, nil
}

func (s *ContractService) checkOwnership(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsCustomer() {
		return nil
	}
	c, err := s.getContract(ctx, id)
	if err != nil {
		return err
	}
	if !strings.EqualFold(principal.Email, c.CustomerEmail) {
		return ErrPermissionDenied
	}
	return nil
}

func (s *ContractService) getContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func buildContractNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("HD-%s-%s", now.Format("20060102"), suffix)
}
