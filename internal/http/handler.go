package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/contract"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/http/middleware"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/pricing"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/service"
)

type Handler struct {
	pricing    *service.PricingService
	requests   *service.RequestService
	contracts  *service.ContractService
	exports    *service.ExportService
	reviews    *service.ReviewService
	complaints *service.ComplaintService
	log        zerolog.Logger
}

func NewHandler(
	pricing *service.PricingService,
	requests *service.RequestService,
	contracts *service.ContractService,
	exports *service.ExportService,
	reviews *service.ReviewService,
	complaints *service.ComplaintService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		pricing:    pricing,
		requests:   requests,
		contracts:  contracts,
		exports:    exports,
		reviews:    reviews,
		complaints: complaints,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	// public: quote form, checkout, reviews page
	router.POST("/quotes", h.computeQuote)
	router.POST("/requests", h.submitRequest)
	router.GET("/reviews", h.listPublishedReviews)
	router.POST("/reviews", h.submitReview)
	router.POST("/complaints", h.submitComplaint)

	authed := router.Group("/")
	authed.Use(authMiddleware)
	authed.GET("/requests/:id", h.getRequest)
	authed.GET("/contracts/:id", h.getContract)
	authed.GET("/contracts/:id/pdf", h.contractPDF)
	authed.POST("/contracts/:id/accept", h.acceptContract)
	authed.POST("/contracts/:id/reject", h.rejectContract)
	authed.POST("/contracts/:id/cancel", h.cancelContract)

	staff := authed.Group("/")
	staff.Use(middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
	staff.GET("/requests", h.listRequests)
	staff.POST("/requests/:id/approve", h.approveRequest)
	staff.POST("/requests/:id/decline", h.declineRequest)
	staff.POST("/contracts", h.createContract)
	staff.POST("/contracts/:id/issue", h.issueContract)
	staff.GET("/contracts", h.listContracts)
	staff.GET("/pricing", h.getPricing)
	staff.GET("/admin/reviews", h.listAllReviews)
	staff.POST("/admin/reviews/:id/publish", h.publishReview)
	staff.GET("/admin/complaints", h.listComplaints)
	staff.POST("/admin/complaints/:id/status", h.setComplaintStatus)
	staff.POST("/contracts/export", h.exportContracts)

	admin := authed.Group("/")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.PUT("/pricing", h.updatePricing)
	admin.DELETE("/admin/reviews/:id", h.deleteReview)
}

type moveRequestBody struct {
	CustomerName   string  `json:"customer_name" binding:"required"`
	CustomerEmail  string  `json:"customer_email" binding:"required,email"`
	CustomerPhone  string  `json:"customer_phone"`
	PickupAddress  string  `json:"pickup_address" binding:"required"`
	DropoffAddress string  `json:"dropoff_address" binding:"required"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
	VehicleClass   string  `json:"vehicle_class" binding:"required"`
	PackingTier    string  `json:"packing_tier" binding:"required"`
	SpeedTier      string  `json:"speed_tier" binding:"required"`
	ItemCount      int     `json:"item_count"`
	PickupFloors   int     `json:"pickup_floors"`
	DropoffFloors  int     `json:"dropoff_floors"`
	ScheduledAt    string  `json:"scheduled_at" binding:"required"`
	Note           string  `json:"note"`
}

func (body moveRequestBody) toModel() (model.MoveRequest, error) {
	scheduledAt, err := parseDate(body.ScheduledAt)
	if err != nil {
		return model.MoveRequest{}, err
	}
	return model.MoveRequest{
		CustomerName:   strings.TrimSpace(body.CustomerName),
		CustomerEmail:  strings.TrimSpace(body.CustomerEmail),
		CustomerPhone:  strings.TrimSpace(body.CustomerPhone),
		PickupAddress:  strings.TrimSpace(body.PickupAddress),
		DropoffAddress: strings.TrimSpace(body.DropoffAddress),
		DistanceKm:     body.DistanceKm,
		DurationMin:    body.DurationMin,
		VehicleClass:   model.VehicleClass(body.VehicleClass),
		PackingTier:    model.PackingTier(body.PackingTier),
		SpeedTier:      model.SpeedTier(body.SpeedTier),
		ItemCount:      body.ItemCount,
		PickupFloors:   body.PickupFloors,
		DropoffFloors:  body.DropoffFloors,
		ScheduledAt:    scheduledAt,
		Note:           body.Note,
	}, nil
}

type quoteRequestBody struct {
	DistanceKm    float64 `json:"distance_km"`
	DurationMin   float64 `json:"duration_min"`
	VehicleClass  string  `json:"vehicle_class" binding:"required"`
	PackingTier   string  `json:"packing_tier" binding:"required"`
	SpeedTier     string  `json:"speed_tier" binding:"required"`
	ItemCount     int     `json:"item_count"`
	PickupFloors  int     `json:"pickup_floors"`
	DropoffFloors int     `json:"dropoff_floors"`
	ScheduledAt   string  `json:"scheduled_at" binding:"required"`
}

func (h *Handler) computeQuote(c *gin.Context) {
	var body quoteRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduledAt, err := parseDate(body.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_at"})
		return
	}

	quote, err := h.pricing.Quote(c.Request.Context(), model.MoveRequest{
		DistanceKm:    body.DistanceKm,
		DurationMin:   body.DurationMin,
		VehicleClass:  model.VehicleClass(body.VehicleClass),
		PackingTier:   model.PackingTier(body.PackingTier),
		SpeedTier:     model.SpeedTier(body.SpeedTier),
		ItemCount:     body.ItemCount,
		PickupFloors:  body.PickupFloors,
		DropoffFloors: body.DropoffFloors,
		ScheduledAt:   scheduledAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) submitRequest(c *gin.Context) {
	var body moveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := body.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_at"})
		return
	}

	saved, err := h.requests.Submit(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) getRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	req, err := h.requests.Get(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) listRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var status *model.RequestStatus
	if raw := c.Query("status"); raw != "" {
		parsed := model.RequestStatus(strings.ToUpper(raw))
		status = &parsed
	}

	requests, err := h.requests.List(c.Request.Context(), status, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) approveRequest(c *gin.Context) {
	h.decideRequest(c, h.requests.Approve)
}

func (h *Handler) declineRequest(c *gin.Context) {
	h.decideRequest(c, h.requests.Decline)
}

func (h *Handler) decideRequest(c *gin.Context, decide func(ctx context.Context, id uuid.UUID, principal model.Principal) error) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := decide(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

type createContractBody struct {
	RequestID string `json:"request_id" binding:"required"`
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var body createContractBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID, err := uuid.Parse(strings.TrimSpace(body.RequestID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request_id"})
		return
	}

	created, err := h.contracts.CreateFromRequest(c.Request.Context(), requestID, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	found, err := h.contracts.Get(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) listContracts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var status *model.ContractStatus
	if raw := c.Query("status"); raw != "" {
		parsed := model.ContractStatus(strings.ToUpper(raw))
		status = &parsed
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		to = &parsed
	}

	contracts, err := h.contracts.List(c.Request.Context(), status, from, to, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) issueContract(c *gin.Context) {
	h.transitionContract(c, func(id uuid.UUID, principal model.Principal) (*model.Contract, error) {
		return h.contracts.Issue(c.Request.Context(), id, principal)
	})
}

func (h *Handler) acceptContract(c *gin.Context) {
	h.transitionContract(c, func(id uuid.UUID, principal model.Principal) (*model.Contract, error) {
		return h.contracts.Accept(c.Request.Context(), id, principal)
	})
}

type rejectContractBody struct {
	Reason string `json:"reason"`
}

func (h *Handler) rejectContract(c *gin.Context) {
	var body rejectContractBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.transitionContract(c, func(id uuid.UUID, principal model.Principal) (*model.Contract, error) {
		return h.contracts.Reject(c.Request.Context(), id, body.Reason, principal)
	})
}

func (h *Handler) cancelContract(c *gin.Context) {
	h.transitionContract(c, func(id uuid.UUID, principal model.Principal) (*model.Contract, error) {
		return h.contracts.Cancel(c.Request.Context(), id, principal)
	})
}

func (h *Handler) transitionContract(c *gin.Context, transition func(id uuid.UUID, principal model.Principal) (*model.Contract, error)) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	updated, err := transition(id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) contractPDF(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.exports.ContractPDF(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

type exportContractsBody struct {
	Status      string `json:"status"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

func (h *Handler) exportContracts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var body exportContractsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status *model.ContractStatus
	if body.Status != "" {
		parsed := model.ContractStatus(strings.ToUpper(body.Status))
		status = &parsed
	}

	start, err := parseDate(body.PeriodStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_start"})
		return
	}
	end, err := parseDate(body.PeriodEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_end"})
		return
	}

	result, err := h.exports.ContractsSpreadsheet(c.Request.Context(), status, start, end, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) getPricing(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	cfg, err := h.pricing.GetConfig(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

type updatePricingBody struct {
	PricePerKm         map[string]int64   `json:"price_per_km" binding:"required"`
	MinTripFee         map[string]int64   `json:"min_trip_fee" binding:"required"`
	PackingFee         map[string]int64   `json:"packing_fee" binding:"required"`
	SpeedMultiplier    map[string]float64 `json:"speed_multiplier" binding:"required"`
	LaborHourly        int64              `json:"labor_hourly"`
	LoadingMinPerItem  float64            `json:"loading_min_per_item"`
	StairsFeePerFloor  int64              `json:"stairs_fee_per_floor"`
	NightSurchargeRate float64            `json:"night_surcharge_rate"`
	NightStartHour     int                `json:"night_start_hour"`
	NightEndHour       int                `json:"night_end_hour"`
}

func (h *Handler) updatePricing(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var body updatePricingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := model.PricingConfig{
		PricePerKm:         make(map[model.VehicleClass]int64, len(body.PricePerKm)),
		MinTripFee:         make(map[model.VehicleClass]int64, len(body.MinTripFee)),
		PackingFee:         make(map[model.PackingTier]int64, len(body.PackingFee)),
		SpeedMultiplier:    make(map[model.SpeedTier]float64, len(body.SpeedMultiplier)),
		LaborHourly:        body.LaborHourly,
		LoadingMinPerItem:  body.LoadingMinPerItem,
		StairsFeePerFloor:  body.StairsFeePerFloor,
		NightSurchargeRate: body.NightSurchargeRate,
		NightStartHour:     body.NightStartHour,
		NightEndHour:       body.NightEndHour,
	}
	for class, rate := range body.PricePerKm {
		cfg.PricePerKm[model.VehicleClass(class)] = rate
	}
	for class, fee := range body.MinTripFee {
		cfg.MinTripFee[model.VehicleClass(class)] = fee
	}
	for tier, fee := range body.PackingFee {
		cfg.PackingFee[model.PackingTier(tier)] = fee
	}
	for tier, multiplier := range body.SpeedMultiplier {
		cfg.SpeedMultiplier[model.SpeedTier(tier)] = multiplier
	}

	if err := h.pricing.UpdateConfig(c.Request.Context(), cfg, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

type submitReviewBody struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

func (h *Handler) submitReview(c *gin.Context) {
	var body submitReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Submit(c.Request.Context(), service.SubmitReviewInput{
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		Rating:        body.Rating,
		Comment:       body.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) listPublishedReviews(c *gin.Context) {
	reviews, err := h.reviews.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) listAllReviews(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	reviews, err := h.reviews.ListAll(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type publishReviewBody struct {
	Published bool `json:"published"`
}

func (h *Handler) publishReview(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body publishReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reviews.SetPublished(c.Request.Context(), id, body.Published, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteReview(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type submitComplaintBody struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	ContractID    string `json:"contract_id"`
	Subject       string `json:"subject" binding:"required"`
	Body          string `json:"body" binding:"required"`
}

func (h *Handler) submitComplaint(c *gin.Context) {
	var body submitComplaintBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var contractID *uuid.UUID
	if body.ContractID != "" {
		parsed, err := uuid.Parse(body.ContractID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract_id"})
			return
		}
		contractID = &parsed
	}

	complaint, err := h.complaints.Submit(c.Request.Context(), service.SubmitComplaintInput{
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		ContractID:    contractID,
		Subject:       body.Subject,
		Body:          body.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

func (h *Handler) listComplaints(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var status *model.ComplaintStatus
	if raw := c.Query("status"); raw != "" {
		parsed := model.ComplaintStatus(strings.ToUpper(raw))
		status = &parsed
	}

	complaints, err := h.complaints.List(c.Request.Context(), status, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

type setComplaintStatusBody struct {
	Status     string  `json:"status" binding:"required"`
	Resolution *string `json:"resolution"`
}

func (h *Handler) setComplaintStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body setComplaintStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.ComplaintStatus(strings.ToUpper(body.Status))
	switch status {
	case model.ComplaintStatusOpen, model.ComplaintStatusInProgress, model.ComplaintStatusResolved:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if err := h.complaints.SetStatus(c.Request.Context(), id, status, body.Resolution, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contract.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, contract.ErrMissingReason),
		errors.Is(err, pricing.ErrInvalidRequest),
		errors.Is(err, pricing.ErrUnknownVehicleClass),
		errors.Is(err, pricing.ErrUnknownPackingTier):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
