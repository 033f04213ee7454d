package main

import (
	"fmt"
	"os"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/auth"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/config"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/db"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/excel"
	httphandler "github.com/VinhCT16/SWP391-G5-sub002/internal/http"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/http/middleware"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/logger"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/mailer"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/pdf"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/repository"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	pricingRepo := repository.NewPricingRepository(database, cfg.Pricing.CacheTTL)
	requestRepo := repository.NewRequestRepository(database)
	contractRepo := repository.NewContractRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	complaintRepo := repository.NewComplaintRepository(database)

	var notifier service.Notifier
	if cfg.SMTP.Host != "" {
		notifier = mailer.New(cfg.SMTP, log)
	} else {
		log.Warn().Msg("SMTP_HOST not set, contract emails disabled")
		notifier = mailer.NewNoopNotifier(log)
	}

	company := model.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
		TaxCode: cfg.Company.TaxCode,
	}

	pricingService := service.NewPricingService(pricingRepo)
	requestService := service.NewRequestService(requestRepo, customerRepo, pricingRepo)
	contractService := service.NewContractService(contractRepo, requestRepo, pricingRepo, notifier, log)
	exportService := service.NewExportService(contractRepo, requestRepo, pdf.NewGenerator(), excel.NewGenerator(), company)
	reviewService := service.NewReviewService(reviewRepo, customerRepo)
	complaintService := service.NewComplaintService(complaintRepo, customerRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		pricingService,
		requestService,
		contractService,
		exportService,
		reviewService,
		complaintService,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting moving service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
