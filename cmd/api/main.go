package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hmdang/bluemoon/internal/account"
	accountStore "github.com/hmdang/bluemoon/internal/account/store"
	"github.com/hmdang/bluemoon/internal/auth"
	"github.com/hmdang/bluemoon/internal/config"
	"github.com/hmdang/bluemoon/internal/database"
	"github.com/hmdang/bluemoon/internal/fee"
	feeStore "github.com/hmdang/bluemoon/internal/fee/store"
	"github.com/hmdang/bluemoon/internal/household"
	householdStore "github.com/hmdang/bluemoon/internal/household/store"
	bluemoonHttp "github.com/hmdang/bluemoon/internal/http"
	accountHandler "github.com/hmdang/bluemoon/internal/http/account"
	feeHandler "github.com/hmdang/bluemoon/internal/http/fee"
	householdHandler "github.com/hmdang/bluemoon/internal/http/household"
	importHandler "github.com/hmdang/bluemoon/internal/http/importcsv"
	paymentHandler "github.com/hmdang/bluemoon/internal/http/payment"
	reportHandler "github.com/hmdang/bluemoon/internal/http/report"
	residentHandler "github.com/hmdang/bluemoon/internal/http/resident"
	vehicleHandler "github.com/hmdang/bluemoon/internal/http/vehicle"
	"github.com/hmdang/bluemoon/internal/importer"
	"github.com/hmdang/bluemoon/internal/payment"
	paymentStore "github.com/hmdang/bluemoon/internal/payment/store"
	"github.com/hmdang/bluemoon/internal/report"
	"github.com/hmdang/bluemoon/internal/resident"
	residentStore "github.com/hmdang/bluemoon/internal/resident/store"
	"github.com/hmdang/bluemoon/internal/vehicle"
	vehicleStore "github.com/hmdang/bluemoon/internal/vehicle/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	tariff := payment.Tariff{
		Motorbike:        cfg.Tariff.Motorbike,
		Car:              cfg.Tariff.Car,
		ManagementPerSqm: cfg.Tariff.ManagementPerSqm,
		ServicePerSqm:    cfg.Tariff.ServicePerSqm,
	}

	var (
		accountService   = account.NewService(accountStore.New(db), tokens)
		residentService  = resident.NewService(residentStore.New(db))
		householdService = household.NewService(householdStore.New(db))
		vehicleService   = vehicle.NewService(vehicleStore.New(db))
		feeService       = fee.NewService(feeStore.New(db))
		paymentService   = payment.NewService(paymentStore.New(db), feeService, householdService, vehicleService, tariff)
		reportService    = report.NewService(feeService, paymentService)
		importService    = importer.NewService()
	)

	var (
		accountH   = accountHandler.NewHandler(accountService)
		residentH  = residentHandler.NewHandler(residentService)
		importH    = importHandler.NewHandler(importService, residentService)
		householdH = householdHandler.NewHandler(householdService)
		vehicleH   = vehicleHandler.NewHandler(vehicleService)
		feeH       = feeHandler.NewHandler(feeService)
		paymentH   = paymentHandler.NewHandler(paymentService)
		reportH    = reportHandler.NewHandler(reportService)
	)

	router := bluemoonHttp.New(
		tokens,
		cfg.Server.AllowedOrigins,
		accountH,
		residentH,
		importH,
		householdH,
		vehicleH,
		feeH,
		paymentH,
		reportH,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
