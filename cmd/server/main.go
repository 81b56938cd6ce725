package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alcast/backoffice/internal/api"
	"github.com/alcast/backoffice/internal/config"
	"github.com/alcast/backoffice/internal/database"
	"github.com/alcast/backoffice/internal/repository"
	"github.com/alcast/backoffice/internal/scheduler"
	"github.com/alcast/backoffice/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	counterpartyRepo := repository.NewCounterpartyRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	hedgeRepo := repository.NewHedgeRepository(db)
	priceRepo := repository.NewMarketPriceRepository(db)
	mtmRepo := repository.NewMTMRepository(db)
	rfqRecordRepo := repository.NewRFQRecordRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	composerService := service.NewComposerService()
	rfqRecordService := service.NewRFQRecordService(rfqRecordRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	customerService := service.NewCustomerService(customerRepo)
	counterpartyService := service.NewCounterpartyService(counterpartyRepo)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo, supplierRepo)
	salesOrderService := service.NewSalesOrderService(salesOrderRepo, customerRepo)
	locationService := service.NewLocationService(locationRepo)
	hedgeService := service.NewHedgeService(hedgeRepo, counterpartyRepo)
	marketService := service.NewMarketService(priceRepo, mtmRepo, hedgeRepo)
	settingsService, err := service.NewSettingsService(settingRepo, cfg.Secrets.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}

	// Start the mark-to-market scheduler
	jobs, err := scheduler.New(marketService, cfg.Jobs.MTMSchedule)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:        systemService,
		Composer:      composerService,
		RFQRecord:     rfqRecordService,
		Supplier:      supplierService,
		Customer:      customerService,
		Counterparty:  counterpartyService,
		PurchaseOrder: purchaseOrderService,
		SalesOrder:    salesOrderService,
		Location:      locationService,
		Hedge:         hedgeService,
		Market:        marketService,
		Settings:      settingsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
