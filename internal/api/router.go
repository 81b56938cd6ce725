package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alcast/backoffice/internal/api/handlers"
	custommiddleware "github.com/alcast/backoffice/internal/api/middleware"
	"github.com/alcast/backoffice/internal/config"
	"github.com/alcast/backoffice/internal/service"
)

// Services bundles the service dependencies of the router.
type Services struct {
	System        *service.SystemService
	Composer      *service.ComposerService
	RFQRecord     *service.RFQRecordService
	Supplier      *service.SupplierService
	Customer      *service.CustomerService
	Counterparty  *service.CounterpartyService
	PurchaseOrder *service.PurchaseOrderService
	SalesOrder    *service.SalesOrderService
	Location      *service.LocationService
	Hedge         *service.HedgeService
	Market        *service.MarketService
	Settings      *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/rfq", func(r chi.Router) {
			composerHandler := handlers.NewComposerHandler(svcs.Composer)
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", composerHandler.CreateSession)
				r.Route("/{sessionId}", func(r chi.Router) {
					r.Get("/", composerHandler.GetSession)
					r.Delete("/", composerHandler.DeleteSession)
					r.Put("/company", composerHandler.SetCompany)
					r.Post("/generate", composerHandler.Generate)
					r.Get("/share", composerHandler.ShareLinks)
					r.Route("/trades", func(r chi.Router) {
						r.Post("/", composerHandler.AddTrade)
						r.Route("/{tradeId}", func(r chi.Router) {
							r.Patch("/", composerHandler.UpdateTrade)
							r.Delete("/", composerHandler.RemoveTrade)
							r.Patch("/legs/{leg}", composerHandler.UpdateLeg)
							r.Post("/template", composerHandler.ApplyTemplate)
						})
					})
				})
			})

			recordHandler := handlers.NewRFQRecordHandler(svcs.RFQRecord)
			r.Route("/records", func(r chi.Router) {
				r.Get("/", recordHandler.Records)
				r.Post("/", recordHandler.Dispatch)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", recordHandler.GetRecord)
				})
			})
		})

		r.Route("/suppliers", func(r chi.Router) {
			supplierHandler := handlers.NewSupplierHandler(svcs.Supplier)
			r.Get("/", supplierHandler.Suppliers)
			r.Post("/", supplierHandler.CreateSupplier)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", supplierHandler.GetSupplier)
				r.Put("/", supplierHandler.UpdateSupplier)
				r.Delete("/", supplierHandler.DeleteSupplier)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			customerHandler := handlers.NewCustomerHandler(svcs.Customer)
			r.Get("/", customerHandler.Customers)
			r.Post("/", customerHandler.CreateCustomer)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", customerHandler.GetCustomer)
				r.Put("/", customerHandler.UpdateCustomer)
				r.Delete("/", customerHandler.DeleteCustomer)
			})
		})

		r.Route("/counterparties", func(r chi.Router) {
			counterpartyHandler := handlers.NewCounterpartyHandler(svcs.Counterparty)
			r.Get("/", counterpartyHandler.Counterparties)
			r.Post("/", counterpartyHandler.CreateCounterparty)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", counterpartyHandler.GetCounterparty)
				r.Put("/", counterpartyHandler.UpdateCounterparty)
				r.Delete("/", counterpartyHandler.DeleteCounterparty)
			})
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			poHandler := handlers.NewPurchaseOrderHandler(svcs.PurchaseOrder)
			r.Get("/", poHandler.PurchaseOrders)
			r.Post("/", poHandler.CreatePurchaseOrder)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", poHandler.GetPurchaseOrder)
				r.Put("/", poHandler.UpdatePurchaseOrder)
				r.Delete("/", poHandler.DeletePurchaseOrder)
			})
		})

		r.Route("/sales-orders", func(r chi.Router) {
			soHandler := handlers.NewSalesOrderHandler(svcs.SalesOrder)
			r.Get("/", soHandler.SalesOrders)
			r.Post("/", soHandler.CreateSalesOrder)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", soHandler.GetSalesOrder)
				r.Put("/", soHandler.UpdateSalesOrder)
				r.Delete("/", soHandler.DeleteSalesOrder)
			})
		})

		r.Route("/locations", func(r chi.Router) {
			locationHandler := handlers.NewLocationHandler(svcs.Location)
			r.Get("/", locationHandler.Locations)
			r.Post("/", locationHandler.CreateLocation)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", locationHandler.GetLocation)
				r.Put("/", locationHandler.UpdateLocation)
				r.Delete("/", locationHandler.DeleteLocation)
			})
		})

		r.Route("/hedges", func(r chi.Router) {
			hedgeHandler := handlers.NewHedgeHandler(svcs.Hedge)
			r.Get("/", hedgeHandler.Hedges)
			r.Post("/", hedgeHandler.CreateHedge)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", hedgeHandler.GetHedge)
				r.Put("/", hedgeHandler.UpdateHedge)
				r.Delete("/", hedgeHandler.DeleteHedge)
			})
		})

		r.Route("/market", func(r chi.Router) {
			marketHandler := handlers.NewMarketHandler(svcs.Market)
			r.Get("/prices", marketHandler.Prices)
			r.Post("/prices", marketHandler.RecordPrice)
			r.Get("/mtm", marketHandler.MTMRecords)
			r.Post("/mtm", marketHandler.RunMTM)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svcs.Settings)
			r.Get("/messaging-gateway", settingsHandler.GatewaySettings)
			r.Put("/messaging-gateway", settingsHandler.UpdateGatewaySettings)
		})
	})

	return r
}
