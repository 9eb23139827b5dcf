package router

import (
	"github.com/denmor86/ya-beautystudio/internal/config"
	"github.com/denmor86/ya-beautystudio/internal/network/handlers"
	"github.com/denmor86/ya-beautystudio/internal/network/middleware"
	"github.com/denmor86/ya-beautystudio/internal/services"
	"github.com/denmor86/ya-beautystudio/internal/sessions"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config       config.Config
	Catalog      services.CatalogService
	Checkout     services.CheckoutService
	Appointments services.AppointmentsService
	RequestInfo  *services.RequestInfoCollector
	Sessions     *sessions.Store
	TokenAuth    *jwtauth.JWTAuth
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	catalog := services.NewCatalog(storage, config.Booking.PageSize)

	// без адреса сервиса геолокация не определяется
	collector := services.NewRequestInfoCollector(nil)
	if config.Geo.GeoAddr != "" {
		collector.Geo = services.NewGeoLocator(config.Geo.GeoAddr, config.Geo.Timeout)
	}

	return &Router{
		Config:       config,
		Catalog:      catalog,
		Checkout:     services.NewCheckout(storage, storage),
		Appointments: services.NewAppointments(storage, config.Booking.PageSize),
		RequestInfo:  collector,
		Sessions: sessions.NewStore(
			services.NewAvailability(storage),
			catalog.ProductsFetcher(),
			config.Booking.PageSize,
		),
		TokenAuth: jwtauth.New("HS256", []byte(config.Server.JWTSecret), nil),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	if router.Config.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(router.Config.Server.RequestTimeout))
	}
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)

		r.Get("/services", handlers.ServicesHandler(router.Catalog))
		r.Get("/services/{id}", handlers.ServiceHandler(router.Catalog))
		r.Get("/products/{id}", handlers.ProductHandler(router.Catalog))

		r.Route("/booking/sessions", func(r chi.Router) {
			r.Post("/", handlers.CreateSessionHandler(router.Sessions, router.Catalog))
			r.Route("/{"+handlers.SessionParam+"}", func(r chi.Router) {
				r.Get("/", handlers.GetSessionHandler(router.Sessions))
				r.Delete("/", handlers.DeleteSessionHandler(router.Sessions))
				r.Put("/customer", handlers.SetCustomerHandler(router.Sessions))
				r.Put("/service", handlers.SetServiceHandler(router.Sessions, router.Catalog))
				r.Post("/services/{serviceID}/toggle", handlers.ToggleServiceHandler(router.Sessions))
				r.Put("/staff", handlers.SetStaffHandler(router.Sessions))
				r.Get("/staff", handlers.StaffHandler(router.Sessions))
				r.Put("/appointment", handlers.SetAppointmentHandler(router.Sessions))
				r.Put("/payment", handlers.SetPaymentHandler(router.Sessions))
				r.Get("/products", handlers.ProductsHandler(router.Sessions))
				r.Post("/products/{productID}", handlers.AddProductHandler(router.Sessions, router.Catalog))
				r.Delete("/products/{productID}", handlers.RemoveProductHandler(router.Sessions))
				r.Post("/step", handlers.StepHandler(router.Sessions))
				r.Post("/submit", handlers.SubmitHandler(router.Sessions, router.Checkout, router.RequestInfo))
			})
		})

		r.Get("/invoices/{number}", handlers.GetInvoiceHandler(router.Appointments))
		r.Post("/invoices/{number}/cancel", handlers.CancelInvoiceHandler(router.Appointments))

		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(router.TokenAuth))
			r.Use(jwtauth.Authenticator(router.TokenAuth))
			r.Use(middleware.AdminOnly)
			r.Get("/invoices", handlers.ListInvoicesHandler(router.Appointments))
			r.Patch("/invoices/{number}/status", handlers.UpdateStatusHandler(router.Appointments))
			r.Get("/staff", handlers.StaffListHandler(router.Catalog))
		})
	})
	return r
}
