package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/amorty-hall/api/internal/handler"
	"github.com/amorty-hall/api/internal/store"
)

// New creates a Chi router with every entity screen's routes wired up.
func New(collections *store.Collections) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the console frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",          // Vite dev server
			"https://console.amortyhall.com", // Production console
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	customerHandler := handler.NewCustomerHandler(collections.Customers)
	r.Route("/customers", customerHandler.RegisterRoutes)

	employeeHandler := handler.NewEmployeeHandler(collections.Employees)
	r.Route("/employees", employeeHandler.RegisterRoutes)

	menuHandler := handler.NewMenuHandler(collections.Menu)
	r.Route("/menu", menuHandler.RegisterRoutes)

	tableHandler := handler.NewBilliardTableHandler(collections.Tables)
	r.Route("/tables", tableHandler.RegisterRoutes)

	orderHandler := handler.NewOrderHandler(collections.Orders, collections.Customers, collections.Menu)
	r.Route("/orders", orderHandler.RegisterRoutes)

	paymentHandler := handler.NewPaymentHandler(collections.Payments, collections.Orders, collections.Employees)
	r.Route("/payments", paymentHandler.RegisterRoutes)

	reservationHandler := handler.NewReservationHandler(collections.Reservations, collections.Customers, collections.Tables)
	r.Route("/reservations", reservationHandler.RegisterRoutes)

	rentalHandler := handler.NewRentalHandler(collections.Rentals, collections.Customers, collections.Tables, collections.Employees)
	r.Route("/rentals", rentalHandler.RegisterRoutes)

	dashboardHandler := handler.NewDashboardHandler(collections)
	r.Route("/dashboard", dashboardHandler.RegisterRoutes)

	reportsHandler := handler.NewReportsHandler(collections)
	r.Route("/reports", reportsHandler.RegisterRoutes)

	metaHandler := handler.NewMetaHandler()
	r.Route("/meta", metaHandler.RegisterRoutes)

	log.Println("Router initialized with all handlers")
	return r
}
