package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moverank/leadgen/internal/infra/http/middleware"
)

// RouterConfig carries the pieces of deployment config the router needs.
type RouterConfig struct {
	AdminUsername  string
	AdminPassword  string
	AllowedOrigins []string
	FrontendDir    string
}

// NewRouter wires the full HTTP surface. Admin API routes sit behind Basic
// Auth; the admin dashboard HTML itself is public and authenticates through
// the browser prompt when it calls the API.
func NewRouter(
	cfg RouterConfig,
	lead *LeadHandler,
	customer *CustomerHandler,
	admin *AdminHandler,
	health *HealthHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads/score", lead.HandleScore)

	r.Post("/customers/register", customer.HandleRegister)
	r.Get("/customers/{customerID}", customer.HandleGet)
	r.Get("/customers/{customerID}/usage", customer.HandleUsage)
	r.Get("/customers/{customerID}/purchases", customer.HandlePurchases)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", serveFile(filepath.Join(cfg.FrontendDir, "admin.html")))

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.BasicAuth("admin", map[string]string{
				cfg.AdminUsername: cfg.AdminPassword,
			}))
			r.Get("/leads", admin.HandleListLeads)
			r.Post("/leads/{leadID}/assign", admin.HandleAssignLead)
			r.Get("/customers", admin.HandleListCustomers)
			r.Get("/analytics", admin.HandleAnalytics)
		})
	})

	r.Get("/", serveFile(filepath.Join(cfg.FrontendDir, "index.html")))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.FrontendDir))))

	return r
}

func serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
