package http

import (
	"net/http"

	"fisio-connect-api/internal/delivery/http/handler"
	"fisio-connect-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	professionalHandler *handler.ProfessionalHandler
	clientHandler       *handler.ClientHandler
	statsHandler        *handler.StatsHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	professionalHandler *handler.ProfessionalHandler,
	clientHandler *handler.ClientHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		professionalHandler: professionalHandler,
		clientHandler:       clientHandler,
		statsHandler:        statsHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/professional", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/register/client", r.authHandler.RegisterClient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Listings (protected)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/professionals", r.professionalHandler.GetAllProfessionals).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	protected.HandleFunc("/clients", r.clientHandler.GetAllClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)

	// Admin routes (protected - staff only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireStaff)

	// Account management (staff)
	admin.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/deactivate", r.userHandler.DeactivateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/reactivate", r.userHandler.ReactivateUser).Methods(http.MethodPost)

	// Professional management (staff)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.DeleteProfessional).Methods(http.MethodDelete)
	admin.HandleFunc("/professionals/{id}/deactivate", r.professionalHandler.DeactivateProfessional).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{id}/reactivate", r.professionalHandler.ReactivateProfessional).Methods(http.MethodPost)

	// Client management (staff)
	admin.HandleFunc("/clients/{id}", r.clientHandler.UpdateClient).Methods(http.MethodPut)
	admin.HandleFunc("/clients/{id}", r.clientHandler.DeleteClient).Methods(http.MethodDelete)
	admin.HandleFunc("/clients/{id}/deactivate", r.clientHandler.DeactivateClient).Methods(http.MethodPost)
	admin.HandleFunc("/clients/{id}/reactivate", r.clientHandler.ReactivateClient).Methods(http.MethodPost)

	// Statistics (staff)
	admin.HandleFunc("/stats/users", r.statsHandler.GetUserStats).Methods(http.MethodGet)

	// Audit trail (staff)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok", "message": "API is running"}`))
}
