package http

import (
	"net/http"
	"time"

	"health-records-service/internal/delivery/http/handler"
	"health-records-service/internal/delivery/http/middleware"
	"health-records-service/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router               *mux.Router
	log                  *logrus.Logger
	requestTimeout       time.Duration
	trustProxy           bool
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	dashboardHandler     *handler.DashboardHandler
	analysisHandler      *handler.AnalysisHandler
	adminHandler         *handler.AdminHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

type Handlers struct {
	Auth          *handler.AuthHandler
	Patient       *handler.PatientHandler
	MedicalRecord *handler.MedicalRecordHandler
	Dashboard     *handler.DashboardHandler
	Analysis      *handler.AnalysisHandler
	Admin         *handler.AdminHandler
	AuditLog      *handler.AuditLogHandler
}

func NewRouter(
	log *logrus.Logger,
	requestTimeout time.Duration,
	trustProxy bool,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		log:                  log,
		requestTimeout:       requestTimeout,
		trustProxy:           trustProxy,
		authHandler:          handlers.Auth,
		patientHandler:       handlers.Patient,
		medicalRecordHandler: handlers.MedicalRecord,
		dashboardHandler:     handlers.Dashboard,
		analysisHandler:      handlers.Analysis,
		adminHandler:         handlers.Admin,
		auditLogHandler:      handlers.AuditLog,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/signup", r.authHandler.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/signin", r.authHandler.SignIn).Methods(http.MethodPost)

	// Everything below requires a session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", r.dashboardHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/analysis", r.analysisHandler.Analyze).Methods(http.MethodPost)

	// Record reads are decided per patient by the usecase
	protected.HandleFunc("/medical-records/patient/{patientId}", r.medicalRecordHandler.ListForPatient).Methods(http.MethodGet)

	// Doctor routes
	doctor := protected.NewRoute().Subrouter()
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/patients/search", r.patientHandler.Search).Methods(http.MethodGet)
	doctor.HandleFunc("/medical-records", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/medical-records/mine", r.medicalRecordHandler.ListMine).Methods(http.MethodGet)

	// Admin routes
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users/{userId}/activate", r.adminHandler.ActivateUser).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{userId}/deactivate", r.adminHandler.DeactivateUser).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Preflight for any path; the CORS middleware answers it
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})

	// Outermost first
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.ClientAddress(r.trustProxy))
	r.router.Use(middleware.Recover(r.log))
	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.SecureHeaders)
	r.router.Use(middleware.Timeout(r.requestTimeout))

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
