package http

import (
	"net/http"

	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	serviceHandler      *handler.ServiceHandler
	specialtyHandler    *handler.SpecialtyHandler
	appointmentHandler  *handler.AppointmentHandler
	messageHandler      *handler.MessageHandler
	reviewHandler       *handler.ReviewHandler
	documentHandler     *handler.DocumentHandler
	notificationHandler *handler.NotificationHandler
	basicAuthMiddleware *middleware.BasicAuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	uploadDir           string
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	serviceHandler *handler.ServiceHandler,
	specialtyHandler *handler.SpecialtyHandler,
	appointmentHandler *handler.AppointmentHandler,
	messageHandler *handler.MessageHandler,
	reviewHandler *handler.ReviewHandler,
	documentHandler *handler.DocumentHandler,
	notificationHandler *handler.NotificationHandler,
	basicAuthMiddleware *middleware.BasicAuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		serviceHandler:      serviceHandler,
		specialtyHandler:    specialtyHandler,
		appointmentHandler:  appointmentHandler,
		messageHandler:      messageHandler,
		reviewHandler:       reviewHandler,
		documentHandler:     documentHandler,
		notificationHandler: notificationHandler,
		basicAuthMiddleware: basicAuthMiddleware,
		corsMiddleware:      corsMiddleware,
		uploadDir:           uploadDir,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public site routes
	api.HandleFunc("/doctors/search", r.doctorHandler.Search).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/specialties", r.doctorHandler.GetDoctorSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.specialtyHandler.GetAllSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/services/search", r.serviceHandler.Search).Methods(http.MethodPost)
	api.HandleFunc("/services", r.serviceHandler.GetPriceList).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/contacts", r.messageHandler.CreateMessage).Methods(http.MethodPost)
	api.HandleFunc("/reviews", r.reviewHandler.GetApprovedReviews).Methods(http.MethodGet)
	api.HandleFunc("/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)
	api.HandleFunc("/documents", r.documentHandler.GetActiveDocuments).Methods(http.MethodGet)

	// Admin routes (basic auth)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.basicAuthMiddleware.Authenticate)

	admin.HandleFunc("/notifications/count", r.notificationHandler.GetCounts).Methods(http.MethodGet)

	// Appointment management (admin)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Message management (admin)
	admin.HandleFunc("/messages", r.messageHandler.GetAllMessages).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{id}/mark-read", r.messageHandler.MarkRead).Methods(http.MethodPost)
	admin.HandleFunc("/messages/{id}/mark-replied", r.messageHandler.MarkReplied).Methods(http.MethodPost)
	admin.HandleFunc("/messages/{id}", r.messageHandler.DeleteMessage).Methods(http.MethodDelete)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/photo", r.doctorHandler.UploadPhoto).Methods(http.MethodPost)

	// Specialty management (admin)
	admin.HandleFunc("/specialties", r.specialtyHandler.CreateSpecialty).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.DeleteSpecialty).Methods(http.MethodDelete)

	// Price list management (admin)
	admin.HandleFunc("/categories", r.serviceHandler.GetAllCategories).Methods(http.MethodGet)
	admin.HandleFunc("/categories", r.serviceHandler.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", r.serviceHandler.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id}", r.serviceHandler.DeleteCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Review moderation (admin)
	admin.HandleFunc("/reviews", r.reviewHandler.GetAllReviews).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}/approve", r.reviewHandler.ApproveReview).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}/reject", r.reviewHandler.RejectReview).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}/feature", r.reviewHandler.FeatureReview).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}/unfeature", r.reviewHandler.UnfeatureReview).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}", r.reviewHandler.DeleteReview).Methods(http.MethodDelete)

	// Document management (admin)
	admin.HandleFunc("/documents", r.documentHandler.GetAllDocuments).Methods(http.MethodGet)
	admin.HandleFunc("/documents", r.documentHandler.CreateDocument).Methods(http.MethodPost)
	admin.HandleFunc("/documents/{id}", r.documentHandler.UpdateDocument).Methods(http.MethodPut)
	admin.HandleFunc("/documents/{id}", r.documentHandler.DeleteDocument).Methods(http.MethodDelete)

	// Uploaded images are served statically
	r.router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(r.uploadDir))))

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
