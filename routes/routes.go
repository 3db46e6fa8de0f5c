package routes

import (
	"dentora/handlers"
	"dentora/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability read endpoint.
// Left unauthenticated so the patient portal can browse slots pre-login.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/:doctorID", h.GetDaySchedule)
	}
}

// RegisterAppointmentRoutes registers the reservation endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", h.Reserve)
		api.POST("/:id/cancel", h.Cancel)
		api.GET("/patient/:patientID", h.PatientAppointments)
	}
}

// RegisterDoctorRoutes registers the staff-only schedule admin endpoints.
func RegisterDoctorRoutes(r *gin.Engine, h *handlers.DoctorHandler) {
	api := r.Group("/api/doctors")
	api.Use(middleware.JWTAuthMiddleware(), middleware.StaffOnly())
	{
		api.GET("/:id/schedule", h.GetSchedule)
		api.PUT("/:id/schedule/template", h.UpdateTemplate)
		api.POST("/:id/schedule/leave", h.AddLeave)
		api.DELETE("/:id/schedule/leave/:leaveID", h.RemoveLeave)
	}
}
