package routes

import (
	"net/http"
	"time"

	"medportal/handlers"
	"medportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/session", hb.SessionHandler)
	}
}

// RegisterScheduleRoutes registers the calendar week view and absences.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
	{
		api.GET("/schedule/week", hb.WeekViewHandler)

		api.POST("/absences", hb.RegisterAbsenceHandler)
		api.GET("/absences", hb.ListAbsencesHandler)
		api.DELETE("/absences/:id", hb.DeleteAbsenceHandler)
	}
}

// RegisterAppointmentRoutes registers consultation CRUD and drag/drop moves.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
	{
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id", hb.EditAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
		api.PUT("/:id/reschedule", hb.RescheduleAppointmentHandler)
		api.POST("/:id/cancel", hb.CancelAppointmentHandler)

		api.POST("/:id/move", hb.ProposeMoveHandler)
		api.POST("/:id/move/confirm", hb.ConfirmMoveHandler)
		api.POST("/:id/move/cancel", hb.CancelMoveHandler)
	}
}

// RegisterDocumentRoutes registers the documents page endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
	{
		api.GET("", hb.ListDocumentsHandler)
		api.GET("/facets", hb.DocumentFacetsHandler)
		api.POST("", hb.UploadDocumentHandler)
		api.GET("/:id/download", hb.DownloadDocumentHandler)
		api.DELETE("/:id", hb.DeleteDocumentHandler)
	}
}

// RegisterAccountRoutes registers account and public profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
	{
		api.GET("/account", hb.GetAccountHandler)
		api.PUT("/account", hb.UpdateAccountHandler)
		api.PUT("/account/password", hb.UpdatePasswordHandler)

		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.POST("/profile/photo", hb.UploadProfilePhotoHandler)
	}
}

// RegisterNotificationRoutes registers the notifications panel endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
	{
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/read-all", hb.MarkAllNotificationsReadHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterExportRoutes registers the PDF export endpoints.
func RegisterExportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/export")
	api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
	{
		api.POST("/page", hb.ExportPageHandler)
		api.POST("/all", hb.ExportAllHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MedPortal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterExportRoutes(r, hb)
	RegisterHealthRoute(r)
}
