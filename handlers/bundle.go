// File: medportal/handlers/bundle.go
package handlers

import (
	doctorRepoPkg "medportal/database/repository/doctor"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	DoctorRepo doctorRepoPkg.DoctorRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	SessionHandler  gin.HandlerFunc

	// Schedule endpoints
	WeekViewHandler        gin.HandlerFunc
	RegisterAbsenceHandler gin.HandlerFunc
	ListAbsencesHandler    gin.HandlerFunc
	DeleteAbsenceHandler   gin.HandlerFunc
	ProposeMoveHandler     gin.HandlerFunc
	ConfirmMoveHandler     gin.HandlerFunc
	CancelMoveHandler      gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler       gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	EditAppointmentHandler         gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	RescheduleAppointmentHandler   gin.HandlerFunc
	CancelAppointmentHandler       gin.HandlerFunc

	// Document endpoints
	ListDocumentsHandler    gin.HandlerFunc
	DocumentFacetsHandler   gin.HandlerFunc
	UploadDocumentHandler   gin.HandlerFunc
	DownloadDocumentHandler gin.HandlerFunc
	DeleteDocumentHandler   gin.HandlerFunc

	// Account & profile endpoints
	GetAccountHandler         gin.HandlerFunc
	UpdateAccountHandler      gin.HandlerFunc
	UpdatePasswordHandler     gin.HandlerFunc
	GetProfileHandler         gin.HandlerFunc
	UpdateProfileHandler      gin.HandlerFunc
	UploadProfilePhotoHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler        gin.HandlerFunc
	MarkNotificationReadHandler     gin.HandlerFunc
	MarkAllNotificationsReadHandler gin.HandlerFunc

	// Export endpoints
	ExportPageHandler gin.HandlerFunc
	ExportAllHandler  gin.HandlerFunc
}
