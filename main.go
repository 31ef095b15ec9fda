// File: medportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medportal/config"
	croncfg "medportal/cron"
	"medportal/database"
	absenceRepoPkg "medportal/database/repository/absence"
	appointmentRepoPkg "medportal/database/repository/appointment"
	doctorRepoPkg "medportal/database/repository/doctor"
	documentRepoPkg "medportal/database/repository/document"
	notificationRepoPkg "medportal/database/repository/notification"
	"medportal/handlers"
	"medportal/middleware"
	"medportal/routes"
	"medportal/services/appointment"
	"medportal/services/doctor"
	"medportal/services/document"
	"medportal/services/export"
	"medportal/services/notification"
	"medportal/services/schedule"
	"medportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitSessionCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	absRepo := absenceRepoPkg.NewMongoAbsenceRepo()
	documRepo := documentRepoPkg.NewMongoDocumentRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(notifRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	doctorService := &doctor.DefaultDoctorService{
		Repo:    docRepo,
		Storage: cloudinaryStorageService,
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:     apptRepo,
		Notifier: notificationService,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Appointments: apptRepo,
		Absences:     absRepo,
		Doctors:      docRepo,
		Notifier:     notificationService,
		Mailer:       notification.LogMailer{},
		Sessions:     &schedule.RedisSessionStore{Client: utils.GetSessionCacheClient()},
	}

	documentService := &document.DefaultDocumentService{
		Repo:    documRepo,
		Storage: cloudinaryStorageService,
	}

	exportService := export.NewDefaultExportService()

	// handlers.
	authHandler := &handlers.AuthHandler{Service: doctorService}
	accountHandler := &handlers.AccountHandler{Service: doctorService}
	profileHandler := &handlers.ProfileHandler{Service: doctorService}
	appointmentHandler := &handlers.AppointmentHandler{Service: appointmentService}
	scheduleHandler := &handlers.ScheduleHandler{Service: scheduleService}
	documentHandler := &handlers.DocumentHandler{Service: documentService}
	notificationHandler := &handlers.NotificationHandler{Service: notificationService}
	exportHandler := &handlers.ExportHandler{Service: exportService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo: docRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		LogoutHandler:   authHandler.LogoutHandler,
		SessionHandler:  authHandler.SessionHandler,

		// Schedule endpoints.
		WeekViewHandler:        scheduleHandler.WeekViewHandler,
		RegisterAbsenceHandler: scheduleHandler.RegisterAbsenceHandler,
		ListAbsencesHandler:    scheduleHandler.ListAbsencesHandler,
		DeleteAbsenceHandler:   scheduleHandler.DeleteAbsenceHandler,
		ProposeMoveHandler:     scheduleHandler.ProposeMoveHandler,
		ConfirmMoveHandler:     scheduleHandler.ConfirmMoveHandler,
		CancelMoveHandler:      scheduleHandler.CancelMoveHandler,

		// Appointment endpoints.
		CreateAppointmentHandler:       appointmentHandler.CreateAppointmentHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		EditAppointmentHandler:         appointmentHandler.EditAppointmentHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,
		RescheduleAppointmentHandler:   appointmentHandler.RescheduleAppointmentHandler,
		CancelAppointmentHandler:       appointmentHandler.CancelAppointmentHandler,

		// Document endpoints.
		ListDocumentsHandler:    documentHandler.ListDocumentsHandler,
		DocumentFacetsHandler:   documentHandler.DocumentFacetsHandler,
		UploadDocumentHandler:   documentHandler.UploadDocumentHandler,
		DownloadDocumentHandler: documentHandler.DownloadDocumentHandler,
		DeleteDocumentHandler:   documentHandler.DeleteDocumentHandler,

		// Account & profile endpoints.
		GetAccountHandler:         accountHandler.GetAccountHandler,
		UpdateAccountHandler:      accountHandler.UpdateAccountHandler,
		UpdatePasswordHandler:     accountHandler.UpdatePasswordHandler,
		GetProfileHandler:         profileHandler.GetProfileHandler,
		UpdateProfileHandler:      profileHandler.UpdateProfileHandler,
		UploadProfilePhotoHandler: profileHandler.UploadProfilePhotoHandler,

		// Notification endpoints.
		ListNotificationsHandler:        notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler:     notificationHandler.MarkNotificationReadHandler,
		MarkAllNotificationsReadHandler: notificationHandler.MarkAllNotificationsReadHandler,

		// Export endpoints.
		ExportPageHandler: exportHandler.ExportPageHandler,
		ExportAllHandler:  exportHandler.ExportAllHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the daily reminder scheduler.
	reminderCron := croncfg.InitReminderWorker(apptRepo, notificationService)
	defer reminderCron.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
