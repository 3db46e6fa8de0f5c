// File: dentora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentora/config"
	"dentora/cron"
	"dentora/database"
	appointmentRepo "dentora/database/repository/appointment"
	doctorRepo "dentora/database/repository/doctor"
	"dentora/handlers"
	"dentora/middleware"
	"dentora/routes"
	"dentora/services/availability"
	"dentora/services/notification"
	"dentora/services/scheduling"
	"dentora/services/tasks"
	"dentora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	docRepo := doctorRepo.NewMongoDoctorRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Doctors:      docRepo,
		Appointments: apptRepo,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
	notificationService := notification.NewDefaultNotificationService(docRepo)
	schedulingService := &scheduling.DefaultSchedulingService{
		Appointments: apptRepo,
		Availability: availabilityService,
		Notifier:     notificationService,
		Reminders:    tasks.NewReminderScheduler(),
	}

	// handlers + routes.
	routes.RegisterAvailabilityRoutes(router, handlers.NewAvailabilityHandler(availabilityService))
	routes.RegisterAppointmentRoutes(router, handlers.NewAppointmentHandler(schedulingService))
	routes.RegisterDoctorRoutes(router, handlers.NewDoctorHandler(docRepo))

	// background reminder worker.
	cron.InitReminderWorker(notificationService)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("dentora listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
}
