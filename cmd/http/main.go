package main

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/delivery/http/controllers"
	"medcalc-service/internal/app/delivery/http/middlewares"
	"medcalc-service/internal/app/delivery/http/routers"
	"medcalc-service/internal/app/drivers/database"
	"medcalc-service/internal/app/drivers/logger"
	"medcalc-service/internal/app/drivers/messaging"
	"medcalc-service/internal/app/drivers/storage"
	"medcalc-service/internal/app/services/apiclient"
	"medcalc-service/internal/app/services/core/admin"
	"medcalc-service/internal/app/services/core/auth"
	"medcalc-service/internal/app/services/core/history"
	"medcalc-service/internal/app/services/core/maintenance"
	"medcalc-service/internal/app/services/core/notifications"
	"medcalc-service/internal/app/services/core/preferences"
	"medcalc-service/internal/app/services/core/questionnaires"
	"medcalc-service/internal/app/services/core/results"
	"medcalc-service/internal/app/services/core/session"
	"medcalc-service/internal/app/services/shared/notifier"
	preferencesRepository "medcalc-service/internal/app/services/shared/preferences"
	"medcalc-service/internal/app/services/shared/redis"
	"medcalc-service/internal/app/services/shared/sessionstore"
	reportStorage "medcalc-service/internal/app/services/shared/storage"
	"medcalc-service/internal/app/services/shared/tokenstore"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, internalConfig),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	stopWorker, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		logrus.Printf("Server listening on port %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	stopWorker()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Failed to close dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

// bootstrapingTheApp wires every layer onto the router and starts the
// maintenance worker. The returned func stops the worker.
func bootstrapingTheApp(bootstrap *config.Bootstrap) (func(), error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Session storage
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionRepository := sessionstore.NewSessionRepository(redisRepository, log)
	sealer, err := tokenstore.NewSecretboxSealer(internalConfig.Session.EncryptionKey)
	if err != nil {
		return nil, err
	}
	tokenStore := tokenstore.NewTokenStore(sessionRepository, sealer, log)

	// External scoring API
	scoringAPI := apiclient.NewScoringAPIClient(
		internalConfig.API.BaseUrl,
		time.Duration(internalConfig.API.TimeoutInSeconds)*time.Second,
		tokenStore,
		log,
	)

	// Shared infrastructure
	events, err := notifier.NewNotifierService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.EventsQueue, log)
	if err != nil {
		return nil, err
	}
	reports := reportStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName, log)
	preferencesRepo := preferencesRepository.NewPreferencesMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.PreferencesCollection)

	// Per-device containers
	sessionRegistry := session.NewRegistry(scoringAPI, log)
	historyRegistry := history.NewRegistry(scoringAPI, log)

	// Usecases
	adminUsecase := admin.NewAdminUsecase(scoringAPI, events, log)
	authUsecase := auth.NewAuthUsecase(scoringAPI, sessionRepository, sealer, internalConfig, log,
		sessionRegistry,
		historyRegistry,
		adminUsecase,
	)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(
		scoringAPI,
		sessionRegistry,
		historyRegistry,
		events,
		internalConfig.API.DefaultClientType,
		log,
	)
	resultUsecase := results.NewResultUsecase(
		historyRegistry,
		reports,
		events,
		time.Duration(internalConfig.App.MinioPreSignedUrlExpiryInHour)*time.Hour,
		log,
	)
	notificationUsecase := notifications.NewNotificationUsecase(scoringAPI, log)
	preferencesUsecase := preferences.NewPreferencesUsecase(preferencesRepo, log)

	// Delivery
	mw := middlewares.NewMiddlewares(log, authUsecase, internalConfig)
	loginLimiter := middlewares.NewRateLimiter(
		internalConfig.App.LoginMaxAttemptsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.LoginBlockDurationInMinutes)*time.Minute,
		log,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		log,
		internalConfig,
		mw,
		loginLimiter,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewQuestionnaireController(log, questionnaireUsecase),
		controllers.NewResultController(log, resultUsecase),
		controllers.NewAdminController(log, adminUsecase),
		controllers.NewNotificationController(log, notificationUsecase),
		controllers.NewPreferencesController(log, preferencesUsecase),
		controllers.NewFormController(log),
	)

	worker := maintenance.NewWorker(log, internalConfig,
		[]maintenance.SessionPruner{sessionRegistry, historyRegistry, adminUsecase},
		loginLimiter,
	)
	worker.Start()

	return worker.Stop, nil
}
