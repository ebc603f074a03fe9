package main

import (
	"context"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/delivery/http/routers"
	"healthtrack-service/internal/app/drivers/database"
	"healthtrack-service/internal/app/drivers/logger"
	"healthtrack-service/internal/app/drivers/mailer"
	"healthtrack-service/internal/app/drivers/messaging"
	"healthtrack-service/internal/app/drivers/storage"
	"healthtrack-service/internal/app/services/core/auth"
	"healthtrack-service/internal/app/services/core/hospitals"
	"healthtrack-service/internal/app/services/core/medications"
	"healthtrack-service/internal/app/services/core/patients"
	"healthtrack-service/internal/app/services/core/purchases"
	"healthtrack-service/internal/app/services/core/reminders"
	"healthtrack-service/internal/app/services/shared/locker"
	mailerService "healthtrack-service/internal/app/services/shared/mailer"
	redisRepo "healthtrack-service/internal/app/services/shared/redis"
	"healthtrack-service/internal/app/services/shared/sms"
	minioStorage "healthtrack-service/internal/app/services/shared/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerSvc, err := mailerService.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		log.Fatalf("Failed to initialize mailer service: %v", err)
	}

	smsService, err := sms.NewSMSService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.SMSQueue)
	if err != nil {
		log.Fatalf("Failed to initialize sms service: %v", err)
	}

	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)

	// Repositories
	hospitalRepository := hospitals.NewHospitalMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	medicationRepository := medications.NewMedicationMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	purchaseRepository := purchases.NewPurchaseMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(hospitalRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	hospitalUsecase := hospitals.NewHospitalUsecase(hospitalRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)
	medicationUsecase := medications.NewMedicationUsecase(medicationRepository, bootstrap.Logger)
	purchaseUsecase := purchases.NewPurchaseUsecase(purchaseRepository, patientRepository, medicationRepository, bootstrap.Logger)
	reminderUsecase := reminders.NewReminderUsecase(
		purchaseRepository,
		patientRepository,
		medicationRepository,
		hospitalRepository,
		storageService,
		mailerSvc,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)
	hospitalController := hospitals.NewHospitalController(bootstrap.Logger, hospitalUsecase)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)
	medicationController := medications.NewMedicationController(bootstrap.Logger, medicationUsecase)
	purchaseController := purchases.NewPurchaseController(bootstrap.Logger, purchaseUsecase)
	reminderController := reminders.NewReminderController(bootstrap.Logger, reminderUsecase)

	// Middlewares and routes
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		hospitalController,
		patientController,
		medicationController,
		purchaseController,
		reminderController,
	)

	// Reminder dispatch worker
	worker := reminders.NewWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		redisRepository,
		purchaseRepository,
		patientRepository,
		medicationRepository,
		smsService,
	)
	worker.Start(context.Background())
	bootstrap.ReminderWorkerStop = worker.Stop
}
