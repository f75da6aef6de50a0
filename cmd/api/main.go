package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sunriseclinic/recall-api/internal/infra/database"
	"github.com/sunriseclinic/recall-api/internal/infra/http/handlers"
	"github.com/sunriseclinic/recall-api/internal/infra/http/middleware"
	"github.com/sunriseclinic/recall-api/internal/infra/queue"
	"github.com/sunriseclinic/recall-api/internal/infra/sms"
	"github.com/sunriseclinic/recall-api/internal/usecase"
)

func main() {
	godotenv.Load()
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := loadConfig()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// RabbitMQ is optional: without a broker the send-sms endpoint still
	// flips statuses, it just has nowhere to hand the reminder intent.
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.ReminderPublisherInterface
	if cfg.RabbitURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	renderer, err := sms.NewRenderer(cfg.ClinicName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build reminder renderer")
	}

	// 1. Repositories
	patientRepo := database.NewPatientRepository(db)

	// 2. UseCases
	listUC := usecase.NewListPatientsUseCase(patientRepo)
	sendUC := usecase.NewSendReminderUseCase(patientRepo, renderer, producer)

	// 3. Handlers
	patientHandler := handlers.NewPatientHandler(listUC, sendUC)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.Get("/api/patients", patientHandler.HandleList)
	r.Post("/api/patients/{id}/send-sms", patientHandler.HandleSendSMS)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("patient recall API listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
