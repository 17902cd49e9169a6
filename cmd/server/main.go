package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nens2012/life-aid-nexus/internal/alert"
	"github.com/nens2012/life-aid-nexus/internal/api"
	"github.com/nens2012/life-aid-nexus/internal/config"
	"github.com/nens2012/life-aid-nexus/internal/consultation"
	"github.com/nens2012/life-aid-nexus/internal/handlers"
	"github.com/nens2012/life-aid-nexus/internal/inference"
	"github.com/nens2012/life-aid-nexus/internal/logging"
	"github.com/nens2012/life-aid-nexus/internal/memory"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/profile"
	"github.com/nens2012/life-aid-nexus/internal/report"
	"github.com/nens2012/life-aid-nexus/internal/transport"
)

func main() {
	// Load .env file if it exists (for development)
	envErr := godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	if envErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}

	logger.Info("starting wellness intent service",
		zap.String("service", cfg.ServiceName),
		zap.String("http_addr", cfg.HTTPAddr))

	engine, err := inference.New()
	if err != nil {
		logger.Fatal("invalid inference tables", zap.Error(err))
	}
	logger.Info("inference engine ready", zap.Int("rules", len(engine.Table().Rules())))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessionStore := newSessionStore(cfg, logger)
	sessions := memory.NewManager(sessionStore, logger.Named("sessions"))
	defer sessions.Close()

	profiles, closeProfiles := newProfileService(ctx, cfg, logger)
	defer closeProfiles()

	consultations, closeConsultations := newConsultationRepository(ctx, cfg, logger)
	defer closeConsultations()

	var natsTransport *transport.NATSTransport
	if cfg.NatsEnabled {
		natsTransport, err = transport.NewNATSTransport(cfg, logger.Named("nats"))
		if err != nil {
			logger.Fatal("failed to initialize NATS transport", zap.Error(err))
		}
		defer natsTransport.Close()
	}

	alerts := newAlertPublisher(cfg, natsTransport, logger)
	defer alerts.Close()

	intentHandler := handlers.NewIntentHandler(handlers.Dependencies{
		Engine:          engine,
		Sessions:        sessions,
		Profiles:        profiles,
		Consultations:   consultations,
		Alerts:          alerts,
		Logger:          logger.Named("intent"),
		DefaultLanguage: models.ParseLanguage(cfg.DefaultLanguage),
	})

	if natsTransport != nil {
		if err := natsTransport.Start(intentHandler); err != nil {
			logger.Fatal("failed to start NATS transport", zap.Error(err))
		}
	}

	apiHandler := api.NewHandler(api.Options{
		Intents:       intentHandler,
		Sessions:      sessions,
		Profiles:      profiles,
		Consultations: consultations,
		Reports:       report.NewRenderer(cfg.ReportFontPath),
		ListLimit:     cfg.ConsultationLimit,
		Timeout:       cfg.RequestTimeout,
		Logger:        logger.Named("api"),
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(apiHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("service is running", zap.Bool("nats", cfg.NatsEnabled), zap.String("alerts", cfg.AlertBroker))

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("error shutting down HTTP server", zap.Error(err))
	}
	logger.Info("pending session locks", zap.Int("count", sessions.ActiveLocks()))
}

func newSessionStore(cfg *config.Config, logger *zap.Logger) memory.Store {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, keeping sessions in memory")
		return memory.NewMemoryStore(cfg.SessionTTL)
	}
	store, err := memory.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	logger.Info("Redis session store connected", zap.Duration("ttl", cfg.SessionTTL))
	return store
}

func newProfileService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*profile.Service, func()) {
	if cfg.MongoURI == "" {
		logger.Info("MONGO_URI not set, keeping profiles in memory")
		return profile.NewService(profile.NewMemoryStore()), func() {}
	}
	store, err := profile.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("MongoDB profile store connected", zap.String("db", cfg.MongoDB))
	return profile.NewService(store), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.Warn("error closing MongoDB", zap.Error(err))
		}
	}
}

func newConsultationRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (consultation.Repository, func()) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, keeping consultations in memory")
		return consultation.NewMemoryRepository(), func() {}
	}
	if err := consultation.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	db, err := consultation.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	logger.Info("PostgreSQL consultation store connected")
	return consultation.NewRepository(db), func() { db.Close() }
}

func newAlertPublisher(cfg *config.Config, nt *transport.NATSTransport, logger *zap.Logger) alert.Publisher {
	switch cfg.AlertBroker {
	case config.AlertBrokerNATS:
		if nt != nil {
			logger.Info("publishing urgent alerts over NATS", zap.String("subject", cfg.AlertNatsSubject))
			return alert.NewNATSPublisher(nt.Conn(), cfg.AlertNatsSubject)
		}
		p, err := alert.DialNATSPublisher(cfg.NatsURL, cfg.AlertNatsSubject)
		if err != nil {
			logger.Fatal("failed to connect alert publisher", zap.Error(err))
		}
		return p
	case config.AlertBrokerAMQP:
		p, err := alert.NewAMQPPublisher(cfg.RabbitMQURL, alert.DefaultExchange, alert.DefaultRoutingKey)
		if err != nil {
			logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		logger.Info("publishing urgent alerts to RabbitMQ", zap.String("exchange", alert.DefaultExchange))
		return p
	case config.AlertBrokerNone, "":
		return alert.Nop{}
	default:
		logger.Fatal("unknown ALERT_BROKER", zap.String("value", cfg.AlertBroker))
		return nil
	}
}
