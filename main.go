package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookwell/config"
	"bookwell/cron"
	"bookwell/database"
	catalogRepoPkg "bookwell/database/repository/catalog"
	commitmentRepoPkg "bookwell/database/repository/commitment"
	consumerRepoPkg "bookwell/database/repository/consumer"
	providerRepoPkg "bookwell/database/repository/provider"
	"bookwell/handlers"
	"bookwell/middleware"
	"bookwell/routes"
	"bookwell/services/booking"
	"bookwell/services/catalog"
	"bookwell/services/consumer"
	"bookwell/services/provider"
	"bookwell/services/storage"
	"bookwell/services/suggestion"
	"bookwell/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSuggestionCache()
	utils.InitAuthCache()

	// Repositories.
	consumerRepo := consumerRepoPkg.NewMongoConsumerRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	commitmentRepo := commitmentRepoPkg.NewMongoCommitmentRepo()

	// Services.
	consumerService := &consumer.DefaultConsumerService{Repo: consumerRepo}
	providerService := &provider.DefaultProviderService{Repo: providerRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}

	var suggester suggestion.Suggester = &suggestion.DeterministicSuggester{}
	if config.AppConfig.SuggestionAIMode && config.AppConfig.GeminiAPIKey != "" {
		gemini, err := suggestion.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Warn("gemini unavailable, suggestions run deterministic only", zap.Error(err))
		} else {
			suggester = &suggestion.GenerativeSuggester{
				Client:   gemini,
				Fallback: &suggestion.DeterministicSuggester{},
			}
		}
	}

	suggestionService := &suggestion.DefaultSuggestionService{
		ConsumerRepo:   consumerRepo,
		ProviderRepo:   providerRepo,
		CatalogRepo:    catalogRepo,
		CommitmentRepo: commitmentRepo,
		Suggester:      suggester,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:        commitmentRepo,
		CatalogRepo: catalogRepo,
		Guard:       &booking.ConflictGuard{Repo: commitmentRepo},
	}

	var storageService storage.StorageService
	if svc, err := storage.NewCloudinaryStorage(); err != nil {
		logger.Warn("cloudinary unavailable, image uploads disabled", zap.Error(err))
	} else {
		storageService = svc
	}

	// Background workers.
	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker()

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	cron.StartExpirySweeper(sweepCtx, bookingService, 15*time.Minute)

	// Router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimit())

	suggestionCache := utils.GetSuggestionCacheClient()
	h := &routes.Handlers{
		ConsumerRepo: consumerRepo,
		ProviderRepo: providerRepo,
		Consumer:     handlers.NewConsumerHandler(consumerService),
		Provider:     handlers.NewProviderHandler(providerService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Suggestion:   handlers.NewSuggestionHandler(suggestionService, suggestionCache),
		Commitment:   handlers.NewCommitmentHandler(bookingService, suggestionCache, reminderScheduler),
		Admin:        handlers.NewAdminHandler(commitmentRepo),
		Storage:      handlers.NewStorageHandler(storageService),
	}
	routes.Register(router, h)

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
			logger.Sugar().Fatalf("server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shut down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("server is shutting down...")

	stopSweeper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("server stopped gracefully")
}
