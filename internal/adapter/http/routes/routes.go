package routes

import (
	"context"

	_ "seguros_xpto/docs" // This will be auto-generated
	request "seguros_xpto/internal/adapter/http/dto/request"
	"seguros_xpto/internal/adapter/http/handlers"
	"seguros_xpto/internal/adapter/http/middleware"
	repository2 "seguros_xpto/internal/adapter/persistence/repository"
	"seguros_xpto/internal/infrastructure/branding"
	"seguros_xpto/internal/infrastructure/cache"
	"seguros_xpto/internal/infrastructure/config"
	"seguros_xpto/internal/infrastructure/database"
	"seguros_xpto/internal/infrastructure/events"
	"seguros_xpto/internal/infrastructure/export"
	"seguros_xpto/internal/infrastructure/idempotency"
	"seguros_xpto/internal/infrastructure/logger"
	"seguros_xpto/internal/infrastructure/metrics"
	"seguros_xpto/internal/infrastructure/notification"
	"seguros_xpto/internal/infrastructure/storage"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router *gin.Engine

// Run will start the server
func Run() {
	cfg := config.FromEnv()
	gin.SetMode(cfg.GinMode)

	appLogger := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		File:        cfg.LogFile,
	})
	defer func() { _ = appLogger.Sync() }()

	if err := request.RegisterGinValidators(); err != nil {
		appLogger.Fatal("[routes] failed to register validators", zap.Error(err))
	}

	brands, err := branding.Load(cfg.BrandsFile)
	if err != nil {
		appLogger.Fatal("[routes] failed to load brand table", zap.Error(err))
	}

	recorder := metrics.New(prometheus.DefaultRegisterer)

	router = gin.New()
	router.MaxMultipartMemory = 8 << 20
	setMiddlewares(appLogger, recorder, brands, middleware.NewTokenVerifier(cfg.JWTSecret))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg, appLogger, recorder)

	appLogger.Info("[routes] starting http server", zap.String("port", cfg.HTTPPort))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		appLogger.Fatal("[routes] failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg config.Config, appLogger *zap.Logger, recorder *metrics.Recorder) {
	ctx := context.Background()

	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		appLogger.Fatal("[routes] failed to load aws config", zap.Error(err))
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDBEndpoint, appLogger)
	documents := storage.NewFromClient(storage.NewS3Client(awsCfg, cfg.S3Endpoint), cfg.DocumentsBucket, appLogger)

	// Redis is optional: without it there is no duplicate guard and list
	// observers run in degraded mode.
	var (
		feed  interfaces.IChangeFeed
		guard interfaces.IDuplicateGuard
	)
	redisClient, err := cache.NewRedisClient(cfg.RedisURL, appLogger)
	if err != nil {
		appLogger.Warn("[routes] redis unavailable, continuing without change feed", zap.Error(err))
	} else if redisClient != nil {
		feed = events.NewRedisChangeFeed(redisClient, appLogger)
		guard = idempotency.NewRedisGuard(redisClient)
	}

	var notifier interfaces.INotifier
	dispatcher, err := notification.NewEmailDispatcher(notification.Options{
		APIURL:   cfg.EmailAPIURL,
		APIKey:   cfg.EmailAPIKey,
		From:     cfg.EmailFrom,
		MockMode: cfg.NotificationMock,
	}, appLogger)
	if err != nil {
		appLogger.Warn("[routes] email dispatcher not configured", zap.Error(err))
	} else {
		notifier = dispatcher
	}

	simulationRepo := repository2.NewSimulationDynamoRepository(ddb, cfg.SimulationsTable)
	policyRepo := repository2.NewPolicyDynamoRepository(ddb, cfg.PoliciesTable)

	attachmentUseCase := usecase.NewAttachmentUseCase(simulationRepo, policyRepo, documents, notifier, guard, feed, recorder, appLogger).
		WithPresignTTL(cfg.PresignTTL)
	simulationUseCase := usecase.NewSimulationUseCase(simulationRepo, attachmentUseCase, feed, recorder, appLogger)
	policyUseCase := usecase.NewPolicyUseCase(policyRepo, simulationRepo, guard, feed, recorder, appLogger)
	listObserver := usecase.NewListObserver(simulationUseCase, policyUseCase, feed, recorder, appLogger)
	exportUseCase := usecase.NewExportUseCase(policyRepo, simulationRepo, export.NewPolicyXLSXExporter(), appLogger)

	simulationHandler := handlers.NewSimulationHandler(simulationUseCase)
	policyHandler := handlers.NewPolicyHandler(policyUseCase)
	documentHandler := handlers.NewDocumentHandler(attachmentUseCase)
	watchHandler := handlers.NewWatchHandler(listObserver)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSimulationRoutes(v1, simulationHandler, policyHandler, documentHandler, watchHandler)
	addPolicyRoutes(v1, policyHandler, documentHandler, watchHandler)
	addAdminRoutes(v1, exportHandler)

	appLogger.Info("[routes] lifecycle routes registered",
		zap.Bool("change_feed", feed != nil),
		zap.Bool("duplicate_guard", guard != nil))
}

func setMiddlewares(appLogger *zap.Logger, recorder *metrics.Recorder, brands *branding.Resolver, verifier *middleware.TokenVerifier) {
	router.Use(middlewareChain(appLogger, recorder, brands, verifier)...)
}

// middlewareChain lists the global middlewares in registration order.
// Recovery comes first so a panic in any later middleware becomes a 500.
func middlewareChain(appLogger *zap.Logger, recorder *metrics.Recorder, brands *branding.Resolver, verifier *middleware.TokenVerifier) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.Recovery(appLogger),
		middleware.RequestContext(brands),
		middleware.Authenticate(verifier),
		middleware.Metrics(recorder),
		middleware.AccessLog(appLogger),
	}
}
