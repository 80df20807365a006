package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/controller"
	"github.com/Humayun167/green-nest/internal/infrastructure/storage"
	"github.com/Humayun167/green-nest/internal/infrastructure/tracing"
	localmiddleware "github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/Humayun167/green-nest/pkg/validator"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/sdk/trace"
	"gocloud.dev/blob"
	"golang.org/x/time/rate"
)

const serviceName = "green-nest"

// App holds the process wide dependencies. Optional collaborators are left
// nil when they are not configured.
type App struct {
	Config   *config.Config
	DB       *mongo.Database
	Bucket   *blob.Bucket
	Redis    *redis.Client
	Producer service.EventPublisher
	Reader   service.MessageReader
	Gateway  service.PaymentGateway
	Mailer   service.Mailer

	Server        *echo.Echo
	scheduler     gocron.Scheduler
	traceProvider *trace.TracerProvider
	cancel        context.CancelFunc
}

func (app *App) Start() error {
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, serviceName)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	app.traceProvider = traceProvider

	tracer := traceProvider.Tracer(serviceName)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.NewValidator()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			c.JSON(he.Code, response.ErrorResponse{Success: false, Message: fmt.Sprint(he.Message)})
			return
		}

		response.WriteErrorResponse(c, err, nil)
	}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     app.Config.CORSConfig.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("25M"))

	if dir, ok := storage.LocalDirectory(app.Config.StorageConfig.BucketURL); ok {
		e.Static("/uploads", dir)
	}

	e.GET("/", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "API is working", nil)
	})

	authLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(10)))
	auth := localmiddleware.CreateAuthenticator(app.Config)

	var searchRepo repository.ProductSearchRepository
	if app.Config.SearchConfig.ElasticsearchHost != "" {
		searchRepo = repository.CreateNewElasticSearchRepository(app.Config)
	}

	productRepo := repository.CreateNewMongoDBProductRepository(app.DB)
	if app.Redis != nil {
		productRepo = repository.CreateNewCachedProductRepository(productRepo, app.Redis, app.Config.RedisConfig.TTL)
	}

	userRepo := repository.CreateNewMongoDBUserRepository(app.DB)
	orderRepo := repository.CreateNewMongoDBOrderRepository(app.DB)
	addressRepo := repository.CreateNewMongoDBAddressRepository(app.DB)
	postRepo := repository.CreateNewMongoDBPostRepository(app.DB)
	requestRepo := repository.CreateNewMongoDBUserProductRequestRepository(app.DB)
	imageRepo := repository.CreateNewBlobImageRepository(app.Bucket, app.Config.StorageConfig.PublicBaseURL)
	trxManager := repository.CreateNewMongoDBTransactionManager(app.DB)

	userSvc := service.CreateUserService(userRepo, orderRepo, imageRepo, app.Config)
	sellerSvc := service.CreateSellerService(app.Config)
	productSvc := service.CreateProductService(productRepo, searchRepo, imageRepo, app.Producer)
	addressSvc := service.CreateAddressService(addressRepo)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, addressRepo, userRepo, app.Gateway, app.Producer, app.Config)
	postSvc := service.CreatePostService(postRepo, userRepo, imageRepo)
	requestSvc := service.CreateUserProductRequestService(requestRepo, productRepo, userRepo, searchRepo, imageRepo, trxManager, app.Producer)
	notificationSvc := service.CreateNotificationService(app.Reader, app.Mailer)

	api := e.Group("/api")
	controller.CreateUserController(api.Group("/user"), userSvc, auth, authLimiter)
	controller.CreateSellerController(api.Group("/seller"), sellerSvc, userSvc, auth, authLimiter)
	controller.CreateProductController(api.Group("/product"), productSvc, auth)
	controller.CreateCartController(api.Group("/cart"), userSvc, auth)
	controller.CreateAddressController(api.Group("/address"), addressSvc, auth)
	controller.CreateOrderController(api.Group("/order"), orderSvc, auth)
	controller.CreatePostController(api.Group("/post"), postSvc, auth)
	controller.CreateUserProductRequestController(api.Group("/user-product-request"), requestSvc, auth)

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	app.scheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(
			time.Minute,
		),
		gocron.NewTask(
			orderSvc.ExpireUnpaidOrders,
		),
	)
	if err != nil {
		return fmt.Errorf("scheduling order expiry: %w", err)
	}

	if searchRepo != nil {
		_, err = s.NewJob(
			gocron.DurationJob(
				time.Hour,
			),
			gocron.NewTask(
				productSvc.ReindexProducts,
			),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			return fmt.Errorf("scheduling reindex: %w", err)
		}
	}

	s.Start()

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel
	go notificationSvc.ConsumeEvents(ctx)

	app.Server = e

	err = e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.cancel != nil {
		app.cancel()
	}

	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}

	if app.traceProvider != nil {
		if err := app.traceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}

	if app.Server == nil {
		return nil
	}

	return app.Server.Shutdown(ctx)
}
