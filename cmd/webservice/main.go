package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/config"
	"github.com/nourishnet/ordering-service/internal/controller"
	circuitbreaker "github.com/nourishnet/ordering-service/internal/infrastructure/circuit-breaker"
	"github.com/nourishnet/ordering-service/internal/infrastructure/database/postgres"
	"github.com/nourishnet/ordering-service/internal/infrastructure/mailer"
	"github.com/nourishnet/ordering-service/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/nourishnet/ordering-service/internal/infrastructure/payment-gateway"
	"github.com/nourishnet/ordering-service/internal/infrastructure/tracing"
	localmiddleware "github.com/nourishnet/ordering-service/internal/middleware"
	"github.com/nourishnet/ordering-service/internal/repository"
	"github.com/nourishnet/ordering-service/internal/service"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	kafkaProducer := kafka.CreateKafkaProducer(config)

	db, err := postgres.GetDBInstance(config)
	if err != nil {
		panic(err)
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("ordering-service")

	e := echo.New()
	g := e.Group("/api")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	authed := g.Group("", localmiddleware.Session(config.JWTSecret))

	cb := circuitbreaker.CreateCircuitBreaker("daraja")
	darajaClient := paymentgateway.CreateDarajaClient(config, cb)
	receiptMailer := mailer.CreateMailer(config)

	userRepo := repository.CreateUserRepository(db)
	catalogRepo := repository.CreateCatalogRepository(db)
	cartRepo := repository.CreateCartRepository(db)
	orderRepo := repository.CreateOrderRepository(db)
	paymentRepo := repository.CreatePaymentRepository(db)

	userSvc := service.CreateUserService(userRepo, config)
	catalogSvc := service.CreateCatalogService(catalogRepo)
	cartSvc := service.CreateCartService(cartRepo, catalogRepo)
	orderSvc := service.CreateOrderService(orderRepo, catalogRepo, cartRepo, kafkaProducer)
	paymentSvc := service.CreatePaymentService(paymentRepo, userRepo, darajaClient, receiptMailer, kafkaProducer, config)

	controller.CreateUserController(g, authed, userSvc, config)
	controller.CreateCatalogController(g, authed, catalogSvc)
	controller.CreateCartController(authed, cartSvc)
	controller.CreateOrderController(authed, orderSvc)
	controller.CreatePaymentController(g, authed, paymentSvc)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			2*time.Minute,
		),
		gocron.NewTask(
			paymentSvc.ReconcileStalePushRequests,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
