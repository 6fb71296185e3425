package main

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/austcms/clubpay/internal/pkg/config"
	"github.com/austcms/clubpay/internal/pkg/database"
	"github.com/austcms/clubpay/internal/pkg/health"
	"github.com/austcms/clubpay/internal/pkg/logger"
	"github.com/austcms/clubpay/internal/pkg/middleware"
	nsqpkg "github.com/austcms/clubpay/internal/pkg/nsq"
	"github.com/austcms/clubpay/internal/pkg/server"
	clubHandler "github.com/austcms/clubpay/services/club/handler"
	clubRepo "github.com/austcms/clubpay/services/club/repository"
	"github.com/austcms/clubpay/services/payment/gateway"
	"github.com/austcms/clubpay/services/payment/handler"
	httpHandler "github.com/austcms/clubpay/services/payment/handler/http"
	paymentRepo "github.com/austcms/clubpay/services/payment/repository"
	"github.com/austcms/clubpay/services/payment/usecase"
	userRepo "github.com/austcms/clubpay/services/user/repository"
)

const serviceName = "clubpay-api"

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to nsqd", logger.Err(err))
	}
	defer producer.Stop()

	db := pgClient.GetDB()

	transactions := paymentRepo.NewPaymentRepo(cfg, db)
	users := userRepo.NewUserRepo(cfg, db)
	clubs := clubRepo.NewClubRepo(cfg, db, redisClient)

	gw := gateway.NewPaymentGW(cfg)
	events := gateway.NewEventPublisher(producer)
	mailer := gateway.NewSMTPMailer(cfg.SMTP)

	paymentUC := usecase.NewPaymentUC(cfg, transactions, users, clubs, gw, events, mailer)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.CORSMiddleware(cfg.CORS))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)

	paymentHandlers := handler.NewHandler(httpHandler.NewPaymentHandler(paymentUC, cfg), cfg)
	paymentHandlers.RegisterRoutes(e)

	clubHandlers := clubHandler.NewClubHandler(clubs, cfg)
	clubHandlers.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger,
		cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
