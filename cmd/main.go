package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	campaignapp "github.com/muhammadheryan/fulfillment/application/campaign"
	claimapp "github.com/muhammadheryan/fulfillment/application/claim"
	notificationapp "github.com/muhammadheryan/fulfillment/application/notification"
	"github.com/muhammadheryan/fulfillment/application/reconcile"
	restockapp "github.com/muhammadheryan/fulfillment/application/restock"
	shipmentapp "github.com/muhammadheryan/fulfillment/application/shipment"
	skuapp "github.com/muhammadheryan/fulfillment/application/sku"
	"github.com/muhammadheryan/fulfillment/application/stockgate"
	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	warehouseapp "github.com/muhammadheryan/fulfillment/application/warehouse"
	"github.com/muhammadheryan/fulfillment/cmd/config"
	redisclient "github.com/muhammadheryan/fulfillment/cmd/redis"
	_ "github.com/muhammadheryan/fulfillment/docs"
	alertRepo "github.com/muhammadheryan/fulfillment/repository/alert"
	campaignRepo "github.com/muhammadheryan/fulfillment/repository/campaign"
	claimRepo "github.com/muhammadheryan/fulfillment/repository/claim"
	ledgerRepo "github.com/muhammadheryan/fulfillment/repository/ledger"
	notificationRepo "github.com/muhammadheryan/fulfillment/repository/notification"
	redisRepo "github.com/muhammadheryan/fulfillment/repository/redis"
	shipmentRepo "github.com/muhammadheryan/fulfillment/repository/shipment"
	skuRepo "github.com/muhammadheryan/fulfillment/repository/sku"
	txRepo "github.com/muhammadheryan/fulfillment/repository/tx"
	userRepo "github.com/muhammadheryan/fulfillment/repository/user"
	warehouseRepo "github.com/muhammadheryan/fulfillment/repository/warehouse"
	"github.com/muhammadheryan/fulfillment/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fulfillment/thirdparty/webhook"
	"github.com/muhammadheryan/fulfillment/transport"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

// @title FULFILLMENT API
// @version 1.0
// @description Shipment, inventory and campaign fulfillment API
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	rdb, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Mail.APIURL, cfg.Mail.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start campaign mail consumer", zap.Error(err))
	}

	// Initialize repositories
	SKURepo := skuRepo.NewSKURepository(db)
	CampaignRepo := campaignRepo.NewCampaignRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb, cfg.Redis.KeyPrefix)
	repos := unitofwork.Repositories{
		SKU:          SKURepo,
		Shipment:     shipmentRepo.NewShipmentRepository(db),
		Campaign:     CampaignRepo,
		Claim:        claimRepo.NewClaimRepository(db),
		User:         userRepo.NewUserRepository(db),
		Warehouse:    warehouseRepo.NewWarehouseRepository(db),
		Ledger:       ledgerRepo.NewLedgerRepository(db),
		Alert:        alertRepo.NewAlertRepository(db),
		Notification: notificationRepo.NewNotificationRepository(db),
	}

	// Initialize the fulfillment engine
	location := cfg.Location()
	builder := notificationapp.NewBuilder(location)
	reconciler := reconcile.New(builder, builder, webhook.NewClient(cfg.Webhook.Timeout))
	gate := stockgate.New(campaignapp.NewActivationMailer(RedisRepo, publisher, cfg.Campaign.MailDedupTTL))
	uow := unitofwork.NewManager(txRepo.NewTxRepository(db), repos, reconciler, gate, location)

	// Initialize application layers
	RestockApp := restockapp.NewRestockApp(uow, CampaignRepo)
	httpTransport := transport.NewTransport(&transport.RestHandler{
		ShipmentApp:  shipmentapp.NewShipmentApp(uow),
		CampaignApp:  campaignapp.NewCampaignApp(uow),
		ClaimApp:     claimapp.NewClaimApp(uow),
		WarehouseApp: warehouseapp.NewWarehouseApp(uow),
		RestockApp:   RestockApp,
		SKUApp:       skuapp.NewSKUApp(SKURepo),
	})

	restockapp.NewWorker(RestockApp, redisclient.NewLocker(rdb), cfg.Restock.SweepInterval, cfg.Restock.LockTTL).Start(ctx)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}
