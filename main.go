package main

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanksha/car-rental-booking-backend/account"
	"github.com/hanksha/car-rental-booking-backend/announcement"
	"github.com/hanksha/car-rental-booking-backend/api"
	bk "github.com/hanksha/car-rental-booking-backend/booking"
	"github.com/hanksha/car-rental-booking-backend/config"
	"github.com/hanksha/car-rental-booking-backend/notification"
	"github.com/hanksha/car-rental-booking-backend/presence"
	"github.com/hanksha/car-rental-booking-backend/push"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	_, err = pool.Exec(ctx, setupSQL)
	if err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	} else {
		logger.Info("initialized database tables")
	}

	if len(cfg.VAPIDPrivateKey) == 0 || len(cfg.VAPIDPublicKey) == 0 {
		private, public, err := push.GenerateVAPIDKeys()

		if err != nil {
			logger.Error("failed to generate VAPID keys", "err", err)
			os.Exit(1)
		}

		cfg.VAPIDPrivateKey, cfg.VAPIDPublicKey = private, public
		logger.Warn("VAPID keys not configured, generated ephemeral keys; existing subscriptions will stop working on restart", "publicKey", public)
	}

	// realtime + push

	registry := presence.NewRegistry()
	defer registry.Close()

	pushRepo := push.NewRepository(pool)
	sender := push.NewWebPushSender(push.VAPIDConfig{
		PublicKey:  cfg.VAPIDPublicKey,
		PrivateKey: cfg.VAPIDPrivateKey,
		Subscriber: cfg.VAPIDSubscriber,
		TTL:        cfg.PushTTL,
	}, &http.Client{Timeout: cfg.PushTimeout})
	pushService := push.NewService(sender, pushRepo, cfg.PushTimeout)

	// accounts + notifications

	accountRepo := account.NewRepository(pool)
	staffDirectory := account.NewStaffDirectory(accountRepo, cfg.StaffCacheTTL)

	notificationRepo := notification.NewRepository(pool)
	dispatcher := notification.NewDispatcher(notificationRepo, registry, pushService, staffDirectory)

	// bookings

	bookingRepo := bk.NewRepository(pool)
	bookingService := bk.NewService(bookingRepo, accountRepo, dispatcher, bk.NewPgLocker(pool, cfg.BookingLockTimeout), bk.Options{
		CancelWindow:        cfg.CancelWindow,
		AvailabilityWindow:  cfg.AvailabilityWindow,
		NotifyStaffOnCancel: cfg.CancelNotifiesStaff,
	})

	// announcements

	var guard announcement.Guard = announcement.LocalGuard{}

	if len(cfg.RedisAddr) != 0 {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, announcement guard is process local", "addr", cfg.RedisAddr, "err", err)
		} else {
			guard = announcement.NewRedisGuard(rdb)
			logger.Info("connected to redis", "addr", cfg.RedisAddr)
		}
	}

	announcementEngine := announcement.NewEngine(announcement.NewRepository(pool), pushRepo, pushService, guard, announcement.Options{
		Tick:     cfg.AnnouncementTick,
		Location: cfg.Location,
	})

	go announcementEngine.Run(ctx)

	// HTTP

	verifier, err := api.NewTokenVerifier(cfg.JWTSecret)
	if err != nil {
		logger.Error("JWT_SECRET is required", "err", err)
		os.Exit(1)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}

	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.NewSocketHandler(registry, verifier, cfg.SocketPongWait).Register(r)

	v1 := r.Group("/api/v1")
	v1.Use(api.JWTAuth(verifier))

	bookingHandler := api.NewBookingHandler(bookingService)
	bookingHandler.Register(v1.Group("/bookings"))
	bookingHandler.RegisterCars(v1.Group("/cars"))

	api.NewNotificationHandler(dispatcher).Register(v1.Group("/notifications"))
	api.NewPushHandler(pushService, sender.PublicKey()).Register(v1.Group("/push"))
	api.NewAccountHandler(staffDirectory).Register(v1.Group("/account"))
	api.NewAnnouncementHandler(announcementEngine).Register(v1.Group("/announcements"))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", "err", err)
	}

	bookingService.Drain()
}
