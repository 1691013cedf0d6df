package bootstrap

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"realestate-funnel-be/internal/config"
	"realestate-funnel-be/internal/controller"
	"realestate-funnel-be/internal/pkg/logger"
	"realestate-funnel-be/internal/pkg/mailer"
	"realestate-funnel-be/internal/pkg/serverutils"
	"realestate-funnel-be/internal/repository/memory"
	"realestate-funnel-be/internal/repository/unitofwork"
	"realestate-funnel-be/internal/service"
	pktNats "realestate-funnel-be/pkg/nats"
	"realestate-funnel-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TrackingController     controller.ITrackingController
	IntelligenceController controller.IIntelligenceController
	LeadController         controller.ILeadController
	HealthController       controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	RateLimiter     *serverutils.RateLimiter

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Println("[WARN] SMTP_HOST not set, lead notifications disabled")
	}

	// 2. Event Bus (in-process)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 1024},
		logger.NewWatermillAdapter(sysLogger, "PUBSUB"),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var bus service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		bus = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis
	rdb := store.NewRedisClient(cfg.App.RedisURL)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	cancel()
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	retention := time.Duration(cfg.Tracking.StatsRetention) * 24 * time.Hour
	counter := store.NewFunnelCounter(rdb, retention)

	// 4. Services
	linkCache := memory.NewSessionLinkCache()
	publisherService := service.NewPublisherService(cfg.Tracking.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Tracking.Topic,
		counter,
		bus,
		logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "fanout.log")),
	)

	trackingService := service.NewTrackingService(uowFactory, publisherService, linkCache, cfg.Tracking.IPHashSalt, sysLogger)
	intelligenceService := service.NewIntelligenceService(uowFactory, linkCache, sysLogger)
	leadService := service.NewLeadService(uowFactory, linkCache, emailService, cfg.Tracking.SalesInbox, bus, sysLogger)
	statsService := service.NewStatsService(counter)

	// 5. Middleware
	c.RateLimiter = serverutils.NewRateLimiter(cfg.Tracking.RateLimitRPS, cfg.Tracking.RateLimitBurst)
	limiter := c.RateLimiter.Middleware()
	auth := serverutils.JwtMiddleware(cfg.Auth.JWTSecret)
	if cfg.Auth.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET not set, reporting routes will reject every request")
	}

	// 6. Controllers
	c.TrackingController = controller.NewTrackingController(trackingService, statsService, limiter, auth)
	c.IntelligenceController = controller.NewIntelligenceController(intelligenceService, limiter)
	c.LeadController = controller.NewLeadController(leadService, trackingService, limiter, auth)
	c.HealthController = controller.NewHealthController(
		map[string]controller.HealthCheck{"database": databaseCheck(db)},
		map[string]controller.HealthCheck{"redis": redisCheck(rdb)},
	)

	return c
}

// Close releases bus and cache connections and flushes the logger.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func databaseCheck(db *gorm.DB) controller.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func redisCheck(rdb *redis.Client) controller.HealthCheck {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
