package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/pkg/logger"
	"github.com/Astemirdum/shareit/pkg/metrics"
	"github.com/Astemirdum/shareit/pkg/postgres"
	"github.com/Astemirdum/shareit/server/config"
	"github.com/Astemirdum/shareit/server/internal/cache"
	"github.com/Astemirdum/shareit/server/internal/events"
	"github.com/Astemirdum/shareit/server/internal/handler"
	"github.com/Astemirdum/shareit/server/internal/repository"
	"github.com/Astemirdum/shareit/server/internal/server"
	"github.com/Astemirdum/shareit/server/internal/service"
	"github.com/Astemirdum/shareit/server/migrations"
)

type eventPublisher interface {
	service.EventPublisher
	Close() error
}

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "server")
	metrics.Register()

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo := repository.NewRepository(db, log)

	var userCache service.UserCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		client := cache.NewRedisClient(cfg.Redis)
		defer client.Close()
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, user cache disabled", zap.Error(err))
		} else {
			userCache = cache.NewUserCache(client, cfg.Redis.TTL)
		}
	}

	var publisher eventPublisher = events.Noop{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		publisher = events.NewPublisher(producer, cfg.Kafka.Topic)
	}

	svc := service.NewService(repo, userCache, publisher, log)
	h := handler.New(svc, svc, svc, svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = publisher.Close(); err != nil {
		log.Error("publisher.Close", zap.Error(err))
	}
	_ = db.Close()
	log.Info("Graceful shutdown finished")
}
