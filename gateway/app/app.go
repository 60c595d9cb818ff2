package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/gateway/config"
	"github.com/Astemirdum/shareit/gateway/internal/client"
	"github.com/Astemirdum/shareit/gateway/internal/handler"
	"github.com/Astemirdum/shareit/gateway/internal/server"
	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	"github.com/Astemirdum/shareit/pkg/logger"
	"github.com/Astemirdum/shareit/pkg/metrics"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "gateway")
	metrics.Register()

	cl := client.New(log, cfg.ShareitServer, circuit_breaker.New(cfg.CircuitBreaker))
	h := handler.New(cl, cl, cl, cl, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("upstream",
			net.JoinHostPort(cfg.ShareitServer.Host, cfg.ShareitServer.Port)))
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

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
