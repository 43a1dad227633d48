// Command tracker-postprocessor is an external postprocessor for the video-analytics runtime.
// It assigns stable object identifiers to bounding boxes across frames of every device.
//
// Usage:
//
//	tracker-postprocessor [socket-path]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LdDl/mot-postprocessor/internal/config"
	"github.com/LdDl/mot-postprocessor/internal/logger"
	"github.com/LdDl/mot-postprocessor/internal/metrics"
	"github.com/LdDl/mot-postprocessor/mot"
	"github.com/LdDl/mot-postprocessor/plugin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting tracker postprocessor",
		zap.String("socket", cfg.SocketPath),
		zap.String("matcher", cfg.Matcher),
		zap.Int("max_misses", cfg.MaxMisses),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	matcher, err := mot.MatcherByName(cfg.Matcher)
	fatalOnErr(err, "select matcher")

	associator := mot.NewAssociator(
		mot.NewRegistry(),
		mot.WithMatcher(matcher),
		mot.WithEvictionPolicy(mot.EvictionByMaxMisses(cfg.MaxMisses)),
		mot.WithLogger(log.Named("mot")),
	)

	if cfg.MetricsPort > 0 {
		metricsSrv := metrics.StartServer(ctx, cfg.MetricsPort, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	server := plugin.NewServer(plugin.ServerConfig{
		SocketPath:     cfg.SocketPath,
		MaxConcurrent:  cfg.MaxConcurrent,
		MaxMessageSize: uint32(cfg.MaxMessageSize),
		IOTimeout:      cfg.IOTimeout,
	}, plugin.NewTrackerHandler(associator, log.Named("plugin")), log)
	defer server.Close()

	if err := server.Serve(ctx); err != nil {
		log.Error("postprocessor failed", zap.Error(err))
		return
	}
	log.Info("shutdown complete", zap.Int("devices", associator.Registry().Len()))
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
