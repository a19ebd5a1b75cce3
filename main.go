package main

import (
	"fmt"
	"os"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"attention-engine/internal/clock"
	"attention-engine/internal/config"
	"attention-engine/internal/engine"
	"attention-engine/internal/handler"
	"attention-engine/internal/policyregistry"
	"attention-engine/internal/refresh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	eng := engine.New(clock.System{})
	limits := policyregistry.New(cfg.PolicyRegistryURL)
	runner := refresh.NewRunner(eng, limits, logger)
	h := handler.New(eng, runner, limits, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("attention engine starting",
		zap.String("addr", addr),
		zap.Bool("policy_registry", cfg.PolicyRegistryURL != ""))
	if err := fasthttp.ListenAndServe(addr, h.Handle); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
