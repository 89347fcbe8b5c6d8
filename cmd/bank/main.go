package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/adapter/in/httpview"
	"github.com/JoeShih716/go-mini-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mini-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mini-bank/internal/fixture"
	"github.com/JoeShih716/go-mini-bank/pkg/clock"
	"github.com/JoeShih716/go-mini-bank/pkg/logging"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Seed bool `yaml:"seed"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	logger := logging.New(cfg.Log.Level, os.Stdout)

	// 2. 初始化 out adapters (in-memory repository + transaction log)
	accounts := memory.NewAccountRepository()
	txlog := memory.NewTransactionLog()

	// 3. 初始化 UseCase
	service := usecase.NewOperationService(accounts, txlog, clock.System{}, logger)

	ctx := context.Background()
	if cfg.Seed {
		numbers := fixture.Seed(ctx, accounts)
		logger.Info().Strs("accounts", numbers).Msg("seeded demo accounts")
	}

	// 4. 初始化 read-only view adapter (Driving Adapter)
	gin.SetMode(gin.ReleaseMode)
	view := httpview.NewServer(accounts, service, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: view.Router(),
	}

	// 5. 啟動 HTTP Server
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting view server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
	logger.Info().Msg("server exited")
}

func loadConfig() Config {
	var cfg Config
	// 預設配置 (如果 yaml 沒寫)
	cfg.Server.Addr = ":8080"
	cfg.Log.Level = "info"
	cfg.Seed = true

	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		// 沒有設定檔時使用預設值
		return cfg
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg
}
