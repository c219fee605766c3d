package main

import (
	"context"
	"runtime"

	"github.com/lintang-b-s/rankmatch/pkg/http"
	"github.com/lintang-b-s/rankmatch/pkg/http/usecases"
	"github.com/lintang-b-s/rankmatch/pkg/logger"
	"github.com/lintang-b-s/rankmatch/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	viper.SetDefault("BATCH_WORKERS", runtime.NumCPU())
	viper.SetDefault("MATCHING_VALIDATE", false)

	matchingService := usecases.NewMatchingService(logger, viper.GetBool("MATCHING_VALIDATE"),
		viper.GetInt("BATCH_WORKERS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, matchingService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("rankmatch server stopped", zap.String("signal", signal.String()))
	cleanup()
	_ = api.Wait()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
