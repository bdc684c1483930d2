// Package main проводит одну сессию банкомата с демонстрационным клиентом.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mmeshcher/atm-terminal/internal/bank"
	"github.com/mmeshcher/atm-terminal/internal/config"
	"github.com/mmeshcher/atm-terminal/internal/model"
	"github.com/mmeshcher/atm-terminal/internal/repository"
	"github.com/mmeshcher/atm-terminal/internal/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	zcfg := zap.NewProductionConfig()
	logger, _ := zcfg.Build()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Errorw("configuration error", "error", err.Error())
		return 2
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		sugar.Errorw("log level error", "error", err.Error())
		return 2
	}
	zcfg.Level.SetLevel(level)

	req, err := cfg.Request()
	if err != nil {
		sugar.Errorw("request error", "error", err.Error())
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := repository.NewMemoryRepository()
	if err := seedDemoAccount(ctx, repo); err != nil {
		sugar.Errorw("account initialization error", "error", err.Error())
		return 1
	}

	srv := bank.NewServer(repo, logger)

	atm := terminal.New(ctx, srv, req, logger)
	res, err := atm.Result()
	if err != nil {
		sugar.Errorw("session terminated with error", "error", err)
		return 1
	}

	if err := terminal.Render(os.Stdout, res); err != nil {
		sugar.Errorw("render error", "error", err)
		return 1
	}

	if !res.OK() {
		return 1
	}
	return 0
}

func seedDemoAccount(ctx context.Context, repo *repository.MemoryRepository) error {
	acc, err := model.NewAccount(model.AccountParams{
		Name:         "Стив Джобс",
		CardID:       "4000-1234-5673-9010",
		PIN:          3404,
		Cash:         decimal.RequireFromString("290.45"),
		Deposit:      decimal.RequireFromString("2567.20"),
		Phone:        "+7(998)876-34-21",
		PhoneBalance: decimal.RequireFromString("15.22"),
	})
	if err != nil {
		return err
	}
	return repo.AddAccount(ctx, acc)
}
