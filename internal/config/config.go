// Package config содержит логику чтения конфигурации банкомата.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/mmeshcher/atm-terminal/internal/model"
)

// Значения по умолчанию повторяют демонстрационного клиента.
const (
	defaultCardID   = "4000-1234-5673-9010"
	defaultPIN      = 3404
	defaultAction   = "balance"
	defaultLogLevel = "info"
)

// Config содержит параметры одной сессии банкомата.
type Config struct {
	CardID   string `env:"CARD_ID" validate:"required"`
	PIN      int    `env:"PIN" validate:"gt=0"`
	Action   string `env:"ACTION" validate:"oneof=balance withdraw deposit topup-phone"`
	Amount   string `env:"AMOUNT"`
	Phone    string `env:"PHONE"`
	Payment  string `env:"PAYMENT" validate:"omitempty,oneof=cash deposit"`
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Непустые переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envCardID := cfg.CardID
	envPIN := cfg.PIN
	envAction := cfg.Action
	envAmount := cfg.Amount
	envPhone := cfg.Phone
	envPayment := cfg.Payment
	envLogLevel := cfg.LogLevel

	flag.StringVar(&cfg.CardID, "c", defaultCardID, "card number")
	flag.IntVar(&cfg.PIN, "p", defaultPIN, "card PIN")
	flag.StringVar(&cfg.Action, "o", defaultAction, "operation: balance, withdraw, deposit, topup-phone")
	flag.StringVar(&cfg.Amount, "m", "", "operation amount")
	flag.StringVar(&cfg.Phone, "t", "", "phone number for top-up")
	flag.StringVar(&cfg.Payment, "y", "", "top-up payment method: cash or deposit")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

	flag.Parse()

	if envCardID != "" {
		cfg.CardID = envCardID
	}
	if envPIN != 0 {
		cfg.PIN = envPIN
	}
	if envAction != "" {
		cfg.Action = envAction
	}
	if envAmount != "" {
		cfg.Amount = envAmount
	}
	if envPhone != "" {
		cfg.Phone = envPhone
	}
	if envPayment != "" {
		cfg.Payment = envPayment
	}
	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	cfg.Action = normalize(cfg.Action)
	cfg.Payment = normalize(cfg.Payment)
	cfg.LogLevel = normalize(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Request собирает из конфигурации запрос к банку.
func (c *Config) Request() (model.Request, error) {
	action, err := model.ParseAction(c.Action, c.Amount)
	if err != nil {
		return model.Request{}, fmt.Errorf("build action: %w", err)
	}

	payment, err := model.ParsePayment(c.Payment)
	if err != nil {
		return model.Request{}, fmt.Errorf("build payment: %w", err)
	}

	return model.Request{
		CardID:  c.CardID,
		PIN:     c.PIN,
		Action:  action,
		Phone:   c.Phone,
		Payment: payment,
	}, nil
}
