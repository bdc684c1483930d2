package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/atm-terminal/internal/model"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		cardID   string
		pin      int
		action   string
		amount   string
		phone    string
		payment  string
		logLevel string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				cardID:   "4000-1234-5673-9010",
				pin:      3404,
				action:   "balance",
				logLevel: "info",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"CARD_ID":   "1111-2222",
				"PIN":       "1234",
				"ACTION":    "topup-phone",
				"AMOUNT":    "100",
				"PHONE":     "+7(998)876-34-21",
				"PAYMENT":   "deposit",
				"LOG_LEVEL": "debug",
			},
			flags: []string{},
			want: want{
				cardID:   "1111-2222",
				pin:      1234,
				action:   "topup-phone",
				amount:   "100",
				phone:    "+7(998)876-34-21",
				payment:  "deposit",
				logLevel: "debug",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-c", "3333-4444",
				"-p", "4321",
				"-o", "withdraw",
				"-m", "3000",
				"-l", "warn",
			},
			want: want{
				cardID:   "3333-4444",
				pin:      4321,
				action:   "withdraw",
				amount:   "3000",
				logLevel: "warn",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"PIN":     "9999",
				"ACTION":  "deposit",
				"PAYMENT": "cash",
			},
			flags: []string{
				"-p", "1111",
				"-o", "withdraw",
				"-m", "50",
				"-y", "deposit",
			},
			want: want{
				cardID:   "4000-1234-5673-9010",
				pin:      9999,
				action:   "deposit",
				amount:   "50",
				payment:  "cash",
				logLevel: "info",
			},
		},
		{
			name: "names are case insensitive",
			env: map[string]string{
				"ACTION":  "Withdraw",
				"PAYMENT": " CASH ",
			},
			flags: []string{"-m", "10", "-l", "DEBUG"},
			want: want{
				cardID:   "4000-1234-5673-9010",
				pin:      3404,
				action:   "withdraw",
				amount:   "10",
				payment:  "cash",
				logLevel: "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.cardID, cfg.CardID)
			assert.Equal(t, tt.want.pin, cfg.PIN)
			assert.Equal(t, tt.want.action, cfg.Action)
			assert.Equal(t, tt.want.amount, cfg.Amount)
			assert.Equal(t, tt.want.phone, cfg.Phone)
			assert.Equal(t, tt.want.payment, cfg.Payment)
			assert.Equal(t, tt.want.logLevel, cfg.LogLevel)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
	}{
		{name: "unknown action", flags: []string{"-o", "transfer"}},
		{name: "unknown payment", flags: []string{"-y", "card"}},
		{name: "unknown log level", flags: []string{"-l", "verbose"}},
		{name: "non-positive pin", flags: []string{"-p", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
			os.Args = append([]string{"test"}, tt.flags...)

			_, err := Parse()
			require.Error(t, err)
		})
	}
}

func TestConfigRequest(t *testing.T) {
	cfg := &Config{
		CardID:  "4000-1234-5673-9010",
		PIN:     3404,
		Action:  "topup-phone",
		Amount:  "100",
		Phone:   "+7(998)876-34-21",
		Payment: "deposit",
	}

	req, err := cfg.Request()
	require.NoError(t, err)

	assert.Equal(t, model.ActionTopUpPhone, req.Action.Kind())
	assert.Equal(t, "100", req.Action.Amount().String())
	method, ok := req.Payment.Get()
	require.True(t, ok)
	assert.Equal(t, model.PaymentDeposit, method)

	cfg.Amount = "-5"
	_, err = cfg.Request()
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)
}
