package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		amount     string
		wantKind   ActionKind
		wantAmount string
		wantErr    error
	}{
		{
			name:     "balance ignores amount",
			action:   "balance",
			amount:   "garbage",
			wantKind: ActionInquireBalance,
		},
		{
			name:       "withdraw",
			action:     "withdraw",
			amount:     "3000",
			wantKind:   ActionWithdrawFromDeposit,
			wantAmount: "3000",
		},
		{
			name:       "deposit with spaces and case",
			action:     " Deposit ",
			amount:     " 12.5 ",
			wantKind:   ActionDepositCash,
			wantAmount: "12.5",
		},
		{
			name:       "phone top-up",
			action:     "topup-phone",
			amount:     "100",
			wantKind:   ActionTopUpPhone,
			wantAmount: "100",
		},
		{
			name:    "zero amount",
			action:  "withdraw",
			amount:  "0",
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			action:  "topup-phone",
			amount:  "-1",
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:       "trailing zeros beyond kopecks",
			action:     "withdraw",
			amount:     "10.500",
			wantKind:   ActionWithdrawFromDeposit,
			wantAmount: "10.5",
		},
		{
			name:    "fraction of a kopeck",
			action:  "withdraw",
			amount:  "0.001",
			wantErr: ErrAmountPrecision,
		},
		{
			name:    "unknown action",
			action:  "transfer",
			amount:  "1",
			wantErr: ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAction(tt.action, tt.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, a.Kind())
			if tt.wantAmount != "" {
				assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(a.Amount()))
			}
		})
	}
}

func TestParseAction_BadAmount(t *testing.T) {
	_, err := ParseAction("deposit", "ten")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNonPositiveAmount))
}

func TestParsePayment(t *testing.T) {
	tests := []struct {
		in      string
		want    PaymentMethod
		present bool
		wantErr bool
	}{
		{in: "", present: false},
		{in: "cash", want: PaymentCash, present: true},
		{in: "DEPOSIT", want: PaymentDeposit, present: true},
		{in: "card", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePayment(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPaymentMethod)
				return
			}
			require.NoError(t, err)
			m, ok := p.Get()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestReasonIsError(t *testing.T) {
	res := &Result{Status: StatusError, Reason: ReasonWrongPhoneNumber}

	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err(), ReasonWrongPhoneNumber)
	assert.EqualError(t, res.Err(), "Неверный номер телефона")

	ok := &Result{Status: StatusSuccess}
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())
}

func TestAmountConstructors(t *testing.T) {
	constructors := map[ActionKind]func(decimal.Decimal) (Action, error){
		ActionWithdrawFromDeposit: WithdrawFromDeposit,
		ActionDepositCash:         DepositCash,
		ActionTopUpPhone:          TopUpPhone,
	}

	for kind, build := range constructors {
		t.Run(kind.String(), func(t *testing.T) {
			a, err := build(decimal.NewFromInt(100))
			require.NoError(t, err)
			assert.Equal(t, kind, a.Kind())

			_, err = build(decimal.Zero)
			assert.ErrorIs(t, err, ErrNonPositiveAmount)

			_, err = build(decimal.RequireFromString("1.005"))
			assert.ErrorIs(t, err, ErrAmountPrecision)
		})
	}

	assert.True(t, InquireBalance().Amount().IsZero())
}
