// Package model содержит доменные сущности банкомата.
package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Знак проверяется в десятичной арифметике: перевод во float64 теряет малые значения.
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	})
	return v
}

// AccountParams содержит исходные данные для открытия счёта.
type AccountParams struct {
	Name         string          `validate:"required"`
	CardID       string          `validate:"required"`
	PIN          int             `validate:"gt=0"`
	Cash         decimal.Decimal `validate:"nonnegative"`
	Deposit      decimal.Decimal `validate:"nonnegative"`
	Phone        string          `validate:"required"`
	PhoneBalance decimal.Decimal `validate:"nonnegative"`
}

// Account представляет клиента банка: реквизиты карты и три баланса.
// Реквизиты неизменяемы, балансы меняются только переводами между ними.
type Account struct {
	name   string
	cardID string
	pin    int
	phone  string

	cash         decimal.Decimal
	deposit      decimal.Decimal
	phoneBalance decimal.Decimal

	history []Operation
}

// NewAccount проверяет параметры и создаёт счёт.
func NewAccount(p AccountParams) (*Account, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("validate account: %w", err)
	}

	return &Account{
		name:         p.Name,
		cardID:       p.CardID,
		pin:          p.PIN,
		phone:        p.Phone,
		cash:         p.Cash,
		deposit:      p.Deposit,
		phoneBalance: p.PhoneBalance,
	}, nil
}

// Name возвращает имя клиента.
func (a *Account) Name() string { return a.name }

// CardID возвращает номер карты.
func (a *Account) CardID() string { return a.cardID }

// PIN возвращает пин-код карты.
func (a *Account) PIN() int { return a.pin }

// Phone возвращает привязанный номер телефона.
func (a *Account) Phone() string { return a.phone }

// Cash возвращает баланс наличных.
func (a *Account) Cash() decimal.Decimal { return a.cash }

// Deposit возвращает баланс депозита.
func (a *Account) Deposit() decimal.Decimal { return a.deposit }

// PhoneBalance возвращает баланс телефона.
func (a *Account) PhoneBalance() decimal.Decimal { return a.phoneBalance }

// Balances возвращает снимок текущих балансов.
func (a *Account) Balances() Balances {
	return Balances{
		Cash:         a.cash,
		Deposit:      a.deposit,
		PhoneBalance: a.phoneBalance,
	}
}

// MoveDepositToCash снимает сумму с депозита наличными.
func (a *Account) MoveDepositToCash(amount decimal.Decimal) {
	a.deposit = a.deposit.Sub(amount)
	a.cash = a.cash.Add(amount)
}

// MoveCashToDeposit зачисляет наличные на депозит.
func (a *Account) MoveCashToDeposit(amount decimal.Decimal) {
	a.deposit = a.deposit.Add(amount)
	a.cash = a.cash.Sub(amount)
}

// MoveCashToPhone пополняет баланс телефона наличными.
func (a *Account) MoveCashToPhone(amount decimal.Decimal) {
	a.phoneBalance = a.phoneBalance.Add(amount)
	a.cash = a.cash.Sub(amount)
}

// MoveDepositToPhone пополняет баланс телефона с депозита.
func (a *Account) MoveDepositToPhone(amount decimal.Decimal) {
	a.phoneBalance = a.phoneBalance.Add(amount)
	a.deposit = a.deposit.Sub(amount)
}

// Record добавляет проведённую операцию в журнал счёта.
func (a *Account) Record(op Operation) {
	a.history = append(a.history, op)
}

// History возвращает копию журнала операций.
func (a *Account) History() []Operation {
	out := make([]Operation, len(a.history))
	copy(out, a.history)
	return out
}

// Balances содержит значения балансов счёта на момент снимка.
type Balances struct {
	Cash         decimal.Decimal
	Deposit      decimal.Decimal
	PhoneBalance decimal.Decimal
}

// Operation описывает проведённую операцию по счёту.
type Operation struct {
	ID       uuid.UUID
	Kind     ActionKind
	Payment  OptionalPayment
	Amount   decimal.Decimal
	Balances Balances
	At       time.Time
}
