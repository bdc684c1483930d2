// Package bank реализует проверку запросов банкомата и проведение операций по счёту.
package bank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/atm-terminal/internal/model"
	"github.com/mmeshcher/atm-terminal/internal/repository"
	"github.com/mmeshcher/atm-terminal/internal/validation"
)

// Repository описывает хранилище счетов, используемое банком.
type Repository interface {
	WithAccount(ctx context.Context, cardID string, fn func(acc *model.Account) error) error
	GetHistory(ctx context.Context, cardID string) ([]model.Operation, error)
}

// Teller перечисляет возможности банка: проверки, переводы между балансами и формирование ответа.
type Teller interface {
	DoAction(ctx context.Context, req model.Request) (*model.Result, error)

	IdentityMatches(acc *model.Account, cardID string, pin int) bool
	PhoneMatches(acc *model.Account, phone string) bool
	HasSufficientCash(acc *model.Account, amount decimal.Decimal) bool
	HasSufficientDeposit(acc *model.Account, amount decimal.Decimal) bool

	WithdrawFromDeposit(acc *model.Account, amount decimal.Decimal) *model.Result
	DepositCash(acc *model.Account, amount decimal.Decimal) *model.Result
	TopUpPhoneWithCash(acc *model.Account, amount decimal.Decimal) *model.Result
	TopUpPhoneWithDeposit(acc *model.Account, amount decimal.Decimal) *model.Result

	ShowBalance(acc *model.Account) *model.Result
	ShowError(acc *model.Account, reason model.Reason) *model.Result
}

// Server обслуживает запросы банкоматов к счетам из хранилища.
type Server struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewServer создаёт банк поверх указанного хранилища.
func NewServer(repo Repository, logger *zap.Logger) *Server {
	return &Server{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// DoAction проверяет карту и пин-код, затем выполняет выбранную операцию.
// Отказы возвращаются в Result, ошибка означает сбой хранилища или отмену контекста.
func (s *Server) DoAction(ctx context.Context, req model.Request) (*model.Result, error) {
	var res *model.Result

	err := s.repo.WithAccount(ctx, req.CardID, func(acc *model.Account) error {
		if !s.IdentityMatches(acc, req.CardID, req.PIN) {
			res = s.ShowError(nil, model.ReasonWrongPinOrCard)
			return nil
		}

		res = s.dispatch(acc, req)
		res.Greeting = "Добрый день, " + acc.Name()
		return nil
	})
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, fmt.Errorf("do action: %w", err)
		}
		res = s.ShowError(nil, model.ReasonWrongPinOrCard)
	}

	if res.OK() {
		s.logger.Info("operation completed",
			zap.Stringer("action", req.Action.Kind()),
			zap.Stringer("payment", req.Payment),
		)
	} else {
		s.logger.Info("operation rejected",
			zap.Stringer("action", req.Action.Kind()),
			zap.String("reason", string(res.Reason)),
		)
	}

	return res, nil
}

func (s *Server) dispatch(acc *model.Account, req model.Request) *model.Result {
	amount := req.Action.Amount()

	switch req.Action.Kind() {
	case model.ActionInquireBalance:
		return s.ShowBalance(acc)

	case model.ActionWithdrawFromDeposit:
		if !s.HasSufficientDeposit(acc, amount) {
			return s.ShowError(acc, model.ReasonInsufficientFunds)
		}
		return s.WithdrawFromDeposit(acc, amount)

	case model.ActionDepositCash:
		if !s.HasSufficientCash(acc, amount) {
			return s.ShowError(acc, model.ReasonWrongCashLimit)
		}
		return s.DepositCash(acc, amount)

	case model.ActionTopUpPhone:
		if !s.PhoneMatches(acc, req.Phone) {
			return s.ShowError(acc, model.ReasonWrongPhoneNumber)
		}
		return s.topUpPhone(acc, amount, req.Payment)
	}

	// Нулевое значение Action.
	return s.ShowBalance(acc)
}

func (s *Server) topUpPhone(acc *model.Account, amount decimal.Decimal, payment model.OptionalPayment) *model.Result {
	method, ok := payment.Get()
	if !ok {
		return s.ShowError(acc, model.ReasonWrongPaymentMethod)
	}

	switch method {
	case model.PaymentCash:
		if !s.HasSufficientCash(acc, amount) {
			return s.ShowError(acc, model.ReasonWrongCashLimit)
		}
		return s.TopUpPhoneWithCash(acc, amount)
	case model.PaymentDeposit:
		if !s.HasSufficientDeposit(acc, amount) {
			return s.ShowError(acc, model.ReasonInsufficientFunds)
		}
		return s.TopUpPhoneWithDeposit(acc, amount)
	default:
		return s.ShowError(acc, model.ReasonWrongPaymentMethod)
	}
}

// IdentityMatches проверяет карту и пин-код.
func (s *Server) IdentityMatches(acc *model.Account, cardID string, pin int) bool {
	return validation.IdentityMatches(acc, cardID, pin)
}

// PhoneMatches проверяет номер телефона клиента.
func (s *Server) PhoneMatches(acc *model.Account, phone string) bool {
	return validation.PhoneMatches(acc, phone)
}

// HasSufficientCash проверяет лимит наличных.
func (s *Server) HasSufficientCash(acc *model.Account, amount decimal.Decimal) bool {
	return validation.HasSufficientCash(acc, amount)
}

// HasSufficientDeposit проверяет остаток депозита.
func (s *Server) HasSufficientDeposit(acc *model.Account, amount decimal.Decimal) bool {
	return validation.HasSufficientDeposit(acc, amount)
}

// GetHistory возвращает журнал операций по карте.
func (s *Server) GetHistory(ctx context.Context, cardID string) ([]model.Operation, error) {
	return s.repo.GetHistory(ctx, cardID)
}

var _ Teller = (*Server)(nil)
