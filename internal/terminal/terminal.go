// Package terminal моделирует банкомат: он собирает запрос клиента
// и один раз отправляет его в банк при создании.
package terminal

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mmeshcher/atm-terminal/internal/model"
)

// Bank определяет контракт банка, которым пользуется банкомат.
type Bank interface {
	DoAction(ctx context.Context, req model.Request) (*model.Result, error)
}

// ATM хранит запрос одной сессии и ответ банка на него.
type ATM struct {
	request model.Request
	result  *model.Result
	err     error
}

// New создаёт банкомат и сразу отправляет запрос в банк.
func New(ctx context.Context, bank Bank, req model.Request, logger *zap.Logger) *ATM {
	atm := &ATM{request: req}
	atm.sendUserDataToBank(ctx, bank, logger)
	return atm
}

func (a *ATM) sendUserDataToBank(ctx context.Context, bank Bank, logger *zap.Logger) {
	a.result, a.err = bank.DoAction(ctx, a.request)
	if a.err != nil {
		logger.Error("bank request failed", zap.Error(a.err), zap.Stringer("action", a.request.Action.Kind()))
	}
}

// Result возвращает ответ банка на запрос сессии.
func (a *ATM) Result() (*model.Result, error) {
	return a.result, a.err
}

// Render печатает ответ банка так, как его видит клиент.
func Render(w io.Writer, res *model.Result) error {
	if res.Greeting != "" {
		if _, err := fmt.Fprintln(w, res.Greeting); err != nil {
			return fmt.Errorf("write greeting: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, res.Message); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
