package bank

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/atm-terminal/internal/model"
)

// Названия операций, которые видит клиент.
const (
	titleBalance          = "Запрос баланса"
	titleWithdraw         = "Снятие наличных"
	titleDepositCash      = "Пополнение банковского депозита наличными"
	titlePhoneFromCash    = "Пополнение баланса телефона наличными"
	titlePhoneFromDeposit = "Пополнение баланса телефона с банковского депозита"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ShowBalance сообщает остаток на депозите. Счёт не меняется.
func (s *Server) ShowBalance(acc *model.Account) *model.Result {
	return &model.Result{
		Status:   model.StatusSuccess,
		Message:  fmt.Sprintf("Вы выбрали операцию '%s', ваш баланс: %s рублей", titleBalance, money(acc.Deposit())),
		Balances: acc.Balances(),
	}
}

// ShowError формирует отказ. Для неизвестного клиента acc равен nil и балансы не раскрываются.
func (s *Server) ShowError(acc *model.Account, reason model.Reason) *model.Result {
	res := &model.Result{
		Status:  model.StatusError,
		Reason:  reason,
		Message: reason.Text(),
	}
	if acc != nil {
		res.Balances = acc.Balances()
	}
	return res
}

// WithdrawFromDeposit снимает наличные с депозита.
func (s *Server) WithdrawFromDeposit(acc *model.Account, amount decimal.Decimal) *model.Result {
	acc.MoveDepositToCash(amount)
	msg := fmt.Sprintf("Вы выбрали операцию '%s', сумма: %s рублей. Депозит: %s рублей, наличные: %s рублей",
		titleWithdraw, money(amount), money(acc.Deposit()), money(acc.Cash()))
	return s.complete(acc, model.ActionWithdrawFromDeposit, model.NoPayment(), amount, msg)
}

// DepositCash зачисляет наличные на депозит.
func (s *Server) DepositCash(acc *model.Account, amount decimal.Decimal) *model.Result {
	acc.MoveCashToDeposit(amount)
	msg := fmt.Sprintf("Вы выбрали операцию '%s', сумма: %s рублей. Депозит: %s рублей, наличные: %s рублей",
		titleDepositCash, money(amount), money(acc.Deposit()), money(acc.Cash()))
	return s.complete(acc, model.ActionDepositCash, model.NoPayment(), amount, msg)
}

// TopUpPhoneWithCash пополняет телефон наличными.
func (s *Server) TopUpPhoneWithCash(acc *model.Account, amount decimal.Decimal) *model.Result {
	acc.MoveCashToPhone(amount)
	msg := fmt.Sprintf("Вы выбрали операцию '%s', сумма: %s рублей. Баланс телефона: %s рублей, наличные: %s рублей",
		titlePhoneFromCash, money(amount), money(acc.PhoneBalance()), money(acc.Cash()))
	return s.complete(acc, model.ActionTopUpPhone, model.PayWith(model.PaymentCash), amount, msg)
}

// TopUpPhoneWithDeposit пополняет телефон с депозита.
func (s *Server) TopUpPhoneWithDeposit(acc *model.Account, amount decimal.Decimal) *model.Result {
	acc.MoveDepositToPhone(amount)
	msg := fmt.Sprintf("Вы выбрали операцию '%s', сумма: %s рублей. Баланс телефона: %s рублей, депозит: %s рублей",
		titlePhoneFromDeposit, money(amount), money(acc.PhoneBalance()), money(acc.Deposit()))
	return s.complete(acc, model.ActionTopUpPhone, model.PayWith(model.PaymentDeposit), amount, msg)
}

// complete записывает операцию в журнал счёта и формирует успешный ответ.
func (s *Server) complete(acc *model.Account, kind model.ActionKind, payment model.OptionalPayment, amount decimal.Decimal, msg string) *model.Result {
	op := model.Operation{
		ID:       uuid.New(),
		Kind:     kind,
		Payment:  payment,
		Amount:   amount,
		Balances: acc.Balances(),
		At:       s.now(),
	}
	acc.Record(op)

	s.logger.Debug("balances updated",
		zap.String("operation_id", op.ID.String()),
		zap.Stringer("action", kind),
		zap.String("amount", money(amount)),
		zap.String("cash", money(op.Balances.Cash)),
		zap.String("deposit", money(op.Balances.Deposit)),
		zap.String("phone_balance", money(op.Balances.PhoneBalance)),
	)

	return &model.Result{
		Status:    model.StatusSuccess,
		Message:   msg,
		Balances:  op.Balances,
		Operation: &op,
	}
}
