package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonPositiveAmount возвращается, если сумма операции не больше нуля.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrAmountPrecision возвращается, если в сумме больше двух знаков после запятой.
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	// ErrUnknownAction возвращается для неизвестного названия операции.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownPaymentMethod возвращается для неизвестного способа оплаты.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// ActionKind описывает вид операции, выбранной в банкомате.
type ActionKind uint8

const (
	// ActionInquireBalance запрос баланса депозита.
	ActionInquireBalance ActionKind = iota + 1
	// ActionWithdrawFromDeposit снятие наличных с депозита.
	ActionWithdrawFromDeposit
	// ActionDepositCash пополнение депозита наличными.
	ActionDepositCash
	// ActionTopUpPhone пополнение баланса телефона.
	ActionTopUpPhone
)

var actionNames = map[ActionKind]string{
	ActionInquireBalance:      "balance",
	ActionWithdrawFromDeposit: "withdraw",
	ActionDepositCash:         "deposit",
	ActionTopUpPhone:          "topup-phone",
}

// String возвращает название операции, принятое в конфигурации.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action описывает операцию вместе с суммой. Запрос баланса суммы не несёт.
type Action struct {
	kind   ActionKind
	amount decimal.Decimal
}

// InquireBalance создаёт запрос баланса депозита.
func InquireBalance() Action {
	return Action{kind: ActionInquireBalance}
}

// WithdrawFromDeposit создаёт снятие наличных с депозита.
func WithdrawFromDeposit(amount decimal.Decimal) (Action, error) {
	return newAmountAction(ActionWithdrawFromDeposit, amount)
}

// DepositCash создаёт пополнение депозита наличными.
func DepositCash(amount decimal.Decimal) (Action, error) {
	return newAmountAction(ActionDepositCash, amount)
}

// TopUpPhone создаёт пополнение баланса телефона.
func TopUpPhone(amount decimal.Decimal) (Action, error) {
	return newAmountAction(ActionTopUpPhone, amount)
}

func newAmountAction(kind ActionKind, amount decimal.Decimal) (Action, error) {
	if !amount.IsPositive() {
		return Action{}, fmt.Errorf("%s %s: %w", kind, amount, ErrNonPositiveAmount)
	}
	// Суммы ведутся в копейках.
	if !amount.Equal(amount.Truncate(2)) {
		return Action{}, fmt.Errorf("%s %s: %w", kind, amount, ErrAmountPrecision)
	}
	return Action{kind: kind, amount: amount}, nil
}

// Kind возвращает вид операции.
func (a Action) Kind() ActionKind { return a.kind }

// Amount возвращает сумму операции; для запроса баланса она нулевая.
func (a Action) Amount() decimal.Decimal { return a.amount }

// ParseAction строит операцию по названию и сумме в текстовом виде.
func ParseAction(name, amount string) (Action, error) {
	kind, ok := parseActionKind(name)
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	if kind == ActionInquireBalance {
		return InquireBalance(), nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Action{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	return newAmountAction(kind, value)
}

func parseActionKind(name string) (ActionKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range actionNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// PaymentMethod описывает способ оплаты пополнения телефона.
type PaymentMethod uint8

const (
	// PaymentCash оплата наличными.
	PaymentCash PaymentMethod = iota + 1
	// PaymentDeposit оплата с депозита.
	PaymentDeposit
)

// String возвращает название способа оплаты.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentCash:
		return "cash"
	case PaymentDeposit:
		return "deposit"
	default:
		return fmt.Sprintf("PaymentMethod(%d)", uint8(m))
	}
}

// OptionalPayment хранит способ оплаты либо его отсутствие.
type OptionalPayment struct {
	method PaymentMethod
	set    bool
}

// NoPayment означает, что способ оплаты не выбран.
func NoPayment() OptionalPayment {
	return OptionalPayment{}
}

// PayWith означает оплату указанным способом.
func PayWith(m PaymentMethod) OptionalPayment {
	return OptionalPayment{method: m, set: true}
}

// Get возвращает способ оплаты и признак его наличия.
func (o OptionalPayment) Get() (PaymentMethod, bool) {
	return o.method, o.set
}

// String возвращает способ оплаты или "none", если он не выбран.
func (o OptionalPayment) String() string {
	if !o.set {
		return "none"
	}
	return o.method.String()
}

// ParsePayment разбирает способ оплаты. Пустая строка означает отсутствие способа.
func ParsePayment(s string) (OptionalPayment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoPayment(), nil
	case "cash":
		return PayWith(PaymentCash), nil
	case "deposit":
		return PayWith(PaymentDeposit), nil
	default:
		return OptionalPayment{}, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
}

// Request содержит запрос, который банкомат передаёт в банк за одну сессию.
type Request struct {
	CardID  string
	PIN     int
	Action  Action
	Phone   string
	Payment OptionalPayment
}
