package model

// Status описывает итог обработки запроса.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Reason описывает причину отказа в операции.
type Reason string

const (
	ReasonWrongPinOrCard     Reason = "wrongPinOrCard"
	ReasonInsufficientFunds  Reason = "insufficientFunds"
	ReasonWrongCashLimit     Reason = "wrongCashLimit"
	ReasonWrongPaymentMethod Reason = "wrongPaymentMethod"
	ReasonWrongPhoneNumber   Reason = "wrongPhoneNumber"
)

// Text возвращает текст ошибки для клиента.
func (r Reason) Text() string {
	switch r {
	case ReasonWrongPinOrCard:
		return "Неверный пин-код или номер карты"
	case ReasonInsufficientFunds:
		return "Недостаточно средств на счете"
	case ReasonWrongCashLimit:
		return "Недостаточно наличных средств"
	case ReasonWrongPaymentMethod:
		return "Не выбран способ оплаты"
	case ReasonWrongPhoneNumber:
		return "Неверный номер телефона"
	default:
		return string(r)
	}
}

func (r Reason) Error() string {
	return r.Text()
}

// Result содержит итог одного запроса к банку.
type Result struct {
	Status    Status
	Reason    Reason
	Message   string
	Greeting  string
	Balances  Balances
	Operation *Operation
}

// OK сообщает, завершилась ли операция успешно.
func (r *Result) OK() bool {
	return r.Status == StatusSuccess
}

// Err возвращает причину отказа как ошибку либо nil.
func (r *Result) Err() error {
	if r.Reason == "" {
		return nil
	}
	return r.Reason
}
