// Package validation содержит проверки, которые банк выполняет перед операцией.
// Проверки не меняют счёт и не возвращают ошибок.
package validation

import (
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/atm-terminal/internal/model"
)

// IdentityMatches проверяет совпадение номера карты и пин-кода.
func IdentityMatches(acc *model.Account, cardID string, pin int) bool {
	return acc.CardID() == cardID && acc.PIN() == pin
}

// PhoneMatches проверяет, что телефон совпадает с телефоном клиента.
func PhoneMatches(acc *model.Account, phone string) bool {
	return acc.Phone() == phone
}

// HasSufficientCash проверяет, что наличных строго больше запрошенной суммы.
func HasSufficientCash(acc *model.Account, amount decimal.Decimal) bool {
	return acc.Cash().GreaterThan(amount)
}

// HasSufficientDeposit проверяет, что на депозите строго больше запрошенной суммы.
func HasSufficientDeposit(acc *model.Account, amount decimal.Decimal) bool {
	return acc.Deposit().GreaterThan(amount)
}
