// Package repository содержит хранилище счетов банкомата в памяти.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mmeshcher/atm-terminal/internal/model"
)

var (
	// ErrAccountExists возвращается при попытке зарегистрировать карту повторно.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound возвращается, если счёт с такой картой не найден.
	ErrAccountNotFound = errors.New("account not found")
)

// accountSlot хранит счёт вместе с его собственной блокировкой.
type accountSlot struct {
	mu      sync.Mutex
	account *model.Account
}

// MemoryRepository хранит счета в памяти, индексируя их по номеру карты.
// Каждый счёт защищён отдельным мьютексом, поэтому запросы к разным картам не мешают друг другу.
type MemoryRepository struct {
	mu    sync.RWMutex
	slots map[string]*accountSlot
}

// NewMemoryRepository создаёт пустое хранилище.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		slots: make(map[string]*accountSlot),
	}
}

// AddAccount регистрирует счёт. Номер карты должен быть уникальным.
func (r *MemoryRepository) AddAccount(ctx context.Context, acc *model.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[acc.CardID()]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, acc.CardID())
	}
	r.slots[acc.CardID()] = &accountSlot{account: acc}
	return nil
}

// WithAccount выполняет fn под эксклюзивной блокировкой счёта.
func (r *MemoryRepository) WithAccount(ctx context.Context, cardID string, fn func(acc *model.Account) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slot, err := r.slot(cardID)
	if err != nil {
		return err
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return fn(slot.account)
}

// GetBalances возвращает снимок балансов счёта.
func (r *MemoryRepository) GetBalances(ctx context.Context, cardID string) (model.Balances, error) {
	var b model.Balances
	err := r.WithAccount(ctx, cardID, func(acc *model.Account) error {
		b = acc.Balances()
		return nil
	})
	return b, err
}

// GetHistory возвращает журнал операций счёта.
func (r *MemoryRepository) GetHistory(ctx context.Context, cardID string) ([]model.Operation, error) {
	var ops []model.Operation
	err := r.WithAccount(ctx, cardID, func(acc *model.Account) error {
		ops = acc.History()
		return nil
	})
	return ops, err
}

func (r *MemoryRepository) slot(cardID string) (*accountSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[cardID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return slot, nil
}
