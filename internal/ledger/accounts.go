package ledger

import (
	"time"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// accountStore maps account ids to accounts. It carries no locking of its
// own; the owning Ledger serializes every access behind its mutex.
type accountStore struct {
	accounts map[string]*models.Account
}

func newAccountStore() *accountStore {
	return &accountStore{
		accounts: make(map[string]*models.Account),
	}
}

func (s *accountStore) create(id string, balance decimal.Decimal) error {
	if _, exists := s.accounts[id]; exists {
		return ErrAccountExists
	}
	s.accounts[id] = &models.Account{
		ID:        id,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
	return nil
}

func (s *accountStore) exists(id string) bool {
	_, ok := s.accounts[id]
	return ok
}

func (s *accountStore) balance(id string) (decimal.Decimal, error) {
	account, ok := s.accounts[id]
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}
	return account.Balance, nil
}

// applyDelta adds delta (may be negative) to the stored balance. Lower-bound
// enforcement happens at submission time, not here.
func (s *accountStore) applyDelta(id string, delta decimal.Decimal) error {
	account, ok := s.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.Balance = account.Balance.Add(delta)
	return nil
}
