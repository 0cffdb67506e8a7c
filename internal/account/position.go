package account

import (
	"github.com/google/uuid"
)

// RawOpenOrders is the per-market open-orders sub-account as read from the
// account state source, in native units. Total includes both resting
// (locked) and settled-but-unclaimed (free) quantities; locked is derived
// as total minus free. A market the account has never traded on has no
// entry here and contributes zero.
type RawOpenOrders struct {
	Market     string
	BaseTotal  int64
	BaseFree   int64
	QuoteTotal int64
	QuoteFree  int64
}

// RawAccountState is one consistent read of a margin account's on-venue
// state: per-token native deposit and borrow vectors (indexed by token
// index) plus open-orders sub-accounts for each market the account
// participates in.
type RawAccountState struct {
	AccountID  uuid.UUID
	Deposits   []int64
	Borrows    []int64
	OpenOrders []RawOpenOrders
}

// OpenOrdersBalance is the UI-unit view of one market's open-orders
// sub-account.
type OpenOrdersBalance struct {
	Market      string
	BaseIndex   int
	QuoteIndex  int
	BaseFree    float64
	BaseLocked  float64
	QuoteFree   float64
	QuoteLocked float64
}

// Position is the normalized, immutable position vector for one account:
// UI-unit deposits and borrows per token index plus per-market open-order
// balances. Deposits and borrows are independent non-negative quantities;
// netting is a program-side invariant and is never applied here.
type Position struct {
	AccountID  uuid.UUID
	Deposits   []float64
	Borrows    []float64
	OpenOrders []OpenOrdersBalance
}

// MaxTokenIndex returns the highest token index the position references,
// or -1 for an empty position.
func (p *Position) MaxTokenIndex() int {
	max := len(p.Deposits) - 1
	if n := len(p.Borrows) - 1; n > max {
		max = n
	}
	for _, oo := range p.OpenOrders {
		if oo.BaseIndex > max {
			max = oo.BaseIndex
		}
		if oo.QuoteIndex > max {
			max = oo.QuoteIndex
		}
	}
	return max
}
