package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

var _ domain.Bank = &BankMock{}

// BankMock is an in-memory token ledger shared by all collaborator mocks so
// that executed legs observably move funds between accounts.
type BankMock struct {
	mu sync.Mutex

	// token -> account -> balance
	balances map[common.Address]map[common.Address]osmomath.Int

	// Router is the account Transfer debits.
	Router common.Address

	// TransferErr, if set, fails every transfer. Used to exercise
	// TransferFailureError paths.
	TransferErr error
}

// NewBankMock creates a bank mock debiting transfers from the given router
// account.
func NewBankMock(router common.Address) *BankMock {
	return &BankMock{
		balances: make(map[common.Address]map[common.Address]osmomath.Int),
		Router:   router,
	}
}

// BalanceOf implements domain.Bank.
func (b *BankMock) BalanceOf(ctx context.Context, token, account common.Address) (osmomath.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance(token, account), nil
}

// Transfer implements domain.Bank.
func (b *BankMock) Transfer(ctx context.Context, token, to common.Address, amount osmomath.Int) error {
	if b.TransferErr != nil {
		return b.TransferErr
	}
	return b.Move(token, b.Router, to, amount)
}

// Move moves funds between two arbitrary accounts.
func (b *BankMock) Move(token, from, to common.Address, amount osmomath.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	fromBalance := b.balance(token, from)
	if fromBalance.LT(amount) {
		return fmt.Errorf("insufficient balance of (%s): has (%s), needs (%s)", token.Hex(), fromBalance, amount)
	}

	b.set(token, from, fromBalance.Sub(amount))
	b.set(token, to, b.balance(token, to).Add(amount))
	return nil
}

// Mint credits an account out of thin air.
func (b *BankMock) Mint(token, account common.Address, amount osmomath.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.set(token, account, b.balance(token, account).Add(amount))
}

// Burn debits an account. Panics on insufficient balance to surface test
// setup mistakes early.
func (b *BankMock) Burn(token, account common.Address, amount osmomath.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance := b.balance(token, account)
	if balance.LT(amount) {
		panic(fmt.Sprintf("burning (%s) of token (%s) from account with balance (%s)", amount, token.Hex(), balance))
	}
	b.set(token, account, balance.Sub(amount))
}

// Balance returns the current balance without a context. Test helper.
func (b *BankMock) Balance(token, account common.Address) osmomath.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance(token, account)
}

func (b *BankMock) balance(token, account common.Address) osmomath.Int {
	accounts, ok := b.balances[token]
	if !ok {
		return osmomath.ZeroInt()
	}
	balance, ok := accounts[account]
	if !ok {
		return osmomath.ZeroInt()
	}
	return balance
}

func (b *BankMock) set(token, account common.Address, amount osmomath.Int) {
	accounts, ok := b.balances[token]
	if !ok {
		accounts = make(map[common.Address]osmomath.Int)
		b.balances[token] = accounts
	}
	accounts[account] = amount
}
