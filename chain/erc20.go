package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// Bank moves ERC20 balances from the operator account.
type Bank struct {
	client     *Client
	transactor *Transactor
}

var _ domain.Bank = &Bank{}

// NewBank creates the ERC20 transfer plumbing.
func NewBank(client *Client, transactor *Transactor) *Bank {
	return &Bank{client: client, transactor: transactor}
}

func (b *Bank) contract(token common.Address) *bind.BoundContract {
	eth := b.client.Backend()
	return bind.NewBoundContract(token, erc20ABI, eth, eth, eth)
}

// BalanceOf implements domain.Bank.
func (b *Bank) BalanceOf(ctx context.Context, token, account common.Address) (osmomath.Int, error) {
	var out []interface{}
	if err := b.contract(token).Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", account); err != nil {
		return osmomath.Int{}, err
	}
	return osmomath.NewIntFromBigInt(out[0].(*big.Int)), nil
}

// Transfer implements domain.Bank.
func (b *Bank) Transfer(ctx context.Context, token, to common.Address, amount osmomath.Int) error {
	opts, err := b.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	tx, err := b.contract(token).Transact(opts, "transfer", to, amount.BigInt())
	return b.transactor.Submit(ctx, tx, err)
}
