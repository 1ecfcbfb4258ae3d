package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/shareswap-labs/shareswap/domain"
)

// Factory is the bound pool factory contract.
type Factory struct {
	contract   *bind.BoundContract
	transactor *Transactor
}

var _ domain.PoolFactory = &Factory{}

// NewFactory binds the pool factory at the given address.
func NewFactory(address common.Address, client *Client, transactor *Transactor) *Factory {
	eth := client.Backend()
	return &Factory{
		contract:   bind.NewBoundContract(address, factoryABI, eth, eth, eth),
		transactor: transactor,
	}
}

// IsPool implements domain.PoolFactory.
func (f *Factory) IsPool(ctx context.Context, pool common.Address) (bool, error) {
	var out []interface{}
	if err := f.contract.Call(&bind.CallOpts{Context: ctx}, &out, "isPair", pool); err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

// GetPool implements domain.PoolFactory.
func (f *Factory) GetPool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error) {
	var out []interface{}
	if err := f.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getPair", tokenA, tokenB, kind.IsStable()); err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// CreatePool implements domain.PoolFactory. The created pool address is read
// back from the registry after the deployment transaction mines.
func (f *Factory) CreatePool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error) {
	opts, err := f.transactor.Opts(ctx)
	if err != nil {
		return common.Address{}, err
	}

	tx, err := f.contract.Transact(opts, "createPair", tokenA, tokenB, kind.IsStable())
	if err := f.transactor.Submit(ctx, tx, err); err != nil {
		return common.Address{}, err
	}

	pool, err := f.GetPool(ctx, tokenA, tokenB, kind)
	if err != nil {
		return common.Address{}, err
	}
	if pool == (common.Address{}) {
		return common.Address{}, fmt.Errorf("pool for %s/%s (%s) missing after creation", tokenA.Hex(), tokenB.Hex(), kind)
	}
	return pool, nil
}
