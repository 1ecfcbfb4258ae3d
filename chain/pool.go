package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// Pool is a bound constant-product pool contract.
type Pool struct {
	address    common.Address
	contract   *bind.BoundContract
	transactor *Transactor
}

var _ domain.Pool = &Pool{}

// NewPoolClientFn returns a factory binding pool clients against the given
// chain connection.
func NewPoolClientFn(client *Client, transactor *Transactor) domain.PoolClientFn {
	return func(address common.Address) domain.Pool {
		eth := client.Backend()
		return &Pool{
			address:    address,
			contract:   bind.NewBoundContract(address, poolABI, eth, eth, eth),
			transactor: transactor,
		}
	}
}

// Address implements domain.Pool.
func (p *Pool) Address() common.Address {
	return p.address
}

// Token0 implements domain.Pool.
func (p *Pool) Token0(ctx context.Context) (common.Address, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, "token0"); err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// Token1 implements domain.Pool.
func (p *Pool) Token1(ctx context.Context) (common.Address, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, "token1"); err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// GetReserves implements domain.Pool.
func (p *Pool) GetReserves(ctx context.Context) (osmomath.Int, osmomath.Int, uint64, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getReserves"); err != nil {
		return osmomath.Int{}, osmomath.Int{}, 0, err
	}

	reserve0 := osmomath.NewIntFromBigInt(out[0].(*big.Int))
	reserve1 := osmomath.NewIntFromBigInt(out[1].(*big.Int))
	blockTimestampLast := out[2].(*big.Int).Uint64()

	return reserve0, reserve1, blockTimestampLast, nil
}

// TotalSupply implements domain.Pool.
func (p *Pool) TotalSupply(ctx context.Context) (osmomath.Int, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, "totalSupply"); err != nil {
		return osmomath.Int{}, err
	}
	return osmomath.NewIntFromBigInt(out[0].(*big.Int)), nil
}

// GetAmountOut implements domain.Pool.
func (p *Pool) GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn common.Address) (osmomath.Int, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getAmountOut", amountIn.BigInt(), tokenIn); err != nil {
		return osmomath.Int{}, err
	}
	return osmomath.NewIntFromBigInt(out[0].(*big.Int)), nil
}

// Swap implements domain.Pool.
func (p *Pool) Swap(ctx context.Context, amount0Out, amount1Out osmomath.Int, to common.Address, data []byte) error {
	opts, err := p.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	if data == nil {
		data = []byte{}
	}

	tx, err := p.contract.Transact(opts, "swap", amount0Out.BigInt(), amount1Out.BigInt(), to, data)
	return p.transactor.Submit(ctx, tx, err)
}

// Mint implements domain.Pool.
func (p *Pool) Mint(ctx context.Context, to common.Address) error {
	opts, err := p.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	tx, err := p.contract.Transact(opts, "mint", to)
	return p.transactor.Submit(ctx, tx, err)
}

// Burn implements domain.Pool.
func (p *Pool) Burn(ctx context.Context, to common.Address) error {
	opts, err := p.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	tx, err := p.contract.Transact(opts, "burn", to)
	return p.transactor.Submit(ctx, tx, err)
}
