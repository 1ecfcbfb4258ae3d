package mocks

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

var _ domain.Pool = &PoolMock{}

// PoolMock is a stateful constant-product pair backed by a BankMock. It
// implements the x*y=k curve with a 30 bps fee for both kinds; the kind only
// matters for address derivation, which the mock does not own.
//
// The pool's liquidity token is identified by the pool's own address in the
// bank, mirroring the pair-is-its-own-LP-token convention.
type PoolMock struct {
	mu sync.Mutex

	Addr   common.Address
	T0, T1 common.Address
	Bank   *BankMock

	reserve0 osmomath.Int
	reserve1 osmomath.Int
	supply   osmomath.Int

	// FeeBps is the swap fee in basis points. Defaults to 30.
	FeeBps int64

	// SwapErr, if set, fails every swap.
	SwapErr error
}

// NewPoolMock creates a pool at the given address for the sorted pair
// (token0, token1), seeding the given reserves into the bank.
func NewPoolMock(addr, token0, token1 common.Address, reserve0, reserve1 osmomath.Int, bank *BankMock) *PoolMock {
	bank.Mint(token0, addr, reserve0)
	bank.Mint(token1, addr, reserve1)

	// Bootstrap liquidity as sqrt(r0*r1), the usual first-mint rule.
	supply := sqrtInt(reserve0.Mul(reserve1))

	return &PoolMock{
		Addr:     addr,
		T0:       token0,
		T1:       token1,
		Bank:     bank,
		reserve0: reserve0,
		reserve1: reserve1,
		supply:   supply,
		FeeBps:   30,
	}
}

// Address implements domain.Pool.
func (p *PoolMock) Address() common.Address {
	return p.Addr
}

// Token0 implements domain.Pool.
func (p *PoolMock) Token0(ctx context.Context) (common.Address, error) {
	return p.T0, nil
}

// Token1 implements domain.Pool.
func (p *PoolMock) Token1(ctx context.Context) (common.Address, error) {
	return p.T1, nil
}

// GetReserves implements domain.Pool.
func (p *PoolMock) GetReserves(ctx context.Context) (osmomath.Int, osmomath.Int, uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reserve0, p.reserve1, 0, nil
}

// TotalSupply implements domain.Pool.
func (p *PoolMock) TotalSupply(ctx context.Context) (osmomath.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supply, nil
}

// GetAmountOut implements domain.Pool.
func (p *PoolMock) GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn common.Address) (osmomath.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	reserveIn, reserveOut := p.reserve0, p.reserve1
	if tokenIn == p.T1 {
		reserveIn, reserveOut = p.reserve1, p.reserve0
	} else if tokenIn != p.T0 {
		return osmomath.Int{}, fmt.Errorf("token (%s) not in pair", tokenIn.Hex())
	}

	return p.amountOut(amountIn, reserveIn, reserveOut), nil
}

// amountOut is amountIn*(1-fee)*reserveOut / (reserveIn + amountIn*(1-fee)).
func (p *PoolMock) amountOut(amountIn, reserveIn, reserveOut osmomath.Int) osmomath.Int {
	amountInWithFee := amountIn.MulRaw(10_000 - p.FeeBps)
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.MulRaw(10_000).Add(amountInWithFee)
	if denominator.IsZero() {
		return osmomath.ZeroInt()
	}
	return numerator.Quo(denominator)
}

// Swap implements domain.Pool. Input must already sit at the pool's bank
// account; the invariant check is against the fee-adjusted balances, as the
// real pair contract does it.
func (p *PoolMock) Swap(ctx context.Context, amount0Out, amount1Out osmomath.Int, to common.Address, data []byte) error {
	if p.SwapErr != nil {
		return p.SwapErr
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !amount0Out.IsPositive() && !amount1Out.IsPositive() {
		return fmt.Errorf("insufficient output amount requested")
	}

	if err := p.payOut(p.T0, to, amount0Out); err != nil {
		return err
	}
	if err := p.payOut(p.T1, to, amount1Out); err != nil {
		return err
	}

	balance0 := p.Bank.Balance(p.T0, p.Addr)
	balance1 := p.Bank.Balance(p.T1, p.Addr)

	amount0In := inAmount(balance0, p.reserve0, amount0Out)
	amount1In := inAmount(balance1, p.reserve1, amount1Out)
	if !amount0In.IsPositive() && !amount1In.IsPositive() {
		return fmt.Errorf("insufficient input amount")
	}

	adjusted0 := balance0.MulRaw(10_000).Sub(amount0In.MulRaw(p.FeeBps))
	adjusted1 := balance1.MulRaw(10_000).Sub(amount1In.MulRaw(p.FeeBps))
	if adjusted0.Mul(adjusted1).LT(p.reserve0.Mul(p.reserve1).MulRaw(10_000 * 10_000)) {
		return fmt.Errorf("constant product invariant violated")
	}

	p.reserve0 = balance0
	p.reserve1 = balance1
	return nil
}

// Mint implements domain.Pool. Mints liquidity for the token balances sent
// to the pool since the last reserve sync.
func (p *PoolMock) Mint(ctx context.Context, to common.Address) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	balance0 := p.Bank.Balance(p.T0, p.Addr)
	balance1 := p.Bank.Balance(p.T1, p.Addr)
	amount0 := balance0.Sub(p.reserve0)
	amount1 := balance1.Sub(p.reserve1)

	var liquidity osmomath.Int
	if p.supply.IsZero() {
		liquidity = sqrtInt(amount0.Mul(amount1))
	} else {
		liquidity = osmomath.MinInt(
			amount0.Mul(p.supply).Quo(p.reserve0),
			amount1.Mul(p.supply).Quo(p.reserve1),
		)
	}
	if !liquidity.IsPositive() {
		return fmt.Errorf("insufficient liquidity minted")
	}

	p.supply = p.supply.Add(liquidity)
	p.Bank.Mint(p.Addr, to, liquidity)

	p.reserve0 = balance0
	p.reserve1 = balance1
	return nil
}

// Burn implements domain.Pool. Burns the liquidity tokens sent to the pool
// and pays out both sides pro rata.
func (p *PoolMock) Burn(ctx context.Context, to common.Address) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	liquidity := p.Bank.Balance(p.Addr, p.Addr)
	if !liquidity.IsPositive() {
		return fmt.Errorf("insufficient liquidity burned")
	}

	amount0 := liquidity.Mul(p.reserve0).Quo(p.supply)
	amount1 := liquidity.Mul(p.reserve1).Quo(p.supply)

	p.Bank.Burn(p.Addr, p.Addr, liquidity)
	p.supply = p.supply.Sub(liquidity)

	if err := p.payOut(p.T0, to, amount0); err != nil {
		return err
	}
	if err := p.payOut(p.T1, to, amount1); err != nil {
		return err
	}

	p.reserve0 = p.Bank.Balance(p.T0, p.Addr)
	p.reserve1 = p.Bank.Balance(p.T1, p.Addr)
	return nil
}

func (p *PoolMock) payOut(token, to common.Address, amount osmomath.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	return p.Bank.Move(token, p.Addr, to, amount)
}

func inAmount(balance, reserve, out osmomath.Int) osmomath.Int {
	previous := reserve.Sub(out)
	if balance.GT(previous) {
		return balance.Sub(previous)
	}
	return osmomath.ZeroInt()
}

func sqrtInt(i osmomath.Int) osmomath.Int {
	return osmomath.NewIntFromBigInt(new(big.Int).Sqrt(i.BigInt()))
}
