package mocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
)

var _ mvc.PoolsUsecase = &PoolsUsecaseMock{}

// PoolsUsecaseMock is a mock implementation of the PoolsUsecase interface.
type PoolsUsecaseMock struct {
	PoolForFunc            func(tokenA, tokenB common.Address, kind domain.PoolKind) common.Address
	PoolFunc               func(address common.Address) domain.Pool
	ExistsFunc             func(ctx context.Context, pool common.Address) (bool, error)
	GetAmountOutFunc       func(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address) (osmomath.Int, domain.PoolKind, bool, error)
	GetAmountOutByKindFunc func(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address, kind domain.PoolKind) (osmomath.Int, error)
	EnsurePoolFunc         func(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (domain.Pool, error)
}

func (m *PoolsUsecaseMock) PoolFor(tokenA, tokenB common.Address, kind domain.PoolKind) common.Address {
	if m.PoolForFunc != nil {
		return m.PoolForFunc(tokenA, tokenB, kind)
	}
	panic("unimplemented")
}

func (m *PoolsUsecaseMock) Pool(address common.Address) domain.Pool {
	if m.PoolFunc != nil {
		return m.PoolFunc(address)
	}
	panic("unimplemented")
}

func (m *PoolsUsecaseMock) Exists(ctx context.Context, pool common.Address) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, pool)
	}
	panic("unimplemented")
}

func (m *PoolsUsecaseMock) GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address) (osmomath.Int, domain.PoolKind, bool, error) {
	if m.GetAmountOutFunc != nil {
		return m.GetAmountOutFunc(ctx, amountIn, tokenIn, tokenOut)
	}
	panic("unimplemented")
}

func (m *PoolsUsecaseMock) GetAmountOutByKind(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address, kind domain.PoolKind) (osmomath.Int, error) {
	if m.GetAmountOutByKindFunc != nil {
		return m.GetAmountOutByKindFunc(ctx, amountIn, tokenIn, tokenOut, kind)
	}
	panic("unimplemented")
}

func (m *PoolsUsecaseMock) EnsurePool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (domain.Pool, error) {
	if m.EnsurePoolFunc != nil {
		return m.EnsurePoolFunc(ctx, tokenA, tokenB, kind)
	}
	panic("unimplemented")
}
