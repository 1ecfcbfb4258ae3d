package mvc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// PoolsUsecase resolves pools deterministically and quotes real-pool swaps.
type PoolsUsecase interface {
	// PoolFor computes the canonical pool address for the unordered pair
	// and kind with no external call. The address may or may not correspond
	// to a deployed pool.
	PoolFor(tokenA, tokenB common.Address, kind domain.PoolKind) common.Address

	// Pool binds a pool client at the given address.
	Pool(address common.Address) domain.Pool

	// Exists returns true if a pool is deployed at the given address.
	Exists(ctx context.Context, pool common.Address) (bool, error)

	// GetAmountOut is the two-sided lookup: it quotes both the stable and
	// the volatile pool for the pair and returns whichever yields the
	// larger output. Returns a zero amount and false if neither exists.
	GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address) (osmomath.Int, domain.PoolKind, bool, error)

	// GetAmountOutByKind quotes the single pool of the given kind.
	// Yields a zero amount if the pool does not exist.
	GetAmountOutByKind(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address, kind domain.PoolKind) (osmomath.Int, error)

	// EnsurePool returns the pool for the pair and kind, creating it if it
	// was never deployed. Used only by liquidity provisioning, never by
	// swaps.
	EnsurePool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (domain.Pool, error)
}
