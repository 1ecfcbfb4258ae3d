package domain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"
)

// Collaborator contracts consumed by the router. These are external,
// already-deployed systems; the router only depends on the narrow surface
// below. Mutating methods return no amounts: callers observe effects through
// scoped balance snapshots on the Bank, which is also how quote/execution
// drift is absorbed.

// Pool is a two-reserve constant-product AMM.
type Pool interface {
	// Address returns the pool's address.
	Address() common.Address

	// Token0 returns the first token of the pair in canonical sorted order.
	Token0(ctx context.Context) (common.Address, error)

	// Token1 returns the second token of the pair in canonical sorted order.
	Token1(ctx context.Context) (common.Address, error)

	// GetReserves returns the current reserves and the timestamp of the last
	// reserve update.
	GetReserves(ctx context.Context) (reserve0, reserve1 osmomath.Int, blockTimestampLast uint64, err error)

	// TotalSupply returns the total supply of the pool's liquidity token.
	TotalSupply(ctx context.Context) (osmomath.Int, error)

	// GetAmountOut returns the output amount the pool would give for
	// amountIn of tokenIn, fees included.
	GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn common.Address) (osmomath.Int, error)

	// Swap performs a swap, sending the requested output amounts to the
	// given destination. Input must have been transferred to the pool
	// beforehand. Data is an optional flash-swap callback payload.
	Swap(ctx context.Context, amount0Out, amount1Out osmomath.Int, to common.Address, data []byte) error

	// Mint mints liquidity to the given address from the pool's pending
	// token balances.
	Mint(ctx context.Context, to common.Address) error

	// Burn burns the pool's pending liquidity token balance and sends the
	// underlying tokens to the given address.
	Burn(ctx context.Context, to common.Address) error
}

// PoolFactory is the deterministic pool deployer/registry.
type PoolFactory interface {
	// IsPool returns true if the given address is a pool deployed by this
	// factory.
	IsPool(ctx context.Context, pool common.Address) (bool, error)

	// GetPool returns the pool address for the pair and kind, or the zero
	// address if it was never created.
	GetPool(ctx context.Context, tokenA, tokenB common.Address, kind PoolKind) (common.Address, error)

	// CreatePool deploys a pool for the pair and kind.
	CreatePool(ctx context.Context, tokenA, tokenB common.Address, kind PoolKind) (common.Address, error)
}

// PoolClientFn binds a Pool client at the given address. Injected so that
// tests can supply in-memory pools.
type PoolClientFn func(address common.Address) Pool

// Vault is the share-token vault: price oracle reads, fee schedules,
// whitelist, AUM accounting and the deposit/withdraw entry points.
type Vault interface {
	// MinPrice returns the lower-bound oracle price for the token,
	// expressed with 30 decimals of precision.
	MinPrice(ctx context.Context, token common.Address) (osmomath.Int, error)

	// MaxPrice returns the upper-bound oracle price for the token,
	// expressed with 30 decimals of precision.
	MaxPrice(ctx context.Context, token common.Address) (osmomath.Int, error)

	// AdjustForDecimals rescales amount from tokenDiv's decimals into
	// tokenMul's decimals, truncating.
	AdjustForDecimals(ctx context.Context, amount osmomath.Int, tokenDiv, tokenMul common.Address) (osmomath.Int, error)

	// DepositFeeBasisPoints returns the deposit fee in basis points for
	// moving accountingDelta accounting units of the token into the vault.
	DepositFeeBasisPoints(ctx context.Context, token common.Address, accountingDelta osmomath.Int) (osmomath.Int, error)

	// WithdrawFeeBasisPoints returns the withdrawal fee in basis points for
	// moving accountingDelta accounting units of the token out of the vault.
	WithdrawFeeBasisPoints(ctx context.Context, token common.Address, accountingDelta osmomath.Int) (osmomath.Int, error)

	// WhitelistedTokens returns the current vault whitelist.
	WhitelistedTokens(ctx context.Context) ([]common.Address, error)

	// AccountingToken returns the token denominating the vault's internal
	// accounting unit.
	AccountingToken(ctx context.Context) (common.Address, error)

	// TotalValue returns the vault's total value in accounting units.
	// When maximize is true, upper-bound prices are used.
	TotalValue(ctx context.Context, maximize bool) (osmomath.Int, error)

	// BasketSupply returns the total supply of basket units backing the
	// share token.
	BasketSupply(ctx context.Context) (osmomath.Int, error)

	// Deposit deposits amount of token and mints the resulting shares to
	// the caller.
	Deposit(ctx context.Context, token common.Address, amount osmomath.Int) error

	// Withdraw burns shares and sends the resulting amount of token to the
	// receiver.
	Withdraw(ctx context.Context, token common.Address, shares osmomath.Int, receiver common.Address) error
}

// ShareRate converts between share-token units and basket units at the
// share token's current exchange rate.
type ShareRate interface {
	// SharesForAmount returns the share amount corresponding to the given
	// basket amount.
	SharesForAmount(ctx context.Context, amount osmomath.Int, roundUp bool) (osmomath.Int, error)

	// AmountForShares returns the basket amount corresponding to the given
	// share amount.
	AmountForShares(ctx context.Context, shares osmomath.Int, roundUp bool) (osmomath.Int, error)
}

// Bank is the token transfer plumbing. Transfers move funds out of the
// router's own account.
type Bank interface {
	// BalanceOf returns account's balance of token.
	BalanceOf(ctx context.Context, token, account common.Address) (osmomath.Int, error)

	// Transfer sends amount of token from the router's account to the
	// destination.
	Transfer(ctx context.Context, token, to common.Address, amount osmomath.Int) error
}

// WrappedNative wraps and unwraps the chain's native asset.
type WrappedNative interface {
	// Address returns the wrapped token's address.
	Address() common.Address

	// Wrap deposits amount of the native asset, crediting the router with
	// wrapped tokens.
	Wrap(ctx context.Context, amount osmomath.Int) error

	// Unwrap burns amount of wrapped tokens and sends the native asset to
	// the destination.
	Unwrap(ctx context.Context, amount osmomath.Int, to common.Address) error
}
