package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// AddLiquidityQuote is the expected outcome of provisioning liquidity for a
// share-token pair from an underlying token.
type AddLiquidityQuote struct {
	// Shares is the share-token amount minted from the underlying deposit.
	Shares osmomath.Int `json:"shares"`
	// PairedAmount is the paired-token amount matching Shares at current
	// reserves.
	PairedAmount osmomath.Int `json:"paired_amount"`
	// Liquidity is the expected liquidity-token amount.
	Liquidity osmomath.Int `json:"liquidity"`
}

// RemoveLiquidityQuote is the expected outcome of unwinding share-token
// pair liquidity back into an underlying token.
type RemoveLiquidityQuote struct {
	// UnderlyingAmount is the underlying-token amount after redeeming the
	// share side.
	UnderlyingAmount osmomath.Int `json:"underlying_amount"`
	// PairedAmount is the paired-token amount released by the burn.
	PairedAmount osmomath.Int `json:"paired_amount"`
}
