package mvc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// ConversionUsecase converts between underlying token amounts and share
// amounts with conservative rounding. "Amount receivable" quotes are safe
// lower bounds; "amount needed" quotes are safe upper bounds.
type ConversionUsecase interface {
	// MintQuote returns the share amount minted for depositing amount of
	// token. The result never overstates what the vault will actually mint.
	MintQuote(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error)

	// MintQuoteWithSet is MintQuote validated against the supplied token-set
	// snapshot instead of the current one, so every leg of one route
	// evaluation sees the same set.
	MintQuoteWithSet(ctx context.Context, set domain.TokenSet, token common.Address, amount osmomath.Int) (osmomath.Int, error)

	// RedeemQuote returns the token amount received for redeeming shares.
	// With roundUp false the result is a safe lower bound; with roundUp
	// true it is a guaranteed-sufficient figure that is never below the
	// floor-mode result.
	RedeemQuote(ctx context.Context, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error)

	// RedeemQuoteWithSet is RedeemQuote validated against the supplied
	// token-set snapshot instead of the current one.
	RedeemQuoteWithSet(ctx context.Context, set domain.TokenSet, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error)

	// SharesNeededForAmount returns the share amount that must be redeemed
	// to receive at least amount of token, including the rounding safety
	// margin and the exchange-rate drift buffer.
	SharesNeededForAmount(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error)

	// AmountNeededForShares returns the token amount that must be deposited
	// to mint at least shares, including the rounding safety margin.
	AmountNeededForShares(ctx context.Context, token common.Address, shares osmomath.Int) (osmomath.Int, error)
}
