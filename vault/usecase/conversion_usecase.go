package usecase

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
)

var (
	// Oracle prices carry 30 decimals of precision.
	pricePrecision = sdkmath.NewIntWithDecimal(1, 30)

	basisPointsDivisor = osmomath.NewInt(10_000)

	// rateDriftBufferBps is added to shares-needed quotes to tolerate the
	// share/basket exchange rate drifting upward between quote time and
	// execution time.
	rateDriftBufferBps = osmomath.NewInt(1)
)

type conversionUseCase struct {
	vault     domain.Vault
	shareRate domain.ShareRate
	tokens    mvc.TokenSetUsecase
	logger    log.Logger
}

var _ mvc.ConversionUsecase = &conversionUseCase{}

// NewConversionUsecase creates a share-conversion calculator over the given
// vault and share-rate collaborators.
func NewConversionUsecase(vault domain.Vault, shareRate domain.ShareRate, tokens mvc.TokenSetUsecase, logger log.Logger) mvc.ConversionUsecase {
	return &conversionUseCase{
		vault:     vault,
		shareRate: shareRate,
		tokens:    tokens,
		logger:    logger,
	}
}

// MintQuote implements mvc.ConversionUsecase.
func (c *conversionUseCase) MintQuote(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
	return c.MintQuoteWithSet(ctx, c.tokens.Snapshot(), token, amount)
}

// MintQuoteWithSet implements mvc.ConversionUsecase.
//
// Every step rounds down: the returned share amount never overstates what
// the vault will actually mint, so it is safe to feed into downstream
// slippage checks.
func (c *conversionUseCase) MintQuoteWithSet(ctx context.Context, set domain.TokenSet, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
	if err := validateVaultNative(set, token, amount); err != nil {
		return osmomath.Int{}, err
	}

	price, err := c.vault.MinPrice(ctx, token)
	if err != nil {
		return osmomath.Int{}, err
	}
	if !price.IsPositive() {
		return osmomath.Int{}, domain.UnsupportedTokenError{Token: token}
	}

	accountingToken, err := c.vault.AccountingToken(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}

	accounting, err := c.vault.AdjustForDecimals(ctx, amount.Mul(price).Quo(pricePrecision), token, accountingToken)
	if err != nil {
		return osmomath.Int{}, err
	}

	feeBps, err := c.vault.DepositFeeBasisPoints(ctx, token, accounting)
	if err != nil {
		return osmomath.Int{}, err
	}
	afterFee := accounting.Mul(basisPointsDivisor.Sub(feeBps)).Quo(basisPointsDivisor)

	basket, err := c.basketForAccounting(ctx, afterFee)
	if err != nil {
		return osmomath.Int{}, err
	}

	return c.shareRate.SharesForAmount(ctx, basket, false)
}

// RedeemQuote implements mvc.ConversionUsecase.
func (c *conversionUseCase) RedeemQuote(ctx context.Context, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
	return c.RedeemQuoteWithSet(ctx, c.tokens.Snapshot(), token, shares, roundUp)
}

// RedeemQuoteWithSet implements mvc.ConversionUsecase.
//
// In floor mode (roundUp=false) the result is a safe underestimate: AUM is
// minimized, the accounting units are priced at the maximum token price and
// every division truncates. In roundUp mode each choice flips to its
// conservative opposite and one indivisible output unit is added to counter
// the truncation introduced by decimal adjustment, so the result is never
// below the floor-mode figure.
func (c *conversionUseCase) RedeemQuoteWithSet(ctx context.Context, set domain.TokenSet, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
	if err := validateVaultNative(set, token, shares); err != nil {
		return osmomath.Int{}, err
	}

	basket, err := c.shareRate.AmountForShares(ctx, shares, roundUp)
	if err != nil {
		return osmomath.Int{}, err
	}

	supply, err := c.vault.BasketSupply(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}
	if supply.IsZero() {
		return osmomath.Int{}, domain.ErrZeroBasketSupply
	}

	aum, err := c.vault.TotalValue(ctx, roundUp)
	if err != nil {
		return osmomath.Int{}, err
	}

	var accounting osmomath.Int
	if roundUp {
		accounting = ceilDiv(basket.Mul(aum), supply)
	} else {
		accounting = basket.Mul(aum).Quo(supply)
	}

	var price osmomath.Int
	if roundUp {
		price, err = c.vault.MinPrice(ctx, token)
	} else {
		price, err = c.vault.MaxPrice(ctx, token)
	}
	if err != nil {
		return osmomath.Int{}, err
	}
	if !price.IsPositive() {
		return osmomath.Int{}, domain.UnsupportedTokenError{Token: token}
	}

	var raw osmomath.Int
	if roundUp {
		raw = ceilDiv(accounting.Mul(pricePrecision), price)
	} else {
		raw = accounting.Mul(pricePrecision).Quo(price)
	}

	accountingToken, err := c.vault.AccountingToken(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}
	adjusted, err := c.vault.AdjustForDecimals(ctx, raw, accountingToken, token)
	if err != nil {
		return osmomath.Int{}, err
	}

	feeBps, err := c.vault.WithdrawFeeBasisPoints(ctx, token, accounting)
	if err != nil {
		return osmomath.Int{}, err
	}

	if roundUp {
		return ceilDiv(adjusted.Mul(basisPointsDivisor.Sub(feeBps)), basisPointsDivisor).AddRaw(1), nil
	}
	return adjusted.Mul(basisPointsDivisor.Sub(feeBps)).Quo(basisPointsDivisor), nil
}

// SharesNeededForAmount implements mvc.ConversionUsecase.
//
// Inverts the floor-mode redeem pipeline step by step with ceiling
// divisions, then applies the rounding safety margin (one indivisible unit)
// and the exchange-rate drift buffer (1 bp). Redeeming the returned share
// amount under unchanged state yields at least the requested amount.
func (c *conversionUseCase) SharesNeededForAmount(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
	if err := validateVaultNative(c.tokens.Snapshot(), token, amount); err != nil {
		return osmomath.Int{}, err
	}

	price, err := c.vault.MaxPrice(ctx, token)
	if err != nil {
		return osmomath.Int{}, err
	}
	if !price.IsPositive() {
		return osmomath.Int{}, domain.UnsupportedTokenError{Token: token}
	}

	accountingToken, err := c.vault.AccountingToken(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}

	// Fee lookup keys on the accounting-unit delta; an estimate from the
	// requested amount is sufficient for the schedule.
	estimate, err := c.vault.AdjustForDecimals(ctx, amount.Mul(price).Quo(pricePrecision), token, accountingToken)
	if err != nil {
		return osmomath.Int{}, err
	}
	feeBps, err := c.vault.WithdrawFeeBasisPoints(ctx, token, estimate)
	if err != nil {
		return osmomath.Int{}, err
	}

	gross := ceilDiv(amount.Mul(basisPointsDivisor), basisPointsDivisor.Sub(feeBps))

	adjusted, err := c.vault.AdjustForDecimals(ctx, gross, token, accountingToken)
	if err != nil {
		return osmomath.Int{}, err
	}
	// One indivisible unit covers the truncation the forward path's decimal
	// adjustment may introduce.
	adjusted = adjusted.AddRaw(1)

	accounting := ceilDiv(adjusted.Mul(price), pricePrecision)

	supply, err := c.vault.BasketSupply(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}
	if supply.IsZero() {
		return osmomath.Int{}, domain.ErrZeroBasketSupply
	}
	aum, err := c.vault.TotalValue(ctx, false)
	if err != nil {
		return osmomath.Int{}, err
	}
	if aum.IsZero() {
		return osmomath.Int{}, domain.ErrZeroBasketSupply
	}

	basket := ceilDiv(accounting.Mul(supply), aum)

	shares, err := c.shareRate.SharesForAmount(ctx, basket, true)
	if err != nil {
		return osmomath.Int{}, err
	}

	shares = shares.AddRaw(1)
	return ceilDiv(shares.Mul(basisPointsDivisor.Add(rateDriftBufferBps)), basisPointsDivisor), nil
}

// AmountNeededForShares implements mvc.ConversionUsecase.
//
// Inverts the mint pipeline with ceiling divisions plus one indivisible
// input unit. Depositing the returned amount under unchanged state mints at
// least the requested share amount.
func (c *conversionUseCase) AmountNeededForShares(ctx context.Context, token common.Address, shares osmomath.Int) (osmomath.Int, error) {
	if err := validateVaultNative(c.tokens.Snapshot(), token, shares); err != nil {
		return osmomath.Int{}, err
	}

	basket, err := c.shareRate.AmountForShares(ctx, shares, true)
	if err != nil {
		return osmomath.Int{}, err
	}

	supply, err := c.vault.BasketSupply(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}
	aum, err := c.vault.TotalValue(ctx, true)
	if err != nil {
		return osmomath.Int{}, err
	}

	afterFee := basket
	if !supply.IsZero() && !aum.IsZero() {
		afterFee = ceilDiv(basket.Mul(aum), supply)
	}

	feeBps, err := c.vault.DepositFeeBasisPoints(ctx, token, afterFee)
	if err != nil {
		return osmomath.Int{}, err
	}
	accounting := ceilDiv(afterFee.Mul(basisPointsDivisor), basisPointsDivisor.Sub(feeBps))

	accountingToken, err := c.vault.AccountingToken(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}
	raw, err := c.vault.AdjustForDecimals(ctx, accounting, accountingToken, token)
	if err != nil {
		return osmomath.Int{}, err
	}
	raw = raw.AddRaw(1)

	price, err := c.vault.MinPrice(ctx, token)
	if err != nil {
		return osmomath.Int{}, err
	}
	if !price.IsPositive() {
		return osmomath.Int{}, domain.UnsupportedTokenError{Token: token}
	}

	return ceilDiv(raw.Mul(pricePrecision), price), nil
}

// basketForAccounting converts after-fee accounting units into basket units
// pro rata against maximized AUM. Bootstraps 1:1 while the vault is empty.
func (c *conversionUseCase) basketForAccounting(ctx context.Context, afterFee osmomath.Int) (osmomath.Int, error) {
	supply, err := c.vault.BasketSupply(ctx)
	if err != nil {
		return osmomath.Int{}, err
	}
	aum, err := c.vault.TotalValue(ctx, true)
	if err != nil {
		return osmomath.Int{}, err
	}

	if supply.IsZero() || aum.IsZero() {
		return afterFee, nil
	}
	return afterFee.Mul(supply).Quo(aum), nil
}

func validateVaultNative(set domain.TokenSet, token common.Address, amount osmomath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if !set.IsVaultNative(token) {
		return domain.UnsupportedTokenError{Token: token}
	}
	return nil
}

func ceilDiv(numerator, denominator osmomath.Int) osmomath.Int {
	return numerator.Add(denominator.SubRaw(1)).Quo(denominator)
}
