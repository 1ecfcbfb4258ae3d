package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
	"github.com/shareswap-labs/shareswap/router/types"
)

// RouterHandler  represent the httphandler for the router
type RouterHandler struct {
	RUsecase mvc.RouterUsecase
	CUsecase mvc.ConversionUsecase
	PUsecase mvc.PoolsUsecase
	logger   log.Logger
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the router/ resources endpoint
func NewRouterHandler(e *echo.Echo, us mvc.RouterUsecase, cu mvc.ConversionUsecase, pu mvc.PoolsUsecase, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase: us,
		CUsecase: cu,
		PUsecase: pu,
		logger:   logger,
	}
	e.GET(formatRouterResource("/quote"), handler.GetQuote)
	e.GET(formatRouterResource("/mint-quote"), handler.GetMintQuote)
	e.GET(formatRouterResource("/redeem-quote"), handler.GetRedeemQuote)
	e.GET(formatRouterResource("/shares-needed"), handler.GetSharesNeeded)
	e.GET(formatRouterResource("/amount-needed"), handler.GetAmountNeeded)
	e.GET(formatRouterResource("/pool"), handler.GetPool)
	e.GET(formatRouterResource("/quote-add-liquidity"), handler.GetAddLiquidityQuote)
	e.GET(formatRouterResource("/quote-remove-liquidity"), handler.GetRemoveLiquidityQuote)
	e.POST(formatRouterResource("/swap"), handler.SwapExactTokensForTokens)
	e.POST(formatRouterResource("/swap-from-eth"), handler.SwapExactETHForTokens)
	e.POST(formatRouterResource("/swap-for-eth"), handler.SwapExactTokensForETH)
	e.POST(formatRouterResource("/add-liquidity"), handler.AddLiquidity)
	e.POST(formatRouterResource("/remove-liquidity"), handler.RemoveLiquidity)
	e.POST(formatRouterResource("/add-liquidity-eth"), handler.AddLiquidityETH)
	e.POST(formatRouterResource("/remove-liquidity-eth"), handler.RemoveLiquidityETH)
}

// quoteResponse is the response for route quote requests. Amounts are the
// hop-by-hop amounts: element 0 is the input, the last element the final
// output.
type quoteResponse struct {
	Route   domain.Route   `json:"route"`
	Amounts []osmomath.Int `json:"amounts"`
}

// swapResponse is the response for executed swaps.
type swapResponse struct {
	Route     domain.Route   `json:"route"`
	Amounts   []osmomath.Int `json:"amounts"`
	AmountOut osmomath.Int   `json:"amount_out"`
}

// @Summary Route Quote
// @Description returns the hop-by-hop amounts for the given route and input amount.
// Virtual vault legs are quoted through the vault pipeline, real legs through their pools.
// @ID get-route-quote
// @Produce json
// @Param amountIn query string true "Input amount in the route's first token, integer base units."
// @Param route query string true "Comma-separated hops, each hop from:to:kind. Kind defaults to volatile."
// @Success 200 {object} quoteResponse "The quoted amounts"
// @Router /router/quote [get]
func (a *RouterHandler) GetQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.GetQuoteRequest
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	amounts, err := a.RUsecase.QuoteRoute(ctx, req.AmountIn, req.Route)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quoteResponse{Route: req.Route, Amounts: amounts})
}

// GetMintQuote returns the shares minted for depositing an amount of a
// vault-native token.
func (a *RouterHandler) GetMintQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.ConversionQuoteRequest
	if err := req.UnmarshalHTTPRequest(c, "amount"); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	shares, err := a.CUsecase.MintQuote(ctx, req.Token, req.Amount)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{"shares": shares})
}

// GetRedeemQuote returns the token amount received for redeeming shares.
func (a *RouterHandler) GetRedeemQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.ConversionQuoteRequest
	if err := req.UnmarshalHTTPRequest(c, "shares"); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	amount, err := a.CUsecase.RedeemQuote(ctx, req.Token, req.Amount, req.RoundUp)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{"amount": amount})
}

// GetSharesNeeded returns the shares that must be redeemed to receive at
// least the requested token amount.
func (a *RouterHandler) GetSharesNeeded(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.ConversionQuoteRequest
	if err := req.UnmarshalHTTPRequest(c, "amount"); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	shares, err := a.CUsecase.SharesNeededForAmount(ctx, req.Token, req.Amount)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{"shares": shares})
}

// GetAmountNeeded returns the token amount that must be deposited to mint
// at least the requested shares.
func (a *RouterHandler) GetAmountNeeded(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.ConversionQuoteRequest
	if err := req.UnmarshalHTTPRequest(c, "shares"); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	amount, err := a.CUsecase.AmountNeededForShares(ctx, req.Token, req.Amount)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{"amount": amount})
}

// poolLookupResponse is the response for deterministic pool lookups.
type poolLookupResponse struct {
	Address common.Address  `json:"address"`
	Kind    domain.PoolKind `json:"kind"`
	Exists  bool            `json:"exists"`
}

// GetPool returns the deterministic pool address for a pair and kind, and
// whether a pool is actually deployed there.
func (a *RouterHandler) GetPool(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.PoolLookupRequest
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	address := a.PUsecase.PoolFor(req.TokenA, req.TokenB, req.Kind)
	exists, err := a.PUsecase.Exists(ctx, address)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, poolLookupResponse{Address: address, Kind: req.Kind, Exists: exists})
}

// SwapExactTokensForTokens executes a route end to end.
func (a *RouterHandler) SwapExactTokensForTokens(c echo.Context) error {
	return a.swap(c, a.RUsecase.SwapExactTokensForTokens)
}

// SwapExactETHForTokens wraps the native input and executes a route that
// must start at the wrapped native token.
func (a *RouterHandler) SwapExactETHForTokens(c echo.Context) error {
	return a.swap(c, a.RUsecase.SwapExactETHForTokens)
}

// SwapExactTokensForETH executes a route that must end at the wrapped
// native token and unwraps the output to the recipient.
func (a *RouterHandler) SwapExactTokensForETH(c echo.Context) error {
	return a.swap(c, a.RUsecase.SwapExactTokensForETH)
}

func (a *RouterHandler) swap(c echo.Context, execute mvc.SwapFn) error {
	if !a.RUsecase.GetConfig().EnableExecution {
		return c.JSON(http.StatusForbidden, domain.ResponseError{Message: "swap execution is disabled"})
	}

	ctx := c.Request().Context()

	var req types.SwapRequest
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	amounts, err := execute(ctx, req.AmountIn, req.MinAmountOut, req.Route, req.To, req.Deadline)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, swapResponse{
		Route:     req.Route,
		Amounts:   amounts,
		AmountOut: amounts[len(amounts)-1],
	})
}

// GetAddLiquidityQuote quotes provisioning share-pair liquidity from an
// underlying vault-native token.
func (a *RouterHandler) GetAddLiquidityQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.AddLiquidityRequest
	if err := req.UnmarshalHTTPRequest(c, true); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.RUsecase.QuoteAddLiquidityUnderlying(ctx, req.Underlying, req.Paired, req.Kind, req.Amount)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// GetRemoveLiquidityQuote quotes unwinding share-pair liquidity back into an
// underlying vault-native token.
func (a *RouterHandler) GetRemoveLiquidityQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.RemoveLiquidityRequest
	if err := req.UnmarshalHTTPRequest(c, true); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.RUsecase.QuoteRemoveLiquidityUnderlying(ctx, req.Underlying, req.Paired, req.Kind, req.Liquidity)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// AddLiquidity executes liquidity provisioning from an underlying token.
func (a *RouterHandler) AddLiquidity(c echo.Context) error {
	if !a.RUsecase.GetConfig().EnableExecution {
		return c.JSON(http.StatusForbidden, domain.ResponseError{Message: "swap execution is disabled"})
	}

	ctx := c.Request().Context()

	var req types.AddLiquidityRequest
	if err := req.UnmarshalHTTPRequest(c, false); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	liquidity, err := a.RUsecase.AddLiquidityUnderlying(ctx, req.Underlying, req.Paired, req.Kind, req.Amount, req.MinLiquidity, req.To, req.Deadline)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{"liquidity": liquidity})
}

// AddLiquidityETH executes liquidity provisioning from the native asset.
func (a *RouterHandler) AddLiquidityETH(c echo.Context) error {
	if !a.RUsecase.GetConfig().EnableExecution {
		return c.JSON(http.StatusForbidden, domain.ResponseError{Message: "swap execution is disabled"})
	}

	ctx := c.Request().Context()

	var req types.AddLiquidityRequest
	if err := req.UnmarshalHTTPRequestETH(c); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	liquidity, err := a.RUsecase.AddLiquidityETH(ctx, req.Paired, req.Kind, req.Amount, req.MinLiquidity, req.To, req.Deadline)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{"liquidity": liquidity})
}

// RemoveLiquidityETH executes a liquidity unwind into the native asset.
func (a *RouterHandler) RemoveLiquidityETH(c echo.Context) error {
	if !a.RUsecase.GetConfig().EnableExecution {
		return c.JSON(http.StatusForbidden, domain.ResponseError{Message: "swap execution is disabled"})
	}

	ctx := c.Request().Context()

	var req types.RemoveLiquidityRequest
	if err := req.UnmarshalHTTPRequestETH(c); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	native, paired, err := a.RUsecase.RemoveLiquidityETH(ctx, req.Paired, req.Kind, req.Liquidity, req.MinUnderlying, req.MinPaired, req.To, req.Deadline)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{
		"native_amount": native,
		"paired_amount": paired,
	})
}

// RemoveLiquidity executes a liquidity unwind into an underlying token.
func (a *RouterHandler) RemoveLiquidity(c echo.Context) error {
	if !a.RUsecase.GetConfig().EnableExecution {
		return c.JSON(http.StatusForbidden, domain.ResponseError{Message: "swap execution is disabled"})
	}

	ctx := c.Request().Context()

	var req types.RemoveLiquidityRequest
	if err := req.UnmarshalHTTPRequest(c, false); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	underlying, paired, err := a.RUsecase.RemoveLiquidityUnderlying(ctx, req.Underlying, req.Paired, req.Kind, req.Liquidity, req.MinUnderlying, req.MinPaired, req.To, req.Deadline)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]osmomath.Int{
		"underlying_amount": underlying,
		"paired_amount":     paired,
	})
}
