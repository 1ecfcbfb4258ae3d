package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// ParseRoute parses a route given as a comma-separated list of hops, each
// hop in the form from:to:kind. The kind segment is optional and defaults to
// volatile.
func ParseRoute(routeStr string) (domain.Route, error) {
	if routeStr == "" {
		return nil, ErrRouteNotSpecified
	}

	hopStrs := strings.Split(routeStr, ",")
	route := make(domain.Route, 0, len(hopStrs))

	for _, hopStr := range hopStrs {
		segments := strings.Split(hopStr, ":")
		if len(segments) != 2 && len(segments) != 3 {
			return nil, ErrRouteNotValid
		}

		if !common.IsHexAddress(segments[0]) || !common.IsHexAddress(segments[1]) {
			return nil, ErrRouteNotValid
		}

		kind := domain.PoolKindVolatile
		if len(segments) == 3 {
			var err error
			kind, err = domain.ParsePoolKind(segments[2])
			if err != nil {
				return nil, ErrRouteNotValid
			}
		}

		route = append(route, domain.Hop{
			From: common.HexToAddress(segments[0]),
			To:   common.HexToAddress(segments[1]),
			Kind: kind,
		})
	}

	return route, nil
}

func parseAmount(c echo.Context, param string, invalidErr error) (osmomath.Int, error) {
	amountStr := c.QueryParam(param)
	if amountStr == "" {
		return osmomath.Int{}, ErrAmountNotSpecified
	}

	amount, ok := osmomath.NewIntFromString(amountStr)
	if !ok || !amount.IsPositive() {
		return osmomath.Int{}, invalidErr
	}
	return amount, nil
}

func parseOptionalAmount(c echo.Context, param string, invalidErr error) (osmomath.Int, error) {
	amountStr := c.QueryParam(param)
	if amountStr == "" {
		return osmomath.ZeroInt(), nil
	}

	amount, ok := osmomath.NewIntFromString(amountStr)
	if !ok || amount.IsNegative() {
		return osmomath.Int{}, invalidErr
	}
	return amount, nil
}

func parseAddress(c echo.Context, param string, invalidErr error) (common.Address, error) {
	addressStr := c.QueryParam(param)
	if !common.IsHexAddress(addressStr) {
		return common.Address{}, invalidErr
	}
	return common.HexToAddress(addressStr), nil
}

func parseDeadline(c echo.Context) (time.Time, error) {
	deadlineStr := c.QueryParam("deadline")
	if deadlineStr == "" {
		return time.Time{}, ErrDeadlineNotValid
	}

	deadlineUnix, err := strconv.ParseInt(deadlineStr, 10, 64)
	if err != nil {
		return time.Time{}, ErrDeadlineNotValid
	}
	return time.Unix(deadlineUnix, 0), nil
}

func parsePoolKind(c echo.Context) (domain.PoolKind, error) {
	kindStr := c.QueryParam("kind")
	if kindStr == "" {
		return domain.PoolKindVolatile, nil
	}

	kind, err := domain.ParsePoolKind(kindStr)
	if err != nil {
		return 0, ErrPoolKindNotValid
	}
	return kind, nil
}

// ConversionQuoteRequest represents a vault conversion quote request for
// the /router/mint-quote family of endpoints. amountParam names the query
// parameter carrying the amount (amount or shares depending on direction).
type ConversionQuoteRequest struct {
	Token   common.Address
	Amount  osmomath.Int
	RoundUp bool
}

func (r *ConversionQuoteRequest) UnmarshalHTTPRequest(c echo.Context, amountParam string) error {
	var err error
	r.Token, err = parseAddress(c, "token", ErrTokenNotValid)
	if err != nil {
		return err
	}

	r.Amount, err = parseAmount(c, amountParam, ErrAmountNotValid)
	if err != nil {
		return err
	}

	if roundUpStr := c.QueryParam("roundUp"); roundUpStr != "" {
		r.RoundUp, err = strconv.ParseBool(roundUpStr)
		if err != nil {
			return ErrRoundUpNotValid
		}
	}
	return nil
}

// PoolLookupRequest represents a deterministic pool lookup request for the
// /router/pool endpoint.
type PoolLookupRequest struct {
	TokenA common.Address
	TokenB common.Address
	Kind   domain.PoolKind
}

func (r *PoolLookupRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	r.TokenA, err = parseAddress(c, "tokenA", ErrTokenNotValid)
	if err != nil {
		return err
	}

	r.TokenB, err = parseAddress(c, "tokenB", ErrTokenNotValid)
	if err != nil {
		return err
	}

	r.Kind, err = parsePoolKind(c)
	return err
}

// GetQuoteRequest represents a route quote request for the /router/quote
// endpoint.
type GetQuoteRequest struct {
	AmountIn osmomath.Int
	Route    domain.Route
}

func (r *GetQuoteRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	r.AmountIn, err = parseAmount(c, "amountIn", ErrAmountNotValid)
	if err != nil {
		return err
	}

	r.Route, err = ParseRoute(c.QueryParam("route"))
	return err
}

// SwapRequest represents a swap execution request for the /router/swap
// endpoints.
type SwapRequest struct {
	AmountIn     osmomath.Int
	MinAmountOut osmomath.Int
	Route        domain.Route
	To           common.Address
	Deadline     time.Time
}

func (r *SwapRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	r.AmountIn, err = parseAmount(c, "amountIn", ErrAmountNotValid)
	if err != nil {
		return err
	}

	r.MinAmountOut, err = parseOptionalAmount(c, "minAmountOut", ErrMinAmountOutNotValid)
	if err != nil {
		return err
	}

	r.Route, err = ParseRoute(c.QueryParam("route"))
	if err != nil {
		return err
	}

	r.To, err = parseAddress(c, "to", ErrRecipientNotValid)
	if err != nil {
		return err
	}

	r.Deadline, err = parseDeadline(c)
	return err
}

// AddLiquidityRequest represents a liquidity provisioning request for the
// /router/add-liquidity endpoint. Quote requests use the same shape with
// MinLiquidity, To and Deadline ignored.
type AddLiquidityRequest struct {
	Underlying   common.Address
	Paired       common.Address
	Kind         domain.PoolKind
	Amount       osmomath.Int
	MinLiquidity osmomath.Int
	To           common.Address
	Deadline     time.Time
}

func (r *AddLiquidityRequest) UnmarshalHTTPRequest(c echo.Context, quoteOnly bool) error {
	var err error
	r.Underlying, err = parseAddress(c, "underlying", ErrTokenNotValid)
	if err != nil {
		return err
	}
	return r.unmarshalCommon(c, quoteOnly)
}

// UnmarshalHTTPRequestETH parses the native-asset variant; there is no
// underlying parameter, the wrapped native token takes its place.
func (r *AddLiquidityRequest) UnmarshalHTTPRequestETH(c echo.Context) error {
	return r.unmarshalCommon(c, false)
}

func (r *AddLiquidityRequest) unmarshalCommon(c echo.Context, quoteOnly bool) error {
	var err error
	r.Paired, err = parseAddress(c, "paired", ErrTokenNotValid)
	if err != nil {
		return err
	}

	r.Kind, err = parsePoolKind(c)
	if err != nil {
		return err
	}

	r.Amount, err = parseAmount(c, "amount", ErrAmountNotValid)
	if err != nil {
		return err
	}

	if quoteOnly {
		return nil
	}

	r.MinLiquidity, err = parseOptionalAmount(c, "minLiquidity", ErrMinLiquidityNotValid)
	if err != nil {
		return err
	}

	r.To, err = parseAddress(c, "to", ErrRecipientNotValid)
	if err != nil {
		return err
	}

	r.Deadline, err = parseDeadline(c)
	return err
}

// RemoveLiquidityRequest represents a liquidity unwind request for the
// /router/remove-liquidity endpoint.
type RemoveLiquidityRequest struct {
	Underlying    common.Address
	Paired        common.Address
	Kind          domain.PoolKind
	Liquidity     osmomath.Int
	MinUnderlying osmomath.Int
	MinPaired     osmomath.Int
	To            common.Address
	Deadline      time.Time
}

func (r *RemoveLiquidityRequest) UnmarshalHTTPRequest(c echo.Context, quoteOnly bool) error {
	var err error
	r.Underlying, err = parseAddress(c, "underlying", ErrTokenNotValid)
	if err != nil {
		return err
	}
	return r.unmarshalCommon(c, quoteOnly)
}

// UnmarshalHTTPRequestETH parses the native-asset variant; there is no
// underlying parameter, the wrapped native token takes its place.
func (r *RemoveLiquidityRequest) UnmarshalHTTPRequestETH(c echo.Context) error {
	return r.unmarshalCommon(c, false)
}

func (r *RemoveLiquidityRequest) unmarshalCommon(c echo.Context, quoteOnly bool) error {
	var err error
	r.Paired, err = parseAddress(c, "paired", ErrTokenNotValid)
	if err != nil {
		return err
	}

	r.Kind, err = parsePoolKind(c)
	if err != nil {
		return err
	}

	r.Liquidity, err = parseAmount(c, "liquidity", ErrLiquidityNotValid)
	if err != nil {
		return err
	}

	if quoteOnly {
		return nil
	}

	r.MinUnderlying, err = parseOptionalAmount(c, "minUnderlying", ErrMinUnderlyingNotValid)
	if err != nil {
		return err
	}

	r.MinPaired, err = parseOptionalAmount(c, "minPaired", ErrMinPairedNotValid)
	if err != nil {
		return err
	}

	r.To, err = parseAddress(c, "to", ErrRecipientNotValid)
	if err != nil {
		return err
	}

	r.Deadline, err = parseDeadline(c)
	return err
}
