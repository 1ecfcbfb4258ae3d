package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mocks"
	"github.com/shareswap-labs/shareswap/log"
	routerdelivery "github.com/shareswap-labs/shareswap/router/delivery/http"
)

const (
	addrA     = "0x3000000000000000000000000000000000000001"
	addrB     = "0x3000000000000000000000000000000000000002"
	recipient = "0x4000000000000000000000000000000000000001"
)

func newHandler(t *testing.T, usecase *mocks.RouterUsecaseMock) *routerdelivery.RouterHandler {
	t.Helper()
	return &routerdelivery.RouterHandler{
		RUsecase: usecase,
	}
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestGetQuote(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		QuoteRouteFunc: func(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error) {
			require.Equal(t, osmomath.NewInt(1000), amountIn)
			require.Len(t, route, 1)
			return []osmomath.Int{amountIn, osmomath.NewInt(990)}, nil
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.GetQuote, http.MethodGet, url.Values{
		"amountIn": {"1000"},
		"route":    {addrA + ":" + addrB + ":volatile"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "990")
}

func TestGetQuote_BadRequest(t *testing.T) {
	handler := newHandler(t, &mocks.RouterUsecaseMock{})

	rec := doRequest(t, handler.GetQuote, http.MethodGet, url.Values{
		"amountIn": {"not-a-number"},
		"route":    {addrA + ":" + addrB},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuote_UsecaseErrorMapsToStatus(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		QuoteRouteFunc: func(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error) {
			return nil, domain.PoolNotFoundError{
				TokenA: common.HexToAddress(addrA),
				TokenB: common.HexToAddress(addrB),
			}
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.GetQuote, http.MethodGet, url.Values{
		"amountIn": {"1000"},
		"route":    {addrA + ":" + addrB},
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwap_ExecutionDisabled(t *testing.T) {
	handler := newHandler(t, &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: false}
		},
	})

	rec := doRequest(t, handler.SwapExactTokensForTokens, http.MethodPost, url.Values{})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSwap(t *testing.T) {
	called := false
	usecase := &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: true}
		},
		SwapExactTokensForTokensFunc: func(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
			called = true
			require.Equal(t, osmomath.NewInt(500), amountIn)
			require.Equal(t, osmomath.NewInt(490), minAmountOut)
			require.Equal(t, common.HexToAddress(recipient), to)
			require.Equal(t, time.Unix(1717243200, 0), deadline)
			return []osmomath.Int{amountIn, osmomath.NewInt(495)}, nil
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.SwapExactTokensForTokens, http.MethodPost, url.Values{
		"amountIn":     {"500"},
		"minAmountOut": {"490"},
		"route":        {addrA + ":" + addrB},
		"to":           {recipient},
		"deadline":     {"1717243200"},
	})

	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "amount_out")
	require.Contains(t, rec.Body.String(), "495")
}

func TestSwap_InsufficientOutputIsBadRequest(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: true}
		},
		SwapExactTokensForTokensFunc: func(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
			return nil, domain.InsufficientOutputError{
				MinAmountOut:    osmomath.NewInt(490),
				ActualAmountOut: osmomath.NewInt(480),
			}
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.SwapExactTokensForTokens, http.MethodPost, url.Values{
		"amountIn": {"500"},
		"route":    {addrA + ":" + addrB},
		"to":       {recipient},
		"deadline": {"1717243200"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "insufficient output")
}

func TestGetAddLiquidityQuote(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		QuoteAddLiquidityUnderlyingFunc: func(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount osmomath.Int) (domain.AddLiquidityQuote, error) {
			return domain.AddLiquidityQuote{
				Shares:       osmomath.NewInt(10),
				PairedAmount: osmomath.NewInt(11),
				Liquidity:    osmomath.NewInt(12),
			}, nil
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.GetAddLiquidityQuote, http.MethodGet, url.Values{
		"underlying": {addrA},
		"paired":     {addrB},
		"amount":     {"1000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	for _, field := range []string{"shares", "paired_amount", "liquidity"} {
		require.True(t, strings.Contains(rec.Body.String(), field), "missing %q in %s", field, rec.Body.String())
	}
}

func TestRemoveLiquidity(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: true}
		},
		RemoveLiquidityUnderlyingFunc: func(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity, minUnderlying, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error) {
			return osmomath.NewInt(7), osmomath.NewInt(8), nil
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.RemoveLiquidity, http.MethodPost, url.Values{
		"underlying": {addrA},
		"paired":     {addrB},
		"liquidity":  {"100"},
		"to":         {recipient},
		"deadline":   {"1717243200"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "underlying_amount")
}

func TestGetMintQuote(t *testing.T) {
	conversion := &mocks.ConversionUsecaseMock{
		MintQuoteFunc: func(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
			require.Equal(t, common.HexToAddress(addrA), token)
			require.Equal(t, osmomath.NewInt(1000), amount)
			return osmomath.NewInt(997), nil
		},
	}
	handler := &routerdelivery.RouterHandler{CUsecase: conversion}

	rec := doRequest(t, handler.GetMintQuote, http.MethodGet, url.Values{
		"token":  {addrA},
		"amount": {"1000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "shares")
	require.Contains(t, rec.Body.String(), "997")
}

func TestGetRedeemQuote_RoundUp(t *testing.T) {
	conversion := &mocks.ConversionUsecaseMock{
		RedeemQuoteFunc: func(ctx context.Context, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
			require.True(t, roundUp)
			return osmomath.NewInt(1003), nil
		},
	}
	handler := &routerdelivery.RouterHandler{CUsecase: conversion}

	rec := doRequest(t, handler.GetRedeemQuote, http.MethodGet, url.Values{
		"token":   {addrA},
		"shares":  {"1000"},
		"roundUp": {"true"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "1003")
}

func TestGetMintQuote_UnsupportedTokenIsBadRequest(t *testing.T) {
	conversion := &mocks.ConversionUsecaseMock{
		MintQuoteFunc: func(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
			return osmomath.Int{}, domain.UnsupportedTokenError{Token: token}
		},
	}
	handler := &routerdelivery.RouterHandler{CUsecase: conversion}

	rec := doRequest(t, handler.GetMintQuote, http.MethodGet, url.Values{
		"token":  {addrA},
		"amount": {"1000"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPool(t *testing.T) {
	poolAddr := common.HexToAddress("0x5000000000000000000000000000000000000001")
	pools := &mocks.PoolsUsecaseMock{
		PoolForFunc: func(tokenA, tokenB common.Address, kind domain.PoolKind) common.Address {
			require.Equal(t, domain.PoolKindStable, kind)
			return poolAddr
		},
		ExistsFunc: func(ctx context.Context, pool common.Address) (bool, error) {
			require.Equal(t, poolAddr, pool)
			return true, nil
		},
	}
	handler := &routerdelivery.RouterHandler{PUsecase: pools}

	rec := doRequest(t, handler.GetPool, http.MethodGet, url.Values{
		"tokenA": {addrA},
		"tokenB": {addrB},
		"kind":   {"stable"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "exists")
	require.Contains(t, strings.ToLower(rec.Body.String()), strings.ToLower(poolAddr.Hex()))
}

// NewRouterHandler registers routes without panicking and the registered
// quote route behaves like the direct handler call.
func TestNewRouterHandler_Registers(t *testing.T) {
	e := echo.New()
	routerdelivery.NewRouterHandler(e, &mocks.RouterUsecaseMock{
		QuoteRouteFunc: func(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error) {
			return []osmomath.Int{amountIn}, nil
		},
	}, &mocks.ConversionUsecaseMock{}, &mocks.PoolsUsecaseMock{}, log.NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/router/quote?amountIn=5&route="+addrA+":"+addrB, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAddLiquidityETH(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: true}
		},
		AddLiquidityETHFunc: func(ctx context.Context, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error) {
			require.Equal(t, common.HexToAddress(addrB), paired)
			require.Equal(t, osmomath.NewInt(1000), amount)
			return osmomath.NewInt(42), nil
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.AddLiquidityETH, http.MethodPost, url.Values{
		"paired":   {addrB},
		"amount":   {"1000"},
		"to":       {recipient},
		"deadline": {"1717243200"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "liquidity")
	require.Contains(t, rec.Body.String(), "42")
}

func TestRemoveLiquidityETH(t *testing.T) {
	usecase := &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: true}
		},
		RemoveLiquidityETHFunc: func(ctx context.Context, paired common.Address, kind domain.PoolKind, liquidity, minNative, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error) {
			return osmomath.NewInt(7), osmomath.NewInt(8), nil
		},
	}
	handler := newHandler(t, usecase)

	rec := doRequest(t, handler.RemoveLiquidityETH, http.MethodPost, url.Values{
		"paired":    {addrB},
		"liquidity": {"100"},
		"to":        {recipient},
		"deadline":  {"1717243200"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "native_amount")
}

func TestAddLiquidityETH_ExecutionDisabled(t *testing.T) {
	handler := newHandler(t, &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{EnableExecution: false}
		},
	})

	rec := doRequest(t, handler.AddLiquidityETH, http.MethodPost, url.Values{})
	require.Equal(t, http.StatusForbidden, rec.Code)
}
