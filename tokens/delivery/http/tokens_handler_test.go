package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mocks"
	tokensdelivery "github.com/shareswap-labs/shareswap/tokens/delivery/http"
)

var (
	shareToken  = common.HexToAddress("0x2000000000000000000000000000000000000001")
	nativeToken = common.HexToAddress("0x2000000000000000000000000000000000000002")
	otherToken  = common.HexToAddress("0x2000000000000000000000000000000000000003")
)

func doRequest(t *testing.T, handler echo.HandlerFunc, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestGetVaultNativeTokens(t *testing.T) {
	handler := &tokensdelivery.TokensHandler{
		TUsecase: &mocks.TokenSetUsecaseMock{
			Set: domain.NewTokenSet(shareToken, []common.Address{nativeToken}),
		},
	}

	rec := doRequest(t, handler.GetVaultNativeTokens, url.Values{})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "share_token")
	require.Contains(t, rec.Body.String(), nativeToken.Hex())
}

func TestGetIsVaultNative(t *testing.T) {
	handler := &tokensdelivery.TokensHandler{
		TUsecase: &mocks.TokenSetUsecaseMock{
			Set: domain.NewTokenSet(shareToken, []common.Address{nativeToken}),
		},
	}

	rec := doRequest(t, handler.GetIsVaultNative, url.Values{"token": {nativeToken.Hex()}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "true")

	rec = doRequest(t, handler.GetIsVaultNative, url.Values{"token": {otherToken.Hex()}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "false")

	rec = doRequest(t, handler.GetIsVaultNative, url.Values{"token": {"nothex"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshTokenSet(t *testing.T) {
	refreshed := false
	handler := &tokensdelivery.TokensHandler{
		TUsecase: &mocks.TokenSetUsecaseMock{
			Set: domain.NewTokenSet(shareToken, []common.Address{nativeToken, otherToken}),
			RefreshFunc: func(ctx context.Context) error {
				refreshed = true
				return nil
			},
		},
	}

	rec := doRequest(t, handler.RefreshTokenSet, url.Values{})

	require.True(t, refreshed)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "2")
}

func TestRefreshTokenSet_Error(t *testing.T) {
	handler := &tokensdelivery.TokensHandler{
		TUsecase: &mocks.TokenSetUsecaseMock{
			RefreshFunc: func(ctx context.Context) error {
				return errors.New("whitelist read failed")
			},
		},
	}

	rec := doRequest(t, handler.RefreshTokenSet, url.Values{})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
