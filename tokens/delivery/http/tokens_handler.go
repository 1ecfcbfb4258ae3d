package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
)

// TokensHandler  represent the httphandler for the vault-native token set
type TokensHandler struct {
	TUsecase mvc.TokenSetUsecase
	logger   log.Logger
}

const resourcePrefix = "/tokens"

func formatTokensResource(resource string) string {
	return resourcePrefix + resource
}

// NewTokensHandler will initialize the tokens/ resources endpoint
func NewTokensHandler(e *echo.Echo, us mvc.TokenSetUsecase, logger log.Logger) {
	handler := &TokensHandler{
		TUsecase: us,
		logger:   logger,
	}
	e.GET(formatTokensResource("/vault-native"), handler.GetVaultNativeTokens)
	e.GET(formatTokensResource("/is-vault-native"), handler.GetIsVaultNative)
	e.POST(formatTokensResource("/refresh"), handler.RefreshTokenSet)
}

type tokenSetResponse struct {
	ShareToken common.Address   `json:"share_token"`
	Tokens     []common.Address `json:"tokens"`
}

// GetVaultNativeTokens returns the share token plus the current vault-native
// token set.
func (a *TokensHandler) GetVaultNativeTokens(c echo.Context) error {
	set := a.TUsecase.Snapshot()

	return c.JSON(http.StatusOK, tokenSetResponse{
		ShareToken: set.ShareToken(),
		Tokens:     set.Tokens(),
	})
}

// GetIsVaultNative returns whether the given token is accepted by the vault
// for deposit and redemption.
func (a *TokensHandler) GetIsVaultNative(c echo.Context) error {
	tokenStr := c.QueryParam("token")
	if !common.IsHexAddress(tokenStr) {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "token is invalid - must be a hex address"})
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"is_vault_native": a.TUsecase.IsVaultNative(common.HexToAddress(tokenStr)),
	})
}

// RefreshTokenSet re-reads the vault whitelist. In-flight route evaluations
// keep the snapshot they started with.
func (a *TokensHandler) RefreshTokenSet(c echo.Context) error {
	if err := a.TUsecase.Refresh(c.Request().Context()); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]int{"token_count": a.TUsecase.Snapshot().Size()})
}
