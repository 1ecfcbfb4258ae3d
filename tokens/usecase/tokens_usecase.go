package usecase

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
)

type tokenSetUseCase struct {
	mu sync.RWMutex

	shareToken common.Address
	set        domain.TokenSet

	vault  domain.Vault
	logger log.Logger
}

var _ mvc.TokenSetUsecase = &tokenSetUseCase{}

// NewTokenSetUsecase creates the vault-native token set registry. The set
// starts empty and fails closed until the first Refresh.
func NewTokenSetUsecase(shareToken common.Address, vault domain.Vault, logger log.Logger) mvc.TokenSetUsecase {
	return &tokenSetUseCase{
		shareToken: shareToken,
		set:        domain.NewTokenSet(shareToken, nil),
		vault:      vault,
		logger:     logger,
	}
}

// Refresh implements mvc.TokenSetUsecase. It replaces the set wholesale;
// snapshots handed out earlier are unaffected.
func (t *tokenSetUseCase) Refresh(ctx context.Context) error {
	whitelist, err := t.vault.WhitelistedTokens(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.set = domain.NewTokenSet(t.shareToken, whitelist)
	t.mu.Unlock()

	t.logger.Info("refreshed vault-native token set", zap.Int("token_count", len(whitelist)))
	return nil
}

// Snapshot implements mvc.TokenSetUsecase.
func (t *tokenSetUseCase) Snapshot() domain.TokenSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.set
}

// IsVaultNative implements mvc.TokenSetUsecase.
func (t *tokenSetUseCase) IsVaultNative(token common.Address) bool {
	return t.Snapshot().IsVaultNative(token)
}

// ShareToken implements mvc.TokenSetUsecase.
func (t *tokenSetUseCase) ShareToken() common.Address {
	return t.shareToken
}
