package mocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
)

var _ mvc.TokenSetUsecase = &TokenSetUsecaseMock{}

// TokenSetUsecaseMock is a mock implementation of the TokenSetUsecase
// interface. If Set is configured, Snapshot, IsVaultNative and ShareToken
// answer from it directly.
type TokenSetUsecaseMock struct {
	Set domain.TokenSet

	RefreshFunc  func(ctx context.Context) error
	SnapshotFunc func() domain.TokenSet
}

func (m *TokenSetUsecaseMock) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

func (m *TokenSetUsecaseMock) Snapshot() domain.TokenSet {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return m.Set
}

func (m *TokenSetUsecaseMock) IsVaultNative(token common.Address) bool {
	return m.Snapshot().IsVaultNative(token)
}

func (m *TokenSetUsecaseMock) ShareToken() common.Address {
	return m.Snapshot().ShareToken()
}
