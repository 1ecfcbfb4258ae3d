package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// Vault is the bound share-token vault contract.
type Vault struct {
	contract   *bind.BoundContract
	transactor *Transactor
}

var _ domain.Vault = &Vault{}

// NewVault binds the vault at the given address.
func NewVault(address common.Address, client *Client, transactor *Transactor) *Vault {
	eth := client.Backend()
	return &Vault{
		contract:   bind.NewBoundContract(address, vaultABI, eth, eth, eth),
		transactor: transactor,
	}
}

func (v *Vault) callInt(ctx context.Context, method string, args ...interface{}) (osmomath.Int, error) {
	var out []interface{}
	if err := v.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return osmomath.Int{}, err
	}
	return osmomath.NewIntFromBigInt(out[0].(*big.Int)), nil
}

// MinPrice implements domain.Vault.
func (v *Vault) MinPrice(ctx context.Context, token common.Address) (osmomath.Int, error) {
	return v.callInt(ctx, "getMinPrice", token)
}

// MaxPrice implements domain.Vault.
func (v *Vault) MaxPrice(ctx context.Context, token common.Address) (osmomath.Int, error) {
	return v.callInt(ctx, "getMaxPrice", token)
}

// AdjustForDecimals implements domain.Vault.
func (v *Vault) AdjustForDecimals(ctx context.Context, amount osmomath.Int, tokenDiv, tokenMul common.Address) (osmomath.Int, error) {
	return v.callInt(ctx, "adjustForDecimals", amount.BigInt(), tokenDiv, tokenMul)
}

// DepositFeeBasisPoints implements domain.Vault.
func (v *Vault) DepositFeeBasisPoints(ctx context.Context, token common.Address, accountingDelta osmomath.Int) (osmomath.Int, error) {
	return v.callInt(ctx, "getDepositFeeBasisPoints", token, accountingDelta.BigInt())
}

// WithdrawFeeBasisPoints implements domain.Vault.
func (v *Vault) WithdrawFeeBasisPoints(ctx context.Context, token common.Address, accountingDelta osmomath.Int) (osmomath.Int, error) {
	return v.callInt(ctx, "getWithdrawFeeBasisPoints", token, accountingDelta.BigInt())
}

// WhitelistedTokens implements domain.Vault. The on-chain whitelist is an
// indexed array, read back one entry at a time.
func (v *Vault) WhitelistedTokens(ctx context.Context) ([]common.Address, error) {
	length, err := v.callInt(ctx, "allWhitelistedTokensLength")
	if err != nil {
		return nil, err
	}

	count := length.Int64()
	tokens := make([]common.Address, 0, count)
	for i := int64(0); i < count; i++ {
		var out []interface{}
		if err := v.contract.Call(&bind.CallOpts{Context: ctx}, &out, "allWhitelistedTokens", big.NewInt(i)); err != nil {
			return nil, err
		}
		tokens = append(tokens, out[0].(common.Address))
	}
	return tokens, nil
}

// AccountingToken implements domain.Vault.
func (v *Vault) AccountingToken(ctx context.Context) (common.Address, error) {
	var out []interface{}
	if err := v.contract.Call(&bind.CallOpts{Context: ctx}, &out, "accountingToken"); err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// TotalValue implements domain.Vault.
func (v *Vault) TotalValue(ctx context.Context, maximize bool) (osmomath.Int, error) {
	return v.callInt(ctx, "getAum", maximize)
}

// BasketSupply implements domain.Vault.
func (v *Vault) BasketSupply(ctx context.Context) (osmomath.Int, error) {
	return v.callInt(ctx, "basketSupply")
}

// Deposit implements domain.Vault.
func (v *Vault) Deposit(ctx context.Context, token common.Address, amount osmomath.Int) error {
	opts, err := v.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	tx, err := v.contract.Transact(opts, "deposit", token, amount.BigInt())
	return v.transactor.Submit(ctx, tx, err)
}

// Withdraw implements domain.Vault.
func (v *Vault) Withdraw(ctx context.Context, token common.Address, shares osmomath.Int, receiver common.Address) error {
	opts, err := v.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	tx, err := v.contract.Transact(opts, "withdraw", token, shares.BigInt(), receiver)
	return v.transactor.Submit(ctx, tx, err)
}

// ShareRateClient is the bound share/basket exchange rate contract.
type ShareRateClient struct {
	contract *bind.BoundContract
}

var _ domain.ShareRate = &ShareRateClient{}

// NewShareRateClient binds the rate contract at the given address.
func NewShareRateClient(address common.Address, client *Client) *ShareRateClient {
	eth := client.Backend()
	return &ShareRateClient{
		contract: bind.NewBoundContract(address, shareRateABI, eth, eth, eth),
	}
}

// SharesForAmount implements domain.ShareRate.
func (s *ShareRateClient) SharesForAmount(ctx context.Context, amount osmomath.Int, roundUp bool) (osmomath.Int, error) {
	var out []interface{}
	if err := s.contract.Call(&bind.CallOpts{Context: ctx}, &out, "sharesForAmount", amount.BigInt(), roundUp); err != nil {
		return osmomath.Int{}, err
	}
	return osmomath.NewIntFromBigInt(out[0].(*big.Int)), nil
}

// AmountForShares implements domain.ShareRate.
func (s *ShareRateClient) AmountForShares(ctx context.Context, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
	var out []interface{}
	if err := s.contract.Call(&bind.CallOpts{Context: ctx}, &out, "amountForShares", shares.BigInt(), roundUp); err != nil {
		return osmomath.Int{}, err
	}
	return osmomath.NewIntFromBigInt(out[0].(*big.Int)), nil
}
