package domain

import (
	"bytes"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common"
)

// SortTokens returns the pair in canonical ascending byte order, the order
// pools store their reserves in.
func SortTokens(tokenA, tokenB common.Address) (common.Address, common.Address) {
	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) > 0 {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}

// PoolKind distinguishes the two constant-product curve variants a pair
// can be deployed with.
type PoolKind int

const (
	// PoolKindVolatile is the x*y=k curve.
	PoolKindVolatile PoolKind = iota
	// PoolKindStable is the low-slippage x^3*y + y^3*x = k curve.
	PoolKindStable
)

const (
	poolKindVolatileStr = "volatile"
	poolKindStableStr   = "stable"
)

func (k PoolKind) String() string {
	if k == PoolKindStable {
		return poolKindStableStr
	}
	return poolKindVolatileStr
}

// IsStable returns true for the stable curve.
func (k PoolKind) IsStable() bool {
	return k == PoolKindStable
}

// ParsePoolKind parses a pool kind from its string representation.
func ParsePoolKind(s string) (PoolKind, error) {
	switch strings.ToLower(s) {
	case poolKindStableStr:
		return PoolKindStable, nil
	case poolKindVolatileStr:
		return PoolKindVolatile, nil
	default:
		return 0, fmt.Errorf("invalid pool kind (%s)", s)
	}
}

// Hop is a single leg of a route: swap From into To over the pool of the
// given kind. Whether the hop is a real pool swap or a virtual vault leg is
// discovered lazily at quote/execution time, never stored on the hop.
type Hop struct {
	From common.Address `json:"from"`
	To   common.Address `json:"to"`
	Kind PoolKind       `json:"kind"`
}

func (h Hop) String() string {
	return fmt.Sprintf("%s:%s:%s", h.From.Hex(), h.To.Hex(), h.Kind)
}

// Route is an ordered sequence of hops. It carries no intrinsic validation
// beyond non-emptiness.
type Route []Hop

// TokenIn returns the input token of the route.
// Must not be called on an empty route.
func (r Route) TokenIn() common.Address {
	return r[0].From
}

// TokenOut returns the output token of the route.
// Must not be called on an empty route.
func (r Route) TokenOut() common.Address {
	return r[len(r)-1].To
}

func (r Route) String() string {
	var sb strings.Builder
	for i, hop := range r {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(hop.String())
	}
	return sb.String()
}

// TokenSet is an immutable snapshot of the vault-native token set plus the
// share token identity. A single snapshot must be used for the whole
// duration of one route evaluation so that hop classification stays
// consistent even if an administrative refresh lands concurrently.
type TokenSet struct {
	shareToken common.Address
	native     mapset.Set[common.Address]
}

// NewTokenSet creates a token set snapshot from the share token address and
// the current vault whitelist.
func NewTokenSet(shareToken common.Address, native []common.Address) TokenSet {
	return TokenSet{
		shareToken: shareToken,
		native:     mapset.NewThreadUnsafeSet(native...),
	}
}

// ShareToken returns the share token address.
func (s TokenSet) ShareToken() common.Address {
	return s.shareToken
}

// IsVaultNative returns true if the token is accepted by the vault for
// deposit/redemption. A zero-value set fails closed: nothing is native.
func (s TokenSet) IsVaultNative(token common.Address) bool {
	if s.native == nil {
		return false
	}
	return s.native.Contains(token)
}

// Tokens returns the vault-native tokens in the set.
func (s TokenSet) Tokens() []common.Address {
	if s.native == nil {
		return nil
	}
	return s.native.ToSlice()
}

// Size returns the number of vault-native tokens in the set.
func (s TokenSet) Size() int {
	if s.native == nil {
		return 0
	}
	return s.native.Cardinality()
}
