package domain

// LegKind is the strategy a hop resolves to once classified against the
// vault-native token set.
type LegKind int

const (
	// LegRealSwap is a swap over a deployed constant-product pool.
	LegRealSwap LegKind = iota
	// LegMint is a virtual leg depositing a vault-native token for shares.
	LegMint
	// LegRedeem is a virtual leg redeeming shares for a vault-native token.
	LegRedeem
)

func (k LegKind) String() string {
	switch k {
	case LegMint:
		return "mint"
	case LegRedeem:
		return "redeem"
	default:
		return "real-swap"
	}
}

// IsVirtual returns true if the leg is settled against the vault rather
// than a real pool.
func (k LegKind) IsVirtual() bool {
	return k == LegMint || k == LegRedeem
}

// ClassifyHop resolves a hop into one of three mutually exclusive leg
// strategies. The same classification is used by the quoter and the
// executor so that both walk the route identically:
//   - share token -> vault-native token: redeem
//   - vault-native token -> share token: mint
//   - anything else: real pool swap
//
// Note that a hop touching the share token whose counterpart is not
// vault-native is a real swap: the share token trades in real pools too.
func ClassifyHop(hop Hop, set TokenSet) LegKind {
	if hop.From == set.ShareToken() && set.IsVaultNative(hop.To) {
		return LegRedeem
	}
	if hop.To == set.ShareToken() && set.IsVaultNative(hop.From) {
		return LegMint
	}
	return LegRealSwap
}
