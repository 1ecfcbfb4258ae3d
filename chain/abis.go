package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}

var erc20ABI = mustParseABI(`[
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"transfer","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`)

var wrappedNativeABI = mustParseABI(`[
	{"name":"deposit","type":"function","stateMutability":"payable","inputs":[],"outputs":[]},
	{"name":"withdraw","type":"function","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"transfer","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`)

var poolABI = mustParseABI(`[
	{"name":"token0","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"name":"token1","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"name":"getReserves","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"_reserve0","type":"uint256"},{"name":"_reserve1","type":"uint256"},{"name":"_blockTimestampLast","type":"uint256"}]},
	{"name":"totalSupply","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getAmountOut","type":"function","stateMutability":"view","inputs":[{"name":"amountIn","type":"uint256"},{"name":"tokenIn","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"swap","type":"function","stateMutability":"nonpayable","inputs":[{"name":"amount0Out","type":"uint256"},{"name":"amount1Out","type":"uint256"},{"name":"to","type":"address"},{"name":"data","type":"bytes"}],"outputs":[]},
	{"name":"mint","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"}],"outputs":[{"name":"liquidity","type":"uint256"}]},
	{"name":"burn","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"}],"outputs":[{"name":"amount0","type":"uint256"},{"name":"amount1","type":"uint256"}]}
]`)

var factoryABI = mustParseABI(`[
	{"name":"isPair","type":"function","stateMutability":"view","inputs":[{"name":"pair","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"getPair","type":"function","stateMutability":"view","inputs":[{"name":"tokenA","type":"address"},{"name":"tokenB","type":"address"},{"name":"stable","type":"bool"}],"outputs":[{"name":"","type":"address"}]},
	{"name":"createPair","type":"function","stateMutability":"nonpayable","inputs":[{"name":"tokenA","type":"address"},{"name":"tokenB","type":"address"},{"name":"stable","type":"bool"}],"outputs":[{"name":"pair","type":"address"}]}
]`)

var vaultABI = mustParseABI(`[
	{"name":"getMinPrice","type":"function","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getMaxPrice","type":"function","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"adjustForDecimals","type":"function","stateMutability":"view","inputs":[{"name":"amount","type":"uint256"},{"name":"tokenDiv","type":"address"},{"name":"tokenMul","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getDepositFeeBasisPoints","type":"function","stateMutability":"view","inputs":[{"name":"token","type":"address"},{"name":"accountingDelta","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getWithdrawFeeBasisPoints","type":"function","stateMutability":"view","inputs":[{"name":"token","type":"address"},{"name":"accountingDelta","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"allWhitelistedTokensLength","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"allWhitelistedTokens","type":"function","stateMutability":"view","inputs":[{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"name":"accountingToken","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"name":"getAum","type":"function","stateMutability":"view","inputs":[{"name":"maximize","type":"bool"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"basketSupply","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"deposit","type":"function","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"shares","type":"uint256"}]},
	{"name":"withdraw","type":"function","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"shares","type":"uint256"},{"name":"receiver","type":"address"}],"outputs":[{"name":"amount","type":"uint256"}]}
]`)

var shareRateABI = mustParseABI(`[
	{"name":"sharesForAmount","type":"function","stateMutability":"view","inputs":[{"name":"amount","type":"uint256"},{"name":"roundUp","type":"bool"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"amountForShares","type":"function","stateMutability":"view","inputs":[{"name":"shares","type":"uint256"},{"name":"roundUp","type":"bool"}],"outputs":[{"name":"","type":"uint256"}]}
]`)
