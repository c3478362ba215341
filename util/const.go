package util

const (
	// ZatoshiPerZEC is the number of zatoshi in one ZEC.
	ZatoshiPerZEC = 100_000_000

	// MaxZatoshi is the maximum monetary amount allowed in zatoshi. It is
	// the full money supply, so no valid amount can ever exceed it.
	MaxZatoshi = 21_000_000 * ZatoshiPerZEC
)
