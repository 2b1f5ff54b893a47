package common

import "math/big"

// ParseBigInt parses a base 10 integer, returning 0 for invalid input.
func ParseBigInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return big.NewInt(0)
	}

	return i
}
