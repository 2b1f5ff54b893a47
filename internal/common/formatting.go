package common

// ShortenAddress keeps the first and last length characters of a bech32
// address, e.g. "inj1qy09gs...5agdmqgnyr". Short strings are returned as is.
func ShortenAddress(addr string, length int) string {
	if length <= 0 || len(addr) <= length*2+3 {
		return addr
	}

	return addr[:length] + "..." + addr[len(addr)-length:]
}
