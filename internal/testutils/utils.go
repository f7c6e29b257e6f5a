// Package testutils provides small hex-encoding helpers shared by tests
// and the golden-vector tooling; it carries no assertions of its own.
package testutils

import (
	"encoding/hex"
	"strings"
)

// HexToBytes converts a hex string to bytes, accepting an optional 0x
// prefix and an odd number of digits (padded with a leading zero).
func HexToBytes(hexStr string) ([]byte, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	if len(hexStr)%2 != 0 {
		hexStr = "0" + hexStr
	}
	return hex.DecodeString(hexStr)
}

// BytesToHex converts bytes to a hex string with a 0x prefix.
func BytesToHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}

// MustHexToBytes is HexToBytes for test fixtures known to be well-formed;
// it panics on malformed input rather than threading an error through
// table-driven test setup.
func MustHexToBytes(hexStr string) []byte {
	b, err := HexToBytes(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
