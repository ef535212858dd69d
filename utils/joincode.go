package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Alphabet for team join codes. 0/O and 1/I are excluded so codes survive
// being read aloud or copied by hand.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateJoinCode returns a random uppercase code of the given length
func GenerateJoinCode(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(joinCodeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(joinCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// NormalizeJoinCode uppercases and trims a user-supplied code so lookups are
// case-insensitive
func NormalizeJoinCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
