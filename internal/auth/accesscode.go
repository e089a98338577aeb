package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// codeAlphabet omits characters that are easy to confuse when read aloud
// or typed from an email (0/O, 1/I/L).
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeGroupLen = 4

// GenerateAccessCode returns a code such as "TL-7KQ4-M9XD".
func GenerateAccessCode(prefix string) (string, error) {
	groups := make([]string, 0, 3)
	if p := NormalizeAccessCode(prefix); p != "" {
		groups = append(groups, p)
	}

	max := big.NewInt(int64(len(codeAlphabet)))
	for range 2 {
		var b strings.Builder
		for range codeGroupLen {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("generate access code: %w", err)
			}
			b.WriteByte(codeAlphabet[n.Int64()])
		}
		groups = append(groups, b.String())
	}

	return strings.Join(groups, "-"), nil
}

// NormalizeAccessCode trims and upper-cases user input.
func NormalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
