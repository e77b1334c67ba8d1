package token

import (
	"crypto/rand"
	"math/big"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

// tokenLength gives well over 120 bits of entropy at a 64-symbol alphabet,
// enough that brute-force guessing and collisions are both infeasible.
const tokenLength = 21

var tokenAlphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-")

type generator struct{}

// NewGenerator returns a TokenGenerator producing URL-safe random tokens.
func NewGenerator() domain.TokenGenerator {
	return &generator{}
}

func (g *generator) Generate() (string, error) {
	b := make([]rune, tokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < tokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b), nil
}
