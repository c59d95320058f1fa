package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

var tokenAlphabetLen = big.NewInt(int64(len(tokenAlphabet)))

// RandomToken returns a URL-safe random string of the given length, drawn
// from crypto/rand.
func RandomToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}

	token := make([]byte, length)
	for i := range token {
		idx, err := rand.Int(rand.Reader, tokenAlphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		token[i] = tokenAlphabet[idx.Int64()]
	}
	return string(token), nil
}
