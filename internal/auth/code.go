package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateCode returns a random 6-digit one-time code as sent in
// confirmation and password-reset emails.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
