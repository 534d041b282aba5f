package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const referencePrefix = "HUF"

const referenceCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateBookingReference builds a human-readable booking reference: a
// fixed prefix followed by a short random alphanumeric token. References
// are not checked for uniqueness against existing bookings.
func GenerateBookingReference() (string, error) {
	token, err := randomToken(6)
	if err != nil {
		return "", err
	}
	return referencePrefix + token, nil
}

func randomToken(length int) (string, error) {
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceCharset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = referenceCharset[num.Int64()]
	}
	return string(result), nil
}
