package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const digitCharset = "0123456789"

// RandomString draws n characters from charset using crypto/rand.
func RandomString(charset string, n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	if charset == "" {
		return "", errors.New("empty charset")
	}
	var sb strings.Builder
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateInvoiceNumber returns "INV-" followed by four random digits.
func GenerateInvoiceNumber() (string, error) {
	digits, err := RandomString(digitCharset, 4)
	if err != nil {
		return "", err
	}
	return "INV-" + digits, nil
}
