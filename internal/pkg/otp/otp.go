package otp

import (
	"crypto/rand"
	"math/big"
)

// Generator produces one-time numeric codes for email delivery.
type Generator interface {
	// Generate returns a new one-time code as a string of digits.
	Generate() (string, error)
}

// Numeric generates fixed-length numeric codes with a non-zero leading digit,
// uniformly distributed over [10^(n-1), 10^n - 1].
type Numeric struct {
	digits int
}

// NewNumeric constructs a Numeric generator. Lengths outside 4..10 fall back
// to the common 6 digits.
func NewNumeric(digits int) *Numeric {
	if digits < 4 || digits > 10 {
		digits = 6
	}

	return &Numeric{digits: digits}
}

// Generate returns a new uniformly random numeric code.
func (n *Numeric) Generate() (string, error) {
	low := int64(1)
	for i := 1; i < n.digits; i++ {
		low *= 10
	}
	span := low*10 - low // e.g. 900000 for 6 digits

	v, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", err
	}

	return big.NewInt(low + v.Int64()).String(), nil
}
