package test

import (
	"math/rand"
	"strings"
)

const (
	alphanumeric   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	couponAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RandomASCIIString returns an alphanumeric string with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)
	return randomFrom(alphanumeric, minLen+rand.Intn(maxLen-minLen+1))
}

// RandomCouponCode returns a code shaped like the ones partners issue, e.g. K7QF-29XM.
func RandomCouponCode() string {
	return randomFrom(couponAlphabet, 4) + "-" + randomFrom(couponAlphabet, 4)
}

func randomFrom(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}
