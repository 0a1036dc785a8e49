// Package otp generates one-time numeric codes for out-of-band delivery
// (email). Codes are uniformly random via crypto/rand; callers are expected
// to store only a hash of the code and enforce expiry and single use.
package otp
