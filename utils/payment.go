package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateClientToken issues an opaque token the drop-in widget hands back
// with the charge. A real gateway would mint this server-side.
func GenerateClientToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ProcessPaymentStub simulates a successful gateway charge and returns the
// provider transaction reference.
func ProcessPaymentStub(amount float64, method, nonce string) (string, error) {
	txRef := fmt.Sprintf("PAY-%d", time.Now().UnixNano())
	return txRef, nil
}
