// Package payment simulates card charges for demo flows. There is no real
// gateway; the rules are deterministic so rejected-payment paths stay
// testable.
package payment

import (
	"errors"
	"strings"
	"unicode"
)

const ModeSimulated = "simulated"

// DefaultCardNumber is used when a booking request does not carry a card.
const DefaultCardNumber = "4111111111111111"

var (
	ErrInvalidAmount = errors.New("payment failed: invalid amount")
	ErrInvalidCard   = errors.New("payment failed: invalid card number")
	ErrCardDeclined  = errors.New("payment failed: card declined")
)

// Charge validates the card and amount and "charges" the card. Amount is
// in cents. Card numbers ending in 0000 are always declined, which gives
// clients a deterministic failure path.
func Charge(cardNumber string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	normalized := strings.NewReplacer(" ", "", "-", "").Replace(cardNumber)
	if !allDigits(normalized) || len(normalized) < 13 || len(normalized) > 19 {
		return ErrInvalidCard
	}
	if strings.HasSuffix(normalized, "0000") {
		return ErrCardDeclined
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
