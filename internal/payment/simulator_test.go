package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharge(t *testing.T) {
	tests := []struct {
		name   string
		card   string
		amount int
		want   error
	}{
		{"valid card", "4111111111111111", 5000, nil},
		{"spaces and dashes are stripped", "4111 1111-1111 1111", 5000, nil},
		{"zero amount", "4111111111111111", 0, ErrInvalidAmount},
		{"negative amount", "4111111111111111", -100, ErrInvalidAmount},
		{"empty card", "", 5000, ErrInvalidCard},
		{"too short", "411111111111", 5000, ErrInvalidCard},
		{"too long", "41111111111111111111", 5000, ErrInvalidCard},
		{"non-digit characters", "4111x11111111111", 5000, ErrInvalidCard},
		{"declined suffix", "4111111111110000", 5000, ErrCardDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Charge(tt.card, tt.amount)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
