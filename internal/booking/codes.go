package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const ticketCodeBytes = 8

// NewTicketCode returns a 16-character uppercase hex code. 64 bits of
// entropy keeps a unique-index violation exceptional rather than expected;
// the insert path still retries under a savepoint if one ever happens.
func NewTicketCode() (string, error) {
	buf := make([]byte, ticketCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate ticket code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
