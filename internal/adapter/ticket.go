package adapter

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-wu-catalog/internal/utils"
)

// checkTicket rejects an account ticket that is a JWT whose exp claim lies
// in the past. The signature is not verified; the service does that. Opaque
// tickets and tokens without exp pass through unchanged.
func checkTicket(ticket string, now time.Time) error {
	exp, ok, err := utils.JWTExpiration(ticket)
	if err != nil || !ok {
		return nil
	}
	if exp.Before(now) {
		return fmt.Errorf("%w: expired at %s", ErrTicketExpired, exp.UTC().Format(time.RFC3339))
	}

	return nil
}
