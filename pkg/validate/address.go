package validate

import (
	"fmt"
	"regexp"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

const maxAddressLen = 128

var addressRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.:-]*$`)

func IsAddress(s string) bool {
	return len(s) <= maxAddressLen && addressRe.MatchString(s)
}

// Address returns domain.ErrInvalidAddress for identities the ledger does not accept.
func Address(s string) error {
	if !IsAddress(s) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return nil
}
