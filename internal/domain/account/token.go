package account

import (
	"strings"

	"github.com/google/uuid"
)

// NewTokenKey returns an opaque bearer token key. Generated once per
// account and reused until sign-out deletes it.
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") +
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
