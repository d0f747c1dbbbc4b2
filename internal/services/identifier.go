package services

import (
	"strings"

	"staynest/pkg/apperrors"

	"github.com/google/uuid"
)

// parseID trims surrounding whitespace and checks the value against the
// store's native identifier format. Malformed ids are rejected before
// any lookup is attempted.
func parseID(domain, raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.ErrInvalidIdentifier(domain)
	}
	return id, nil
}

// normalizeEmail lowercases and trims the address so uniqueness is
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
