package auth

import (
	"github.com/google/uuid"

	apperrors "github.com/spec-kit/tasklist-service/pkg/util"
)

// Authorize decides whether the caller may act on a resource owned by
// ownerID. It is applied by every protected read, update and delete, always
// after the resource existence check so that a missing resource reports
// not-found rather than forbidden.
func Authorize(principal *Principal, ownerID uuid.UUID) error {
	if principal == nil {
		return apperrors.NewForbidden("authentication required")
	}
	if principal.UserID != ownerID {
		return apperrors.NewForbidden("not the resource owner")
	}
	return nil
}
