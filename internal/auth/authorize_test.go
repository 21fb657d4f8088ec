package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/tasklist-service/pkg/util"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	t.Run("owner allowed", func(t *testing.T) {
		err := Authorize(&Principal{UserID: owner, Capability: CapabilityUser}, owner)
		assert.NoError(t, err)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		err := Authorize(&Principal{UserID: other, Capability: CapabilityUser}, owner)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	})

	t.Run("anonymous denied", func(t *testing.T) {
		err := Authorize(nil, owner)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	})
}
