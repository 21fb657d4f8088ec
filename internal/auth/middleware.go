package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const principalKey = "auth_principal"

// Capability is the single fixed grant attached to authenticated callers.
// No role hierarchy exists.
type Capability string

// CapabilityUser marks an authenticated account holder.
const CapabilityUser Capability = "USER"

// Principal represents the authenticated caller.
type Principal struct {
	UserID     uuid.UUID
	Capability Capability
}

// AuthMiddleware annotates requests with the caller identity. It never
// rejects: requests without a usable credential continue anonymously and
// rejection is left to the route policy and the ownership rule downstream.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle runs identity extraction once per request and binds the resulting
// principal into request-scoped state.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	identity, ok := ExtractIdentity(m.tokens, c.Get(fiber.HeaderAuthorization))
	if ok {
		c.Locals(principalKey, &Principal{UserID: identity, Capability: CapabilityUser})
	}
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequireIdentity rejects requests that carry no authenticated principal.
// Attached to protected route groups after the annotating middleware.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}
