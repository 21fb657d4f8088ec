package auth

import (
	"strings"

	"github.com/google/uuid"
)

// bearerPrefix is matched case-sensitively with exactly one space, mirroring
// the header contract "Authorization: Bearer <token>".
const bearerPrefix = "Bearer "

// ExtractIdentity derives the caller identity from a raw Authorization header
// value. An absent header, a non-bearer scheme and a token that fails
// verification all yield (Nil, false): no credential presented. Verification
// failures never surface as errors here.
func ExtractIdentity(tokens *TokenManager, header string) (uuid.UUID, bool) {
	tokenStr, found := strings.CutPrefix(header, bearerPrefix)
	if !found || tokenStr == "" {
		return uuid.Nil, false
	}

	identity, err := tokens.Verify(tokenStr)
	if err != nil {
		return uuid.Nil, false
	}
	return identity, true
}
