package auth

// TokenManager defines the interface for token operations.
type TokenManager interface {
	// GenerateToken creates a signed token for a user id and email.
	GenerateToken(userID, email string) (string, error)
	// ValidateToken parses and validates a token, returning its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
