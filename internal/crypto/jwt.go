package crypto

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/selectshop/selectshop-go/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// BearerPrefix is the scheme marker carried in the Authorization header.
const BearerPrefix = "Bearer "

// Claims represents the JWT claims for selectshop authentication.
// The subject is the username; the role travels under the "auth" key.
type Claims struct {
	jwt.RegisteredClaims
	Role model.Role `json:"auth"`
}

// GenerateToken creates a signed HS256 token for the given user.
func GenerateToken(username string, role model.Role, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "selectshop",
			Audience:  jwt.ClaimStrings{"selectshop-api"},
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string, returning the claims if
// valid. Signature, expiry, issuer and algorithm failures are distinguished in
// the log only; callers see a single ErrInvalidToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("selectshop"), jwt.WithAudience("selectshop-api"))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			slog.Info("expired JWT token")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			slog.Info("invalid JWT signature")
		case errors.Is(err, jwt.ErrTokenMalformed):
			slog.Info("malformed JWT token")
		default:
			slog.Info("unsupported JWT token", "error", err)
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
