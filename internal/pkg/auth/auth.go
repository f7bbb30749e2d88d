package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

var ErrTokenInvalid = errors.New("invalid bearer token")

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Verifier validates HMAC-signed bearer tokens into typed claims. The token
// is parsed exactly once at the boundary; handlers receive entities.Claims
// and never see the raw token.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Parse(tokenString string) (entities.Claims, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Claims{}, ErrTokenInvalid
	}

	if claims.UserID == "" {
		return entities.Claims{}, ErrTokenInvalid
	}

	role := entities.RoleType(claims.Role)
	switch role {
	case entities.RoleBuyer, entities.RoleSeller, entities.RoleRider, entities.RoleAdmin:
	default:
		return entities.Claims{}, ErrTokenInvalid
	}

	return entities.Claims{
		UserID: claims.UserID,
		Role:   role,
	}, nil
}

// Sign issues a token for the given claims. Used by tests and local tooling;
// production tokens come from the identity service sharing the same secret.
func (v *Verifier) Sign(claims entities.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claims.UserID,
		Role:   claims.Role.String(),
	})
	return token.SignedString(v.secret)
}
