package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim payload embedded in every access token.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Claims is the full JWT payload.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// Codec mints and verifies signed access tokens with a shared secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Mint produces a signed HS256 token embedding id, valid for ttl.
func (c *Codec) Mint(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token, returning the embedded identity.
// It fails on malformed tokens, bad signatures and elapsed expiry alike.
func (c *Codec) Verify(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return &claims.Identity, nil
}
