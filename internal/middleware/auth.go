package middleware

import (
	"todo-vault/internal/apperr"
	"todo-vault/internal/token"
	"todo-vault/internal/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthGuard validates the access token and puts the resolved identity
// into the request context. The token is presented bare in the
// Authorization header, no scheme prefix. Missing, malformed, forged
// and expired tokens all get the same generic 401 so the response
// leaks nothing about why verification failed.
func AuthGuard(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			util.AbortError(c, apperr.ErrUnauthorized)
			return
		}

		id, err := codec.Verify(tokenStr)
		if err != nil {
			util.AbortError(c, apperr.ErrUnauthorized)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the identity the guard resolved for this
// request.
func CurrentIdentity(c *gin.Context) (*token.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*token.Identity)
	return id, ok && id != nil
}
