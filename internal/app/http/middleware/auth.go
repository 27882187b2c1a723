package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"scriptpilot/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
)

var (
	verifierOnce sync.Once
	verifier     *oidc.IDTokenVerifier
	verifierErr  error
)

// tokenVerifier lazily builds an OIDC verifier against the identity
// provider's issuer. Discovery happens once per process.
func tokenVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	verifierOnce.Do(func() {
		provider, err := oidc.NewProvider(ctx, config.CLERK_ISSUER)
		if err != nil {
			verifierErr = err
			return
		}
		// Session tokens are minted per frontend origin, not per OAuth client.
		verifier = provider.Verifier(&oidc.Config{SkipClientIDCheck: true})
	})
	return verifier, verifierErr
}

// AuthMiddleware verifies the identity provider's bearer token and exposes
// the owner id under "owner_id". Core operations receive it as an explicit
// argument from there on.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		v, err := tokenVerifier(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Identity provider unavailable"})
			c.Abort()
			return
		}

		idToken, err := v.Verify(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if idToken.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token missing subject"})
			c.Abort()
			return
		}

		c.Set("owner_id", idToken.Subject)
		c.Next()
	}
}
