package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	consumerRepo "bookwell/database/repository/consumer"
	providerRepo "bookwell/database/repository/provider"
	"bookwell/utils"
)

// Context keys set by the auth middleware.
const (
	CtxConsumerID = "consumerID"
	CtxProviderID = "providerID"
)

const authCachePrefix = "auth:"

// tokenHashLookup fetches the stored token hash for an account.
type tokenHashLookup func(ctx context.Context, id string) (string, error)

// ConsumerAuth authenticates requests with a consumer-role token.
func ConsumerAuth(repo consumerRepo.ConsumerRepository) gin.HandlerFunc {
	return authenticate(utils.RoleConsumer, CtxConsumerID, func(ctx context.Context, id string) (string, error) {
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return c.TokenHash, nil
	})
}

// ProviderAuth authenticates requests with a provider-role token.
func ProviderAuth(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return authenticate(utils.RoleProvider, CtxProviderID, func(ctx context.Context, id string) (string, error) {
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return p.TokenHash, nil
	})
}

// authenticate validates the bearer token's signature and role claim, then
// checks its hash against the stored one so a re-signin invalidates older
// tokens. Hashes are cached in Redis with a one hour TTL; a cache outage
// degrades to a database lookup rather than failing the request.
func authenticate(wantRole, ctxKey string, lookup tokenHashLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if role != wantRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token role not permitted for this resource"})
			return
		}

		computed := utils.HashToken(tokenString)
		ctx := c.Request.Context()
		cacheKey := authCachePrefix + wantRole + ":" + subject
		cache := utils.GetAuthCacheClient()

		if cache != nil {
			cached, err := cache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cached != computed {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
					return
				}
				_ = cache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set(ctxKey, subject)
				c.Next()
				return
			}
			if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to database",
					zap.Error(err))
			}
		}

		stored, err := lookup(ctx, subject)
		if err != nil || stored == "" || stored != computed {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}
		if cache != nil {
			_ = cache.Set(ctx, cacheKey, computed, time.Hour).Err()
		}

		c.Set(ctxKey, subject)
		c.Next()
	}
}
