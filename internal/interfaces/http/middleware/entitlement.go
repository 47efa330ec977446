package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/identity"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/hisabpro/backend/internal/interfaces/http/dto"
)

// EntitlementConfig holds configuration for the entitlement middleware
type EntitlementConfig struct {
	AccountRepo identity.AccountRepository
	// Enforce toggles the paid check. When false every authenticated
	// account passes, which keeps development setups usable without a
	// gateway sandbox.
	Enforce bool
}

// RequireEntitlement gates premium features behind the one-time unlock
// payment. It must run after JWT authentication.
func RequireEntitlement(cfg EntitlementConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enforce {
			c.Next()
			return
		}

		accountID, err := uuid.Parse(GetJWTAccountID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		account, err := cfg.AccountRepo.FindByID(c.Request.Context(), accountID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Account no longer exists"))
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				dto.NewErrorResponse(dto.ErrCodeStoreUnavailable, "Unable to verify entitlement, retry later"))
			return
		}

		if !account.IsEntitled() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeEntitlementRequired, "Payment required to access this feature"))
			return
		}

		c.Next()
	}
}
