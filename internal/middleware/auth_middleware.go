package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authz "github.com/yigit/classroom/internal/app/auth"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message, details string) {
	errorDetail := dto.NewErrorDetail(code, message).WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

func abortForbidden(c *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
		WithDetails("You don't have sufficient permissions for this operation")
	c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
}

// JWTAuth resolves the caller from the Authorization header
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Unauthorized: Please log in", "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Unauthorized: Please log in", "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Authentication failed", "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token")
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RoleRequired lets the request through only when the caller holds exactly role
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Unauthorized: Please log in", "User role not found")
			return
		}

		if !caller.Is(role) {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

// AdminRequired lets the request through only for admins, comparing the role
// case-insensitively.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Unauthorized: Please log in", "User role not found")
			return
		}

		if !caller.IsAdmin() {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

// GetCaller returns the identity stored by JWTAuth
func GetCaller(c *gin.Context) (authz.Caller, bool) {
	userID := c.GetString(ContextKeyUserID)
	if userID == "" {
		return authz.Caller{}, false
	}
	return authz.Caller{
		UserID: userID,
		Role:   c.GetString(ContextKeyRole),
	}, true
}

// RequireCaller returns the identity stored by JWTAuth. Without one it answers
// 401 and reports false.
func RequireCaller(c *gin.Context) (authz.Caller, bool) {
	caller, ok := GetCaller(c)
	if !ok {
		HandleAPIError(c, apperrors.ErrUnauthenticated, "Unauthorized: Please log in")
		return authz.Caller{}, false
	}
	return caller, true
}
