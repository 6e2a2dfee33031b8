package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

const (
	msgNoToken     = "Not authorized, no token"
	msgTokenFailed = "Not authorized, token failed"
)

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: message})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleWare resolves the bearer token to a live user and stores
// userID, role and user on the context.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, msgNoToken)
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil || user == nil {
			unauthorized(c, msgTokenFailed)
			return
		}

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Set("user", user)
		c.Next()
	}
}

var roleMessages = map[entity.UserRole]string{
	entity.UserRoleAdmin:     "Not authorized as an admin",
	entity.UserRoleOrganizer: "Not authorized as an organizer",
	entity.UserRoleStudent:   "Not authorized as a student",
}

// RequireRole lets the request through when the caller holds one of roles.
// The rejection message names the first role.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	message := "Not authorized"
	if len(roles) > 0 {
		message = roleMessages[roles[0]]
	}
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		r, _ := role.(entity.UserRole)
		if _, ok := allowed[r]; !ok {
			unauthorized(c, message)
			return
		}
		c.Next()
	}
}
