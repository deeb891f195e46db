package middleware

import (
	"errors"
	"strings"

	"food-booking-backend/helpers"
	"food-booking-backend/models"
	"food-booking-backend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UIDKey is the context key under which the gate stores the acting admin's
// id, so handlers can compare actor against target.
const UIDKey = "uid"

// Authentication is the admin gate shared by every protected route:
// Bearer extraction, token verification, user resolution, role check.
// Each stage short-circuits the request with its own failure kind.
func Authentication(tokens *helpers.TokenHelper, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			helpers.WriteError(c, helpers.ErrMissingToken)
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}

		uid, err := primitive.ObjectIDFromHex(claims.ID)
		if err != nil {
			helpers.WriteError(c, helpers.ErrInvalidToken)
			return
		}

		user, err := users.GetByID(c.Request.Context(), uid)
		if err != nil {
			var appErr *helpers.AppError
			if !errors.As(err, &appErr) {
				err = helpers.WrapError(helpers.KindInternal, "Server Error", err)
			}
			helpers.WriteError(c, err)
			return
		}

		if user.Role != models.RoleAdmin {
			helpers.WriteError(c, helpers.ErrForbidden)
			return
		}

		c.Set(UIDKey, user.ID.Hex())
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
