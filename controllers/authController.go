package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"food-booking-backend/helpers"
	"food-booking-backend/middleware"
	"food-booking-backend/models"
	"food-booking-backend/storage"
	"food-booking-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

// loginDummyHash keeps the unknown-email and wrong-password paths doing
// comparable work, so neither leaks which condition failed.
var loginDummyHash = func() string {
	hash, err := helpers.HashPassword("login-timing-equalizer")
	if err != nil {
		panic(err)
	}
	return hash
}()

type AuthController struct {
	users    store.UserStore
	tokens   *helpers.TokenHelper
	uploader storage.Uploader
}

func NewAuthController(users store.UserStore, tokens *helpers.TokenHelper, uploader storage.Uploader) *AuthController {
	return &AuthController{users: users, tokens: tokens, uploader: uploader}
}

func (ac *AuthController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		users, err := ac.users.List(ctx)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		for i := range users {
			users[i].Password = ""
		}
		c.JSON(http.StatusOK, gin.H{"data": users})
	}
}

func (ac *AuthController) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Query("_id"))
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid user id"))
			return
		}

		user, err := ac.users.GetByID(ctx, id)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"data": user})
	}
}

func (ac *AuthController) Register() gin.HandlerFunc {
	return ac.register(models.RoleNormal)
}

// AdminRegister is the gated variant of Register; the created user starts
// with the admin role.
func (ac *AuthController) AdminRegister() gin.HandlerFunc {
	return ac.register(models.RoleAdmin)
}

func (ac *AuthController) register(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, "Invalid request body", err))
			return
		}
		if err := validate.Struct(&user); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, err.Error(), err))
			return
		}

		// The image upload is not transactional with the insert: a store
		// failure after a successful upload orphans the asset.
		imageURL, err := ac.uploader.Upload(ctx, "profiles", user.ProfileImg)
		if err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindInternal, "Image upload failed", err))
			return
		}
		user.ProfileImg = imageURL

		hash, err := helpers.HashPassword(user.Password)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		user.Password = hash
		user.Role = role
		user.ID = primitive.NewObjectID()
		user.CreatedAt = time.Now()
		user.UpdatedAt = user.CreatedAt

		if err := ac.users.Create(ctx, &user); err != nil {
			helpers.WriteError(c, err)
			return
		}

		token, err := ac.tokens.Generate(user.ID.Hex())
		if err != nil {
			helpers.WriteError(c, err)
			return
		}

		user.Password = ""
		c.JSON(http.StatusCreated, gin.H{"data": user, "token": token})
	}
}

func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, "Invalid request body", err))
			return
		}
		if err := validate.Struct(&req); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, err.Error(), err))
			return
		}

		user, err := ac.users.GetByEmail(ctx, req.Email)
		if err != nil {
			helpers.CheckPassword(req.Password, loginDummyHash)
			helpers.WriteError(c, helpers.ErrInvalidCredentials)
			return
		}
		if !helpers.CheckPassword(req.Password, user.Password) {
			helpers.WriteError(c, helpers.ErrInvalidCredentials)
			return
		}

		token, err := ac.tokens.Generate(user.ID.Hex())
		if err != nil {
			helpers.WriteError(c, err)
			return
		}

		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"data": user, "token": token})
	}
}

func (ac *AuthController) ChangeRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		role := c.Query("role")
		if !models.IsValidRole(role) {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation,
				`User role should be either "admin" or "normal"`))
			return
		}

		targetHex := c.Query("_id")
		target, err := primitive.ObjectIDFromHex(targetHex)
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid user id"))
			return
		}

		// An admin cannot demote themselves.
		if c.GetString(middleware.UIDKey) == targetHex {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation,
				"Error, you can't change your role"))
			return
		}

		if err := ac.users.UpdateRole(ctx, target, role); err != nil {
			helpers.WriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("User Role Changed Successfully to %s", role),
		})
	}
}
