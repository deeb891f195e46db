package controllers

import (
	"context"
	"net/http"

	"food-booking-backend/helpers"
	"food-booking-backend/models"
	"food-booking-backend/storage"
	"food-booking-backend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuController struct {
	menu     store.MenuStore
	uploader storage.Uploader
}

func NewMenuController(menu store.MenuStore, uploader storage.Uploader) *MenuController {
	return &MenuController{menu: menu, uploader: uploader}
}

func (mc *MenuController) GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		items, err := mc.menu.List(ctx)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}

func (mc *MenuController) GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Query("_id"))
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid menu item id"))
			return
		}

		item, err := mc.menu.GetByID(ctx, id)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": item})
	}
}

func (mc *MenuController) AddMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var item models.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, "Invalid request body", err))
			return
		}
		if err := validate.Struct(&item); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, err.Error(), err))
			return
		}
		if !models.IsValidCategory(item.Category) {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Unknown menu category"))
			return
		}

		photoURL, err := mc.uploader.Upload(ctx, "menu", item.ItemPhoto)
		if err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindInternal, "Image upload failed", err))
			return
		}
		item.ItemPhoto = photoURL
		item.ID = primitive.NewObjectID()

		if err := mc.menu.Create(ctx, &item); err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": item})
	}
}

func (mc *MenuController) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Query("_id"))
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid menu item id"))
			return
		}

		var update models.MenuItemUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, "Invalid request body", err))
			return
		}
		if update.Category != nil && !models.IsValidCategory(*update.Category) {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Unknown menu category"))
			return
		}
		if update.Price != nil && *update.Price <= 0 {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Price must be positive"))
			return
		}

		if err := mc.menu.Update(ctx, id, update); err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "The Menu Item Has Been Updated Successfully!"})
	}
}

func (mc *MenuController) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Query("_id"))
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid menu item id"))
			return
		}

		if err := mc.menu.Delete(ctx, id); err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "The Menu Item Has Been Deleted Successfully!"})
	}
}
