package store

import (
	"context"
	"errors"
	"fmt"

	"food-booking-backend/helpers"
	"food-booking-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoMenuStore struct {
	col *mongo.Collection
}

func NewMenuStore(col *mongo.Collection) MenuStore {
	return &mongoMenuStore{col: col}
}

func (s *mongoMenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}
	return items, nil
}

func (s *mongoMenuStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helpers.NewError(helpers.KindNotFound, "Menu item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item %s: %w", id.Hex(), err)
	}
	return &item, nil
}

func (s *mongoMenuStore) Create(ctx context.Context, item *models.MenuItem) error {
	result, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (s *mongoMenuStore) Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) error {
	var updateObj bson.D
	if update.ItemPhoto != nil {
		updateObj = append(updateObj, bson.E{Key: "item_photo", Value: *update.ItemPhoto})
	}
	if update.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *update.Price})
	}
	if update.Title != nil {
		updateObj = append(updateObj, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Ingredients != nil {
		updateObj = append(updateObj, bson.E{Key: "ingredients", Value: *update.Ingredients})
	}
	if update.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *update.Category})
	}
	if len(updateObj) == 0 {
		return helpers.NewError(helpers.KindValidation, "Nothing to update")
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if result.MatchedCount == 0 {
		return helpers.NewError(helpers.KindNotFound, "Menu item not found")
	}
	return nil
}

func (s *mongoMenuStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if result.DeletedCount == 0 {
		return helpers.NewError(helpers.KindNotFound, "Menu item not found")
	}
	return nil
}
