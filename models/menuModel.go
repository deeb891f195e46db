package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Categories is the closed set of menu sections the restaurant serves.
var Categories = []string{"Breakfast", "Main Dishes", "Drinks", "Desserts"}

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ItemPhoto   string             `bson:"item_photo" json:"item_photo" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Ingredients []string           `bson:"ingredients" json:"ingredients" validate:"required,min=1"`
	Category    string             `bson:"category" json:"category" validate:"required"`
}

// MenuItemUpdate carries the mutable fields of a menu item; nil fields are
// left untouched by the $set.
type MenuItemUpdate struct {
	ItemPhoto   *string   `json:"item_photo"`
	Price       *float64  `json:"price"`
	Title       *string   `json:"title"`
	Ingredients *[]string `json:"ingredients"`
	Category    *string   `json:"category"`
}

// IsValidCategory checks category membership. Done by hand rather than a
// oneof tag because two of the values contain spaces.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
