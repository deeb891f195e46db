// Package store owns every document that crosses a request boundary.
// Handlers borrow records for the duration of one request and never cache
// them. The interfaces exist so handlers can be exercised against in-memory
// fakes; the only real implementations are Mongo-backed.
package store

import (
	"context"

	"food-booking-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error
}

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookingStore interface {
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	// SlotTaken reports whether the table already holds a pending or
	// accepted booking for the slot.
	SlotTaken(ctx context.Context, tableID int, date, timeOfDay string) (bool, error)
	// BookedTables returns the table ids with an active booking on the slot.
	BookedTables(ctx context.Context, date, timeOfDay string) ([]int, error)
}
