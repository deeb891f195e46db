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

type mongoBookingStore struct {
	col *mongo.Collection
}

func NewBookingStore(col *mongo.Collection) BookingStore {
	return &mongoBookingStore{col: col}
}

func activeSlotFilter(date, timeOfDay string) bson.M {
	return bson.M{
		"date":   date,
		"time":   timeOfDay,
		"status": bson.M{"$in": []string{models.BookingPending, models.BookingAccepted}},
	}
}

func (s *mongoBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *mongoBookingStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helpers.NewError(helpers.KindNotFound, "Booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

// Create inserts the booking. The unique partial index on
// (table_id, date, time) turns a lost collision race into a duplicate-key
// error, which surfaces as the same slot-taken failure as the pre-check.
func (s *mongoBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	result, err := s.col.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return helpers.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

// UpdateStatus changes the booking status. A transition into an active
// status makes the document re-enter the partial unique index; when another
// active booking already holds the slot the update fails with a
// duplicate-key error and surfaces as slot-taken.
func (s *mongoBookingStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := s.col.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
	if mongo.IsDuplicateKeyError(err) {
		return helpers.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return helpers.NewError(helpers.KindNotFound, "Booking not found")
	}
	return nil
}

func (s *mongoBookingStore) SlotTaken(ctx context.Context, tableID int, date, timeOfDay string) (bool, error) {
	filter := activeSlotFilter(date, timeOfDay)
	filter["table_id"] = tableID
	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count bookings for slot: %w", err)
	}
	return count > 0, nil
}

func (s *mongoBookingStore) BookedTables(ctx context.Context, date, timeOfDay string) ([]int, error) {
	raw, err := s.col.Distinct(ctx, "table_id", activeSlotFilter(date, timeOfDay))
	if err != nil {
		return nil, fmt.Errorf("distinct booked tables: %w", err)
	}
	tables := make([]int, 0, len(raw))
	for _, v := range raw {
		switch id := v.(type) {
		case int32:
			tables = append(tables, int(id))
		case int64:
			tables = append(tables, int(id))
		case int:
			tables = append(tables, id)
		}
	}
	return tables, nil
}
