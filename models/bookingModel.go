package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending  = "pending"
	BookingAccepted = "accepted"
	BookingRejected = "rejected"
)

const (
	BookingDateLayout = "2006-01-02"
	BookingTimeLayout = "15:04"
)

// Booking reserves one physical table for a date/time slot. A table holds at
// most one pending or accepted booking per slot.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"`
	Time        string             `bson:"time" json:"time" validate:"required"`
	Guests      int                `bson:"guests" json:"guests" validate:"required,min=1"`
	TableID     int                `bson:"table_id" json:"table_id" validate:"required,min=1"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsActiveBookingStatus reports whether the status holds its table slot.
// Pending and accepted bookings block the slot; rejected ones free it.
func IsActiveBookingStatus(status string) bool {
	return status == BookingPending || status == BookingAccepted
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingAccepted, BookingRejected:
		return true
	}
	return false
}

// ValidSlot reports whether date and time parse in the canonical layouts.
func ValidSlot(date, timeOfDay string) bool {
	if _, err := time.Parse(BookingDateLayout, date); err != nil {
		return false
	}
	if _, err := time.Parse(BookingTimeLayout, timeOfDay); err != nil {
		return false
	}
	return true
}
