package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"food-booking-backend/helpers"
	"food-booking-backend/models"
	"food-booking-backend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingController struct {
	bookings    store.BookingStore
	hub         *Hub
	totalTables int
}

func NewBookingController(bookings store.BookingStore, hub *Hub, totalTables int) *BookingController {
	return &BookingController{bookings: bookings, hub: hub, totalTables: totalTables}
}

func (bc *BookingController) GetBookings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		bookings, err := bc.bookings.List(ctx)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": bookings})
	}
}

func (bc *BookingController) GetBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Query("_id"))
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid booking id"))
			return
		}

		booking, err := bc.bookings.GetByID(ctx, id)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": booking})
	}
}

// AddBooking is public. The slot is collision-checked before the insert;
// the unique index on active slots decides the race two concurrent requests
// would otherwise win together.
func (bc *BookingController) AddBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, "Invalid request body", err))
			return
		}
		if err := validate.Struct(&booking); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, err.Error(), err))
			return
		}
		if !models.ValidSlot(booking.Date, booking.Time) {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation,
				fmt.Sprintf("Date must be %q and time %q", models.BookingDateLayout, models.BookingTimeLayout)))
			return
		}
		if booking.TableID < 1 || booking.TableID > bc.totalTables {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation,
				fmt.Sprintf("table_id must be between 1 and %d", bc.totalTables)))
			return
		}

		taken, err := bc.bookings.SlotTaken(ctx, booking.TableID, booking.Date, booking.Time)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		if taken {
			helpers.WriteError(c, helpers.ErrSlotTaken)
			return
		}

		booking.ID = primitive.NewObjectID()
		booking.Status = models.BookingPending
		booking.CreatedAt = time.Now()
		booking.UpdatedAt = booking.CreatedAt

		if err := bc.bookings.Create(ctx, &booking); err != nil {
			helpers.WriteError(c, err)
			return
		}

		bc.hub.Broadcast("newBooking", booking)
		c.JSON(http.StatusCreated, gin.H{"data": booking})
	}
}

func (bc *BookingController) ChangeBookingStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Query("_id"))
		if err != nil {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation, "Invalid booking id"))
			return
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			helpers.WriteError(c, helpers.WrapError(helpers.KindValidation, "Invalid request body", err))
			return
		}
		if !models.IsValidBookingStatus(body.Status) {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation,
				`Booking status should be "pending", "accepted" or "rejected"`))
			return
		}

		booking, err := bc.bookings.GetByID(ctx, id)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}

		// Re-accepting a rejected booking re-enters the slot, which may
		// have been rebooked since the rejection.
		if models.IsActiveBookingStatus(body.Status) && !models.IsActiveBookingStatus(booking.Status) {
			taken, err := bc.bookings.SlotTaken(ctx, booking.TableID, booking.Date, booking.Time)
			if err != nil {
				helpers.WriteError(c, err)
				return
			}
			if taken {
				helpers.WriteError(c, helpers.ErrSlotTaken)
				return
			}
		}

		if err := bc.bookings.UpdateStatus(ctx, id, body.Status); err != nil {
			helpers.WriteError(c, err)
			return
		}

		bc.hub.Broadcast("bookingStatus", gin.H{"_id": id.Hex(), "status": body.Status})
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Booking status changed to %s", body.Status),
		})
	}
}

// GetAvailableTables returns the table ids without an active booking on the
// given slot, out of tables 1..totalTables.
func (bc *BookingController) GetAvailableTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		date := c.Query("date")
		timeOfDay := c.Query("time")
		if !models.ValidSlot(date, timeOfDay) {
			helpers.WriteError(c, helpers.NewError(helpers.KindValidation,
				fmt.Sprintf("Date must be %q and time %q", models.BookingDateLayout, models.BookingTimeLayout)))
			return
		}

		booked, err := bc.bookings.BookedTables(ctx, date, timeOfDay)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}

		taken := make(map[int]bool, len(booked))
		for _, id := range booked {
			taken[id] = true
		}
		available := make([]int, 0, bc.totalTables)
		for id := 1; id <= bc.totalTables; id++ {
			if !taken[id] {
				available = append(available, id)
			}
		}
		c.JSON(http.StatusOK, gin.H{"data": available})
	}
}
