package controllers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"food-booking-backend/controllers"
	"food-booking-backend/helpers"
	"food-booking-backend/middleware"
	"food-booking-backend/models"
	"food-booking-backend/routes"
	"food-booking-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores mirroring the Mongo implementations, including the
// duplicate-key behavior the unique indexes provide.

type memUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *memUserStore) List(context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, helpers.ErrUserNotFound
	}
	return &u, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, helpers.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return helpers.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) UpdateRole(_ context.Context, id primitive.ObjectID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return helpers.ErrUserNotFound
	}
	u.Role = role
	s.users[id] = u
	return nil
}

type memMenuStore struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.MenuItem
}

func newMemMenuStore() *memMenuStore {
	return &memMenuStore{items: make(map[primitive.ObjectID]models.MenuItem)}
}

func (s *memMenuStore) List(context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *memMenuStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, helpers.NewError(helpers.KindNotFound, "Menu item not found")
	}
	return &item, nil
}

func (s *memMenuStore) Create(_ context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items[item.ID] = *item
	return nil
}

func (s *memMenuStore) Update(_ context.Context, id primitive.ObjectID, update models.MenuItemUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return helpers.NewError(helpers.KindNotFound, "Menu item not found")
	}
	if update.ItemPhoto != nil {
		item.ItemPhoto = *update.ItemPhoto
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Ingredients != nil {
		item.Ingredients = *update.Ingredients
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	s.items[id] = item
	return nil
}

func (s *memMenuStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return helpers.NewError(helpers.KindNotFound, "Menu item not found")
	}
	delete(s.items, id)
	return nil
}

type memBookingStore struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]models.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: make(map[primitive.ObjectID]models.Booking)}
}

func bookingActive(b models.Booking) bool {
	return models.IsActiveBookingStatus(b.Status)
}

func (s *memBookingStore) List(context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *memBookingStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, helpers.NewError(helpers.KindNotFound, "Booking not found")
	}
	return &b, nil
}

// Create enforces the same one-active-booking-per-slot rule the partial
// unique index enforces in Mongo.
func (s *memBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if bookingActive(b) && b.TableID == booking.TableID && b.Date == booking.Date && b.Time == booking.Time {
			return helpers.ErrSlotTaken
		}
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	s.bookings[booking.ID] = *booking
	return nil
}

// UpdateStatus rejects a transition into an active status when another
// active booking holds the slot, like the partial unique index does.
func (s *memBookingStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return helpers.NewError(helpers.KindNotFound, "Booking not found")
	}
	if models.IsActiveBookingStatus(status) && !bookingActive(b) {
		for _, other := range s.bookings {
			if other.ID != id && bookingActive(other) &&
				other.TableID == b.TableID && other.Date == b.Date && other.Time == b.Time {
				return helpers.ErrSlotTaken
			}
		}
	}
	b.Status = status
	s.bookings[id] = b
	return nil
}

func (s *memBookingStore) SlotTaken(_ context.Context, tableID int, date, timeOfDay string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if bookingActive(b) && b.TableID == tableID && b.Date == date && b.Time == timeOfDay {
			return true, nil
		}
	}
	return false, nil
}

func (s *memBookingStore) BookedTables(_ context.Context, date, timeOfDay string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tables []int
	for _, b := range s.bookings {
		if bookingActive(b) && b.Date == date && b.Time == timeOfDay {
			tables = append(tables, b.TableID)
		}
	}
	return tables, nil
}

// fakeUploader rewrites data URIs to a stable hosted URL, like the S3
// uploader does, and passes plain URLs through.
type fakeUploader struct {
	uploads int
}

func (u *fakeUploader) Upload(_ context.Context, folder, image string) (string, error) {
	if storage.IsDataURI(image) {
		u.uploads++
		return "https://assets.test/" + folder + "/uploaded.png", nil
	}
	return image, nil
}

type testEnv struct {
	router   *gin.Engine
	users    *memUserStore
	menu     *memMenuStore
	bookings *memBookingStore
	uploader *fakeUploader
	tokens   *helpers.TokenHelper
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    newMemUserStore(),
		menu:     newMemMenuStore(),
		bookings: newMemBookingStore(),
		uploader: &fakeUploader{},
		tokens:   helpers.NewTokenHelper("test-secret", time.Hour),
	}

	gate := middleware.Authentication(env.tokens, env.users)
	hub := controllers.NewHub()

	env.router = gin.New()
	routes.AuthRoutes(env.router, controllers.NewAuthController(env.users, env.tokens, env.uploader), gate)
	routes.MenuRoutes(env.router, controllers.NewMenuController(env.menu, env.uploader), gate)
	routes.BookingRoutes(env.router, controllers.NewBookingController(env.bookings, hub, 6), gate)
	return env
}

// seedUser inserts a user with a hashed password and returns it with a
// valid bearer token.
func (env *testEnv) seedUser(t *testing.T, email, password, role string) (models.User, string) {
	t.Helper()

	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		ID:          primitive.NewObjectID(),
		Name:        "Seed User",
		Email:       email,
		Password:    hash,
		ProfileImg:  "https://assets.test/profiles/seed.png",
		PhoneNumber: "+201000000000",
		Role:        role,
	}
	require.NoError(t, env.users.Create(context.Background(), &user))

	token, err := env.tokens.Generate(user.ID.Hex())
	require.NoError(t, err)
	return user, token
}
