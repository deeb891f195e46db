package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"food-booking-backend/config"
	"food-booking-backend/controllers"
	"food-booking-backend/database"
	"food-booking-backend/helpers"
	"food-booking-backend/middleware"
	"food-booking-backend/routes"
	"food-booking-backend/storage"
	"food-booking-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	if err := database.EnsureIndexes(ctx, client.Database(cfg.DBName)); err != nil {
		log.Fatal(err)
	}

	users := store.NewUserStore(database.OpenCollection(client, cfg.DBName, "user"))
	menu := store.NewMenuStore(database.OpenCollection(client, cfg.DBName, "menu"))
	bookings := store.NewBookingStore(database.OpenCollection(client, cfg.DBName, "booking"))

	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		uploader = s3Uploader
	} else {
		log.Println("S3_BUCKET not set, storing images as sent")
		uploader = storage.Passthrough{}
	}

	tokens := helpers.NewTokenHelper(cfg.JWTSecret, cfg.TokenLifetime)
	gate := middleware.Authentication(tokens, users)
	hub := controllers.NewHub()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRoutes(router, controllers.NewAuthController(users, tokens, uploader), gate)
	routes.MenuRoutes(router, controllers.NewMenuController(menu, uploader), gate)
	routes.BookingRoutes(router, controllers.NewBookingController(bookings, hub, cfg.TotalTables), gate)
	router.GET("/ws", hub.Handle())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
