package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/atta-hamamah/MemberShift/internal/cache"
	"github.com/atta-hamamah/MemberShift/internal/handler"
	"github.com/atta-hamamah/MemberShift/internal/middleware"
	"github.com/atta-hamamah/MemberShift/internal/repository"
	"github.com/atta-hamamah/MemberShift/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	repo := repository.NewListingRepository(db)
	views := cache.NewViewInvalidator(redisClient)
	svc := service.NewListingService(repo, views)
	h := &handler.ListingHandler{Svc: svc}

	r := gin.Default()
	api := r.Group("/api")
	api.Use(middleware.Identity())
	h.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}
	log.Printf("Membership listing service running on :%s …", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
