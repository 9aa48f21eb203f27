package config

import (
	"Punto-Donativo-Backend/internal/api/handlers"
	"Punto-Donativo-Backend/internal/api/routes"
	"Punto-Donativo-Backend/internal/middleware"
	"Punto-Donativo-Backend/internal/utils"
	"Punto-Donativo-Backend/internal/utils/storage"
	"Punto-Donativo-Backend/pkg/campaign"
	"Punto-Donativo-Backend/pkg/donation"
	"Punto-Donativo-Backend/pkg/donationpoint"
	"Punto-Donativo-Backend/pkg/donor"
	"Punto-Donativo-Backend/pkg/food"
	"Punto-Donativo-Backend/pkg/jwt"
	"Punto-Donativo-Backend/pkg/qrtoken"
	"Punto-Donativo-Backend/pkg/stats"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	donorRepository := donor.NewDonorRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	foodRepository := food.NewFoodRepository(db)
	pointRepository := donationpoint.NewPointRepository(db)
	campaignRepository := campaign.NewCampaignRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	qrTokenService := qrtoken.NewQRTokenService()
	foodService := food.NewFoodService(foodRepository)
	donationService := donation.NewDonationService(donationRepository, foodService, qrTokenService)
	donorService := donor.NewDonorService(donorRepository, jwtService)
	pointService := donationpoint.NewPointService(pointRepository, s3)
	campaignService := campaign.NewCampaignService(campaignRepository)
	statsService := stats.NewStatsService(donationRepository, foodService, campaignRepository)

	// Handler
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	donorHandler := handlers.NewDonorHandler(donorService, statsService, validator)
	pointHandler := handlers.NewDonationPointHandler(pointService, validator)
	campaignHandler := handlers.NewCampaignHandler(campaignService, validator)
	authHandler := handlers.NewAuthHandler(jwtService)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		DonationHandler:      donationHandler,
		DonorHandler:         donorHandler,
		DonationPointHandler: pointHandler,
		CampaignHandler:      campaignHandler,
		AuthHandler:          authHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
