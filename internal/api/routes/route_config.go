package routes

import (
	"Punto-Donativo-Backend/internal/api/handlers"
	"Punto-Donativo-Backend/internal/middleware"
	"Punto-Donativo-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	DonationHandler      handlers.DonationHandler
	DonorHandler         handlers.DonorHandler
	DonationPointHandler handlers.DonationPointHandler
	CampaignHandler      handlers.CampaignHandler
	AuthHandler          handlers.AuthHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Donations()
	c.Donors()
	c.DonationPoints()
	c.Campaigns()
	c.Auth()
	c.GuestRoute()
}

func (c *Config) Donations() {
	donations := c.App.Group("/donations")
	{
		donations.Post("/create", c.DonationHandler.CreateDonation)
		donations.Put("/update", c.DonationHandler.UpdateDonation)
		donations.Delete("/delete", c.DonationHandler.DeleteDonation)
		donations.Get("/list", c.DonationHandler.ListDonations)
		donations.Get("/pending", c.DonationHandler.GetPendingDonations)
		donations.Get("/by_date_range", c.DonationHandler.GetDonationsByDateRange)
		donations.Get("/details/:id", c.DonationHandler.GetDonationDetails)
		donations.Get("/details/:id/:pendingStatus", c.DonationHandler.GetDonationDetails)
		donations.Get("/qrcode/:id", c.DonationHandler.GetDonationQRCode)
	}
}

func (c *Config) Donors() {
	donors := c.App.Group("/donors")
	{
		donors.Post("/register", c.DonorHandler.Register)
		donors.Post("/login", c.DonorHandler.Login)
		donors.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.DonorHandler.Me)
		donors.Get("/stats/:id", c.DonorHandler.GetDonorStats)
	}
}

func (c *Config) DonationPoints() {
	points := c.App.Group("/donation_points")
	{
		points.Post("/create", c.DonationPointHandler.CreatePoint)
		points.Put("/update/:id", c.DonationPointHandler.UpdatePoint)
		points.Delete("/delete/:id", c.DonationPointHandler.DeletePoint)
		points.Get("/list", c.DonationPointHandler.ListPoints)
		points.Post("/image", c.DonationPointHandler.UploadPointImage)
		points.Get("/:id", c.DonationPointHandler.GetPointByID)
	}
}

func (c *Config) Campaigns() {
	campaigns := c.App.Group("/campaigns")
	{
		campaigns.Post("/create", c.CampaignHandler.CreateCampaign)
		campaigns.Get("/list", c.CampaignHandler.ListCampaigns)
	}

	enrollments := c.App.Group("/campaign_donors")
	{
		enrollments.Post("/create", c.CampaignHandler.EnrollDonor)
		enrollments.Get("/list", c.CampaignHandler.ListEnrollments)
	}
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Get("/verify", c.AuthHandler.VerifyToken)
		auth.Post("/refresh", c.AuthHandler.RefreshToken)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
