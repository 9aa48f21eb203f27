package handlers

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/internal/api/presenters"
	"Punto-Donativo-Backend/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		VerifyToken(c *fiber.Ctx) error
		RefreshToken(c *fiber.Ctx) error
	}

	authHandler struct {
		jwtService jwt.JWTService
	}
)

func NewAuthHandler(jwtService jwt.JWTService) AuthHandler {
	return &authHandler{jwtService: jwtService}
}

func bearerToken(c *fiber.Ctx) string {
	return strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
}

func (h *authHandler) VerifyToken(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
	}

	donorID, _, err := h.jwtService.GetDonorIDByToken(token)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"valid":    true,
		"donor_id": donorID,
	}, fiber.StatusOK, "token is valid")
}

func (h *authHandler) RefreshToken(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
	}

	refreshed, err := h.jwtService.RefreshToken(token)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"access_token": refreshed,
	}, fiber.StatusOK, "token refreshed")
}
