package handlers

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/internal/api/presenters"
	"Punto-Donativo-Backend/pkg/donor"
	"Punto-Donativo-Backend/pkg/stats"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonorHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		GetDonorStats(c *fiber.Ctx) error
	}

	donorHandler struct {
		donorService donor.DonorService
		statsService stats.StatsService
		validator    *validator.Validate
	}
)

func NewDonorHandler(donorService donor.DonorService, statsService stats.StatsService, validator *validator.Validate) DonorHandler {
	return &donorHandler{
		donorService: donorService,
		statsService: statsService,
		validator:    validator,
	}
}

func (h *donorHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterDonorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.donorService.Register(c.Context(), *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *donorHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginDonorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.donorService.Login(c.Context(), *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrCredentialsInvalid) {
			status = fiber.StatusUnauthorized
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *donorHandler) Me(c *fiber.Ctx) error {
	donorID, err := strconv.ParseUint(c.Locals("donor_id").(string), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonor, domain.ErrParseID)
	}

	res, err := h.donorService.GetDonorByID(c.Context(), uint(donorID))
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrDonorNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetDonor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonor)
}

func (h *donorHandler) GetDonorStats(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonorStats, domain.ErrParseID)
	}

	res, err := h.statsService.StatsForDonor(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonorStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonorStats)
}
