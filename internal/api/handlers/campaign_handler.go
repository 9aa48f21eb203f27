package handlers

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/internal/api/presenters"
	"Punto-Donativo-Backend/pkg/campaign"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CampaignHandler interface {
		CreateCampaign(c *fiber.Ctx) error
		ListCampaigns(c *fiber.Ctx) error
		EnrollDonor(c *fiber.Ctx) error
		ListEnrollments(c *fiber.Ctx) error
	}

	campaignHandler struct {
		campaignService campaign.CampaignService
		validator       *validator.Validate
	}
)

func NewCampaignHandler(campaignService campaign.CampaignService, validator *validator.Validate) CampaignHandler {
	return &campaignHandler{
		campaignService: campaignService,
		validator:       validator,
	}
}

func (h *campaignHandler) CreateCampaign(c *fiber.Ctx) error {
	req := new(domain.CreateCampaignRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCampaign, err)
	}

	res, err := h.campaignService.CreateCampaign(c.Context(), *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidDateRange) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCreateCampaign, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCampaign)
}

func (h *campaignHandler) ListCampaigns(c *fiber.Ctx) error {
	res, err := h.campaignService.GetCampaigns(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCampaigns, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCampaigns)
}

func (h *campaignHandler) EnrollDonor(c *fiber.Ctx) error {
	req := new(domain.EnrollDonorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEnrollDonor, err)
	}

	res, err := h.campaignService.EnrollDonor(c.Context(), *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrCampaignNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrAlreadyEnrolled):
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedEnrollDonor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessEnrollDonor)
}

func (h *campaignHandler) ListEnrollments(c *fiber.Ctx) error {
	donorID, err := strconv.ParseUint(c.Query("id_donor"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEnrollments, domain.ErrParseID)
	}

	res, err := h.campaignService.GetEnrollmentsByDonor(c.Context(), uint(donorID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetEnrollments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEnrollments)
}
