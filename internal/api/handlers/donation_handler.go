package handlers

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/internal/api/presenters"
	"Punto-Donativo-Backend/pkg/donation"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		UpdateDonation(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		ListDonations(c *fiber.Ctx) error
		GetDonationDetails(c *fiber.Ctx) error
		GetDonationQRCode(c *fiber.Ctx) error
		GetPendingDonations(c *fiber.Ctx) error
		GetDonationsByDateRange(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

// donationErrorStatus maps workflow errors onto the HTTP taxonomy:
// validation 400, absence 404, everything else (persistence, partial
// token failure) 500.
func donationErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrFoodItemsRequired),
		errors.Is(err, domain.ErrInvalidFoodItem),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidDonationID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) UpdateDonation(c *fiber.Ctx) error {
	req := new(domain.UpdateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	res, err := h.donationService.UpdateDonation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedUpdateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	req := new(domain.DeleteDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDonation, err)
	}

	if err := h.donationService.DeleteDonation(c.Context(), req.ID); err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) ListDonations(c *fiber.Ctx) error {
	var idFilter *uint
	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, domain.ErrParseID)
		}
		parsed := uint(id)
		idFilter = &parsed
	}

	details, _ := strconv.ParseBool(c.Query("details", "false"))

	res, err := h.donationService.ListDonations(c.Context(), idFilter, details)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationDetails(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDetails, domain.ErrParseID)
	}

	var pending *bool
	if pendingParam := c.Params("pendingStatus"); pendingParam != "" {
		value, err := strconv.ParseBool(pendingParam)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDetails, err)
		}
		pending = &value
	}

	res, err := h.donationService.GetDonationDetails(c.Context(), uint(id), pending)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetDetails, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDetails)
}

func (h *donationHandler) GetDonationQRCode(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetQRCode, domain.ErrParseID)
	}

	res, err := h.donationService.GetDonationToken(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetQRCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetQRCode)
}

func (h *donationHandler) GetPendingDonations(c *fiber.Ctx) error {
	res, err := h.donationService.ListPendingDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationsByDateRange(c *fiber.Ctx) error {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, domain.ErrInvalidDateRange)
	}

	res, err := h.donationService.ListDonationsByDateRange(c.Context(), startDate, endDate)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}
