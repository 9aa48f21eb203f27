package handlers

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/internal/api/presenters"
	"Punto-Donativo-Backend/pkg/donationpoint"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationPointHandler interface {
		CreatePoint(c *fiber.Ctx) error
		UpdatePoint(c *fiber.Ctx) error
		DeletePoint(c *fiber.Ctx) error
		ListPoints(c *fiber.Ctx) error
		GetPointByID(c *fiber.Ctx) error
		UploadPointImage(c *fiber.Ctx) error
	}

	donationPointHandler struct {
		pointService donationpoint.PointService
		validator    *validator.Validate
	}
)

func NewDonationPointHandler(pointService donationpoint.PointService, validator *validator.Validate) DonationPointHandler {
	return &donationPointHandler{
		pointService: pointService,
		validator:    validator,
	}
}

func pointErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonationPointNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNoUpdatableFields):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *donationPointHandler) CreatePoint(c *fiber.Ctx) error {
	req := new(domain.CreatePointRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePoint, err)
	}

	res, err := h.pointService.CreatePoint(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, pointErrorStatus(err), domain.MessageFailedCreatePoint, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePoint)
}

func (h *donationPointHandler) UpdatePoint(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePoint, domain.ErrParseID)
	}

	req := new(domain.UpdatePointRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.pointService.UpdatePoint(c.Context(), uint(id), *req)
	if err != nil {
		return presenters.ErrorResponse(c, pointErrorStatus(err), domain.MessageFailedUpdatePoint, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePoint)
}

func (h *donationPointHandler) DeletePoint(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePoint, domain.ErrParseID)
	}

	if err := h.pointService.DeletePoint(c.Context(), uint(id)); err != nil {
		return presenters.ErrorResponse(c, pointErrorStatus(err), domain.MessageFailedDeletePoint, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePoint)
}

func (h *donationPointHandler) ListPoints(c *fiber.Ctx) error {
	res, err := h.pointService.ListPoints(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ErrorResponse(c, pointErrorStatus(err), domain.MessageFailedGetPoints, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPoints)
}

func (h *donationPointHandler) GetPointByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPoints, domain.ErrParseID)
	}

	res, err := h.pointService.GetPointByID(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, pointErrorStatus(err), domain.MessageFailedGetPoints, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPoints)
}

func (h *donationPointHandler) UploadPointImage(c *fiber.Ctx) error {
	req := new(domain.UploadPointImageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPointImage, err)
	}

	res, err := h.pointService.UploadPointImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, pointErrorStatus(err), domain.MessageFailedUploadPointImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadPointImage)
}
