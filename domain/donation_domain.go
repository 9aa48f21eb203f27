package domain

import (
	"errors"
)

var (
	MessageSuccessCreateDonation = "donation created successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessUpdateDonation = "donation updated successfully"
	MessageSuccessDeleteDonation = "donation deleted successfully"
	MessageSuccessGetQRCode      = "qr code retrieved successfully"
	MessageSuccessGetDetails     = "donation details retrieved successfully"

	MessageFailedCreateDonation = "failed to create donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedUpdateDonation = "failed to update donation"
	MessageFailedDeleteDonation = "failed to delete donation"
	MessageFailedGetQRCode      = "failed to retrieve qr code"
	MessageFailedGetDetails     = "failed to retrieve donation details"

	ErrDonationNotFound    = errors.New("donation not found")
	ErrFoodItemsRequired   = errors.New("at least one food item is required")
	ErrInvalidFoodItem     = errors.New("invalid food item")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrTokenIssuanceFailed = errors.New("donation created but qr code issuance failed")
	ErrPersistenceFailed   = errors.New("storage operation failed")
	ErrInvalidDonationID   = errors.New("donation id must be positive")
	ErrInvalidTokenPayload = errors.New("token payload does not resolve to a donation")
)

type (
	FoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
		Category   string `json:"category" validate:"required"`
		Perishable bool   `json:"perishable"`
	}

	CreateDonationRequest struct {
		ID      uint              `json:"id" validate:"omitempty"`
		Date    string            `json:"date" validate:"required"`
		Time    string            `json:"time" validate:"required"`
		State   string            `json:"state" validate:"required"`
		DonorID uint              `json:"id_donor" validate:"required"`
		PointID uint              `json:"id_point" validate:"required"`
		Type    string            `json:"type" validate:"required"`
		Pending *bool             `json:"pending" validate:"required"`
		Foods   []FoodItemRequest `json:"foods" validate:"required,min=1,dive"`
	}

	CreateDonationResponse struct {
		DonationID uint   `json:"donation_id"`
		QRCode     string `json:"qr_code"`
	}

	// UpdateDonationRequest uses pointers so only the fields present in
	// the request body are applied; absent fields stay untouched.
	UpdateDonationRequest struct {
		ID      uint    `json:"id" validate:"required"`
		Date    *string `json:"date"`
		Time    *string `json:"time"`
		State   *string `json:"state"`
		DonorID *uint   `json:"id_donor"`
		PointID *uint   `json:"id_point"`
		Type    *string `json:"type"`
		Pending *bool   `json:"pending"`
	}

	DeleteDonationRequest struct {
		ID uint `json:"id" validate:"required"`
	}

	DonorSummary struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}

	FoodItemResponse struct {
		ID         uint   `json:"id"`
		Name       string `json:"name"`
		Quantity   int    `json:"quantity"`
		Category   string `json:"category"`
		Perishable bool   `json:"perishable"`
	}

	DonationResponse struct {
		ID             uint                `json:"id"`
		Date           string              `json:"date"`
		Time           string              `json:"time"`
		State          string              `json:"state"`
		DonorID        uint                `json:"id_donor"`
		PointID        uint                `json:"id_point"`
		Type           string              `json:"type"`
		Pending        bool                `json:"pending"`
		FoodItems      []*FoodItemResponse `json:"food_items,omitempty"`
		Donor          *DonorSummary       `json:"donor,omitempty"`
		TotalFoodItems int                 `json:"total_food_items,omitempty"`
	}

	DonationDetailsResponse struct {
		Donation       *DonationResponse   `json:"donation"`
		FoodItems      []*FoodItemResponse `json:"food_items"`
		Donor          *DonorSummary       `json:"donor"`
		TotalFoodItems int                 `json:"total_food_items"`
	}

	QRCodeResponse struct {
		QR string `json:"qr"`
	}
)
