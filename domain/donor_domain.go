package domain

import (
	"errors"
)

var (
	MessageSuccessRegister      = "donor registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetDonor      = "donor retrieved successfully"
	MessageSuccessGetDonorStats = "donor statistics retrieved successfully"

	MessageFailedRegister      = "failed to register donor"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetDonor      = "failed to retrieve donor"
	MessageFailedGetDonorStats = "failed to retrieve donor statistics"

	ErrDonorNotFound          = errors.New("donor not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
)

type (
	RegisterDonorRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterDonorResponse struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	LoginDonorRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginDonorResponse struct {
		AccessToken string                `json:"access_token"`
		Donor       RegisterDonorResponse `json:"donor"`
	}

	// DonorStatistics aggregates a donor's history: how many donations
	// they made, how many campaigns they are enrolled in, and the total
	// donated weight in kilograms (rounded to 2 decimals).
	DonorStatistics struct {
		DonationCount int64   `json:"donation_count"`
		CampaignCount int64   `json:"campaign_count"`
		TotalKg       float64 `json:"total_kg"`
	}
)
