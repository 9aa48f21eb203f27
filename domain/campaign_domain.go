package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCampaign = "campaign created successfully"
	MessageSuccessGetCampaigns   = "campaigns retrieved successfully"
	MessageSuccessEnrollDonor    = "donor enrolled in campaign successfully"
	MessageSuccessGetEnrollments = "campaign enrollments retrieved successfully"

	MessageFailedCreateCampaign = "failed to create campaign"
	MessageFailedGetCampaigns   = "failed to retrieve campaigns"
	MessageFailedEnrollDonor    = "failed to enroll donor in campaign"
	MessageFailedGetEnrollments = "failed to retrieve campaign enrollments"

	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAlreadyEnrolled  = errors.New("donor already enrolled in campaign")
)

type (
	CreateCampaignRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		StartDate   string `json:"start_date" validate:"required"`
		EndDate     string `json:"end_date" validate:"required"`
	}

	CampaignResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	}

	EnrollDonorRequest struct {
		CampaignID uint `json:"id_campaign" validate:"required"`
		DonorID    uint `json:"id_donor" validate:"required"`
	}

	EnrollmentResponse struct {
		ID         uint `json:"id"`
		CampaignID uint `json:"id_campaign"`
		DonorID    uint `json:"id_donor"`
	}
)
