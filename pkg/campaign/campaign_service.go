package campaign

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type (
	CampaignService interface {
		CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (*domain.CampaignResponse, error)
		GetCampaigns(ctx context.Context) ([]*domain.CampaignResponse, error)
		EnrollDonor(ctx context.Context, req domain.EnrollDonorRequest) (*domain.EnrollmentResponse, error)
		GetEnrollmentsByDonor(ctx context.Context, donorID uint) ([]*domain.EnrollmentResponse, error)
	}

	campaignService struct {
		campaignRepository CampaignRepository
	}
)

func NewCampaignService(campaignRepository CampaignRepository) CampaignService {
	return &campaignService{campaignRepository: campaignRepository}
}

func (s *campaignService) CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrInvalidDateRange)
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrInvalidDateRange)
	}

	campaign := &entities.Campaign{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.campaignRepository.CreateCampaign(ctx, campaign); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return toCampaignResponse(campaign), nil
}

func (s *campaignService) GetCampaigns(ctx context.Context) ([]*domain.CampaignResponse, error) {
	campaigns, err := s.campaignRepository.GetCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	result := make([]*domain.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, toCampaignResponse(c))
	}
	return result, nil
}

func (s *campaignService) EnrollDonor(ctx context.Context, req domain.EnrollDonorRequest) (*domain.EnrollmentResponse, error) {
	if _, err := s.campaignRepository.GetCampaignByID(ctx, req.CampaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	if _, err := s.campaignRepository.GetEnrollment(ctx, req.CampaignID, req.DonorID); err == nil {
		return nil, domain.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	enrollment := &entities.CampaignDonor{
		CampaignID: req.CampaignID,
		DonorID:    req.DonorID,
	}
	if err := s.campaignRepository.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return &domain.EnrollmentResponse{
		ID:         enrollment.ID,
		CampaignID: enrollment.CampaignID,
		DonorID:    enrollment.DonorID,
	}, nil
}

func (s *campaignService) GetEnrollmentsByDonor(ctx context.Context, donorID uint) ([]*domain.EnrollmentResponse, error) {
	enrollments, err := s.campaignRepository.GetEnrollmentsByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	result := make([]*domain.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, &domain.EnrollmentResponse{
			ID:         e.ID,
			CampaignID: e.CampaignID,
			DonorID:    e.DonorID,
		})
	}
	return result, nil
}

func toCampaignResponse(c *entities.Campaign) *domain.CampaignResponse {
	return &domain.CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
}
