package stats

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/pkg/campaign"
	"Punto-Donativo-Backend/pkg/donation"
	"Punto-Donativo-Backend/pkg/food"
	"context"
	"fmt"
	"math"
)

type (
	// StatsService derives per-donor aggregates from the donation and food
	// ledger history plus the campaign enrollment relation.
	StatsService interface {
		StatsForDonor(ctx context.Context, donorID uint) (*domain.DonorStatistics, error)
	}

	statsService struct {
		donationRepository donation.DonationRepository
		foodService        food.FoodService
		campaignRepository campaign.CampaignRepository
	}
)

func NewStatsService(donationRepository donation.DonationRepository, foodService food.FoodService, campaignRepository campaign.CampaignRepository) StatsService {
	return &statsService{
		donationRepository: donationRepository,
		foodService:        foodService,
		campaignRepository: campaignRepository,
	}
}

// StatsForDonor counts the donor's donations and campaign enrollments and
// sums the donated weight. Quantities are stored in centi-kilograms; the
// total is reported in kilograms rounded to 2 decimals. A donor with no
// history yields all-zero statistics.
func (s *statsService) StatsForDonor(ctx context.Context, donorID uint) (*domain.DonorStatistics, error) {
	donationCount, err := s.donationRepository.CountDonationsByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	campaignCount, err := s.campaignRepository.CountEnrollmentsByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	donationIDs, err := s.donationRepository.GetDonationIDsByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	totalCentiKg, err := s.foodService.TotalsForDonations(ctx, donationIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return &domain.DonorStatistics{
		DonationCount: donationCount,
		CampaignCount: campaignCount,
		TotalKg:       math.Round(float64(totalCentiKg)) / 100,
	}, nil
}
