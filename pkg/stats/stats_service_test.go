package stats

import (
	"Punto-Donativo-Backend/pkg/campaign"
	"Punto-Donativo-Backend/pkg/donation"
	"Punto-Donativo-Backend/pkg/food"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mocks embed the interfaces and override only what StatsForDonor touches.

type mockDonationRepo struct {
	donation.DonationRepository
	counts map[uint]int64
	ids    map[uint][]uint
}

func (m *mockDonationRepo) CountDonationsByDonor(ctx context.Context, donorID uint) (int64, error) {
	return m.counts[donorID], nil
}

func (m *mockDonationRepo) GetDonationIDsByDonor(ctx context.Context, donorID uint) ([]uint, error) {
	return m.ids[donorID], nil
}

type mockFoodService struct {
	food.FoodService
	totals map[uint]int64 // per-donation quantity sums
}

func (m *mockFoodService) TotalsForDonations(ctx context.Context, donationIDs []uint) (int64, error) {
	if len(donationIDs) == 0 {
		return 0, nil
	}
	var total int64
	for _, id := range donationIDs {
		total += m.totals[id]
	}
	return total, nil
}

type mockCampaignRepo struct {
	campaign.CampaignRepository
	enrollments map[uint]int64
}

func (m *mockCampaignRepo) CountEnrollmentsByDonor(ctx context.Context, donorID uint) (int64, error) {
	return m.enrollments[donorID], nil
}

func TestStatsForDonor_ConvertsCentiKgToKg(t *testing.T) {
	donations := &mockDonationRepo{
		counts: map[uint]int64{1: 1, 2: 1},
		ids:    map[uint][]uint{1: {10}, 2: {20}},
	}
	foods := &mockFoodService{totals: map[uint]int64{10: 250, 20: 750}}
	campaigns := &mockCampaignRepo{enrollments: map[uint]int64{1: 2}}

	svc := NewStatsService(donations, foods, campaigns)

	first, err := svc.StatsForDonor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.DonationCount)
	assert.Equal(t, int64(2), first.CampaignCount)
	assert.Equal(t, 2.50, first.TotalKg)

	second, err := svc.StatsForDonor(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.DonationCount)
	assert.Equal(t, 7.50, second.TotalKg)
}

func TestStatsForDonor_ZeroHistoryYieldsZeroStats(t *testing.T) {
	svc := NewStatsService(
		&mockDonationRepo{counts: map[uint]int64{}, ids: map[uint][]uint{}},
		&mockFoodService{totals: map[uint]int64{}},
		&mockCampaignRepo{enrollments: map[uint]int64{}},
	)

	stats, err := svc.StatsForDonor(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, stats.DonationCount)
	assert.Zero(t, stats.CampaignCount)
	assert.Zero(t, stats.TotalKg)
}

func TestStatsForDonor_EmptyDonationAffectsCountNotWeight(t *testing.T) {
	donations := &mockDonationRepo{
		counts: map[uint]int64{1: 2},
		ids:    map[uint][]uint{1: {10, 11}}, // donation 11 has no food items
	}
	foods := &mockFoodService{totals: map[uint]int64{10: 500}}
	campaigns := &mockCampaignRepo{enrollments: map[uint]int64{}}

	svc := NewStatsService(donations, foods, campaigns)

	stats, err := svc.StatsForDonor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.DonationCount)
	assert.Equal(t, 5.00, stats.TotalKg)
}
