package food

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"context"
	"fmt"
)

type (
	// FoodService owns the ledger of line items belonging to a donation.
	// Items are attached atomically at donation intake and are immutable
	// afterwards; the only later mutation is the cascade delete when the
	// parent donation is removed.
	FoodService interface {
		Attach(ctx context.Context, donationID uint, items []domain.FoodItemRequest) ([]*entities.FoodItem, error)
		ItemsForDonation(ctx context.Context, donationID uint) ([]*entities.FoodItem, error)
		TotalsForDonations(ctx context.Context, donationIDs []uint) (int64, error)
		Detach(ctx context.Context, donationID uint) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) Attach(ctx context.Context, donationID uint, items []domain.FoodItemRequest) ([]*entities.FoodItem, error) {
	if len(items) == 0 {
		return nil, domain.ErrFoodItemsRequired
	}

	entityItems := make([]*entities.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidFoodItem)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidFoodItem)
		}
		if item.Category == "" {
			return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidFoodItem)
		}

		entityItems = append(entityItems, &entities.FoodItem{
			DonationID: donationID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Category:   item.Category,
			Perishable: item.Perishable,
		})
	}

	if err := s.foodRepository.BulkInsertFoodItems(ctx, entityItems); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return entityItems, nil
}

func (s *foodService) ItemsForDonation(ctx context.Context, donationID uint) ([]*entities.FoodItem, error) {
	return s.foodRepository.GetFoodItemsByDonationID(ctx, donationID)
}

// TotalsForDonations sums quantities across the given donations. Donations
// without items contribute zero; an empty id set yields zero.
func (s *foodService) TotalsForDonations(ctx context.Context, donationIDs []uint) (int64, error) {
	return s.foodRepository.SumQuantitiesForDonations(ctx, donationIDs)
}

func (s *foodService) Detach(ctx context.Context, donationID uint) error {
	return s.foodRepository.DeleteFoodItemsByDonationID(ctx, donationID)
}
