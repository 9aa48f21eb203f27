package food

import (
	"Punto-Donativo-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		BulkInsertFoodItems(ctx context.Context, items []*entities.FoodItem) error
		GetFoodItemsByDonationID(ctx context.Context, donationID uint) ([]*entities.FoodItem, error)
		DeleteFoodItemsByDonationID(ctx context.Context, donationID uint) error
		SumQuantitiesForDonations(ctx context.Context, donationIDs []uint) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) BulkInsertFoodItems(ctx context.Context, items []*entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *foodRepository) GetFoodItemsByDonationID(ctx context.Context, donationID uint) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) DeleteFoodItemsByDonationID(ctx context.Context, donationID uint) error {
	return r.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) SumQuantitiesForDonations(ctx context.Context, donationIDs []uint) (int64, error) {
	if len(donationIDs) == 0 {
		return 0, nil
	}

	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Select("COALESCE(SUM(quantity), 0) as total").
		Where("donation_id IN ?", donationIDs).
		Scan(&result).Error; err != nil {
		return 0, err
	}

	return result.Total, nil
}
