package donationpoint

import (
	"Punto-Donativo-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PointRepository interface {
		CreatePoint(ctx context.Context, point *entities.DonationPoint) error
		GetPointByID(ctx context.Context, id uint) (*entities.DonationPoint, error)
		GetPoints(ctx context.Context, name string) ([]*entities.DonationPoint, error)
		UpdatePointFields(ctx context.Context, id uint, updates map[string]interface{}) (int64, error)
		DeletePoint(ctx context.Context, id uint) (int64, error)
	}

	pointRepository struct {
		db *gorm.DB
	}
)

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) CreatePoint(ctx context.Context, point *entities.DonationPoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *pointRepository) GetPointByID(ctx context.Context, id uint) (*entities.DonationPoint, error) {
	var point entities.DonationPoint
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&point).Error; err != nil {
		return nil, err
	}
	return &point, nil
}

func (r *pointRepository) GetPoints(ctx context.Context, name string) ([]*entities.DonationPoint, error) {
	var points []*entities.DonationPoint

	query := r.db.WithContext(ctx)
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	if err := query.Order("created_at desc").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (r *pointRepository) UpdatePointFields(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.DonationPoint{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *pointRepository) DeletePoint(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.DonationPoint{})
	return result.RowsAffected, result.Error
}
