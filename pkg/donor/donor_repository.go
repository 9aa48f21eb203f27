package donor

import (
	"Punto-Donativo-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonorRepository interface {
		CreateDonor(ctx context.Context, donor *entities.Donor) error
		GetDonorByID(ctx context.Context, id uint) (*entities.Donor, error)
		GetDonorByEmail(ctx context.Context, email string) (*entities.Donor, error)
	}

	donorRepository struct {
		db *gorm.DB
	}
)

func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) CreateDonor(ctx context.Context, donor *entities.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) GetDonorByID(ctx context.Context, id uint) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) GetDonorByEmail(ctx context.Context, email string) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}
