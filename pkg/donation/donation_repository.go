package donation

import (
	"Punto-Donativo-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error)
		GetDonationByIDAndPending(ctx context.Context, id uint, pending bool) (*entities.Donation, error)
		UpdateDonationFields(ctx context.Context, id uint, updates map[string]interface{}) error
		SetDonationToken(ctx context.Context, id uint, token string) error
		DeleteDonation(ctx context.Context, id uint) (int64, error)
		GetDonations(ctx context.Context, id *uint) ([]*entities.Donation, error)
		GetPendingDonations(ctx context.Context) ([]*entities.Donation, error)
		GetDonationsByDateRange(ctx context.Context, startDate, endDate string) ([]*entities.Donation, error)
		CountDonationsByDonor(ctx context.Context, donorID uint) (int64, error)
		GetDonationIDsByDonor(ctx context.Context, donorID uint) ([]uint, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonationByIDAndPending(ctx context.Context, id uint, pending bool) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ? AND pending = ?", id, pending).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateDonationFields(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *donationRepository) SetDonationToken(ctx context.Context, id uint, token string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Update("token", token).Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Donation{})
	return result.RowsAffected, result.Error
}

func (r *donationRepository) GetDonations(ctx context.Context, id *uint) ([]*entities.Donation, error) {
	var donations []*entities.Donation

	query := r.db.WithContext(ctx).Preload("Donor")
	if id != nil {
		query = query.Where("id = ?", *id)
	}

	if err := query.Order("date desc, id desc").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetPendingDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation

	// A stored token marks a completed intake; rows still mid-creation
	// never have one and are kept out of the pending list.
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("pending = ? AND token <> ''", true).
		Order("date desc, id desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsByDateRange(ctx context.Context, startDate, endDate string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date asc, id asc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) CountDonationsByDonor(ctx context.Context, donorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *donationRepository) GetDonationIDsByDonor(ctx context.Context, donorID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ?", donorID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
