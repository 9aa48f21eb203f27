package campaign

import (
	"Punto-Donativo-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CampaignRepository interface {
		CreateCampaign(ctx context.Context, campaign *entities.Campaign) error
		GetCampaignByID(ctx context.Context, id uint) (*entities.Campaign, error)
		GetCampaigns(ctx context.Context) ([]*entities.Campaign, error)
		CreateEnrollment(ctx context.Context, enrollment *entities.CampaignDonor) error
		GetEnrollment(ctx context.Context, campaignID, donorID uint) (*entities.CampaignDonor, error)
		GetEnrollmentsByDonor(ctx context.Context, donorID uint) ([]*entities.CampaignDonor, error)
		CountEnrollmentsByDonor(ctx context.Context, donorID uint) (int64, error)
	}

	campaignRepository struct {
		db *gorm.DB
	}
)

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *entities.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id uint) (*entities.Campaign, error) {
	var campaign entities.Campaign
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) GetCampaigns(ctx context.Context) ([]*entities.Campaign, error) {
	var campaigns []*entities.Campaign
	if err := r.db.WithContext(ctx).Order("start_date desc").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepository) CreateEnrollment(ctx context.Context, enrollment *entities.CampaignDonor) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *campaignRepository) GetEnrollment(ctx context.Context, campaignID, donorID uint) (*entities.CampaignDonor, error) {
	var enrollment entities.CampaignDonor
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND donor_id = ?", campaignID, donorID).
		First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *campaignRepository) GetEnrollmentsByDonor(ctx context.Context, donorID uint) ([]*entities.CampaignDonor, error) {
	var enrollments []*entities.CampaignDonor
	if err := r.db.WithContext(ctx).
		Preload("Campaign").
		Where("donor_id = ?", donorID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *campaignRepository) CountEnrollmentsByDonor(ctx context.Context, donorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CampaignDonor{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
