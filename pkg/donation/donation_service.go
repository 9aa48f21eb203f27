package donation

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"Punto-Donativo-Backend/pkg/food"
	"Punto-Donativo-Backend/pkg/qrtoken"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*domain.CreateDonationResponse, error)
		UpdateDonation(ctx context.Context, req domain.UpdateDonationRequest) (*domain.DonationResponse, error)
		DeleteDonation(ctx context.Context, id uint) error
		GetDonationDetails(ctx context.Context, id uint, pending *bool) (*domain.DonationDetailsResponse, error)
		GetDonationToken(ctx context.Context, id uint) (*domain.QRCodeResponse, error)
		ListDonations(ctx context.Context, id *uint, details bool) ([]*domain.DonationResponse, error)
		ListPendingDonations(ctx context.Context) ([]*domain.DonationResponse, error)
		ListDonationsByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		foodService        food.FoodService
		qrTokenService     qrtoken.QRTokenService
	}
)

func NewDonationService(donationRepository DonationRepository, foodService food.FoodService, qrTokenService qrtoken.QRTokenService) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		foodService:        foodService,
		qrTokenService:     qrTokenService,
	}
}

// CreateDonation registers a donation together with its food ledger and
// pickup token. The three storage writes are not atomic: a failed food
// insert triggers a compensating delete of the donation row, while a failed
// token step leaves donation and foods in place and surfaces
// ErrTokenIssuanceFailed so the caller can retry issuance alone.
func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*domain.CreateDonationResponse, error) {
	if len(req.Foods) == 0 {
		return nil, domain.ErrFoodItemsRequired
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidDateRange)
	}

	donation := &entities.Donation{
		ID:      req.ID,
		Date:    req.Date,
		Time:    req.Time,
		State:   req.State,
		DonorID: req.DonorID,
		PointID: req.PointID,
		Type:    req.Type,
		Pending: *req.Pending,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	if _, err := s.foodService.Attach(ctx, donation.ID, req.Foods); err != nil {
		// The donation must never stay visible without its items.
		if _, delErr := s.donationRepository.DeleteDonation(ctx, donation.ID); delErr != nil {
			return nil, fmt.Errorf("%w: food insert failed and rollback failed: %v", domain.ErrPersistenceFailed, delErr)
		}
		return nil, err
	}

	token, err := s.qrTokenService.Issue(donation.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenIssuanceFailed, err)
	}
	if err := s.donationRepository.SetDonationToken(ctx, donation.ID, token); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenIssuanceFailed, err)
	}

	return &domain.CreateDonationResponse{
		DonationID: donation.ID,
		QRCode:     token,
	}, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, req domain.UpdateDonationRequest) (*domain.DonationResponse, error) {
	if _, err := s.donationRepository.GetDonationByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.DonorID != nil {
		updates["donor_id"] = *req.DonorID
	}
	if req.PointID != nil {
		updates["point_id"] = *req.PointID
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Pending != nil {
		updates["pending"] = *req.Pending
	}

	if len(updates) > 0 {
		if err := s.donationRepository.UpdateDonationFields(ctx, req.ID, updates); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
		}
	}

	updated, err := s.donationRepository.GetDonationByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return toDonationResponse(updated), nil
}

// DeleteDonation removes the donation and its food lines. The ledger cascade
// runs first so food items can never outlive their parent.
func (s *donationService) DeleteDonation(ctx context.Context, id uint) error {
	if _, err := s.donationRepository.GetDonationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	if err := s.foodService.Detach(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	deleted, err := s.donationRepository.DeleteDonation(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	if deleted == 0 {
		return domain.ErrDonationNotFound
	}

	return nil
}

// GetDonationDetails loads a donation, optionally scoped to a pending value
// (a state mismatch reads as not found), and joins its food items with a
// reduced donor view.
func (s *donationService) GetDonationDetails(ctx context.Context, id uint, pending *bool) (*domain.DonationDetailsResponse, error) {
	var (
		donation *entities.Donation
		err      error
	)
	if pending != nil {
		donation, err = s.donationRepository.GetDonationByIDAndPending(ctx, id, *pending)
	} else {
		donation, err = s.donationRepository.GetDonationByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	items, err := s.foodService.ItemsForDonation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return &domain.DonationDetailsResponse{
		Donation:       toDonationResponse(donation),
		FoodItems:      toFoodItemResponses(items),
		Donor:          toDonorSummary(donation.Donor),
		TotalFoodItems: len(items),
	}, nil
}

// GetDonationToken returns the stored QR payload only while the donation is
// pending. Absent, resolved, and tokenless donations all read as not found so
// a displayed code cannot be replayed after pickup.
func (s *donationService) GetDonationToken(ctx context.Context, id uint) (*domain.QRCodeResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	if !donation.Pending || donation.Token == "" {
		return nil, domain.ErrDonationNotFound
	}

	return &domain.QRCodeResponse{QR: donation.Token}, nil
}

func (s *donationService) ListDonations(ctx context.Context, id *uint, details bool) ([]*domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetDonations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		res := toDonationResponse(d)
		if details {
			items, err := s.foodService.ItemsForDonation(ctx, d.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
			}
			res.FoodItems = toFoodItemResponses(items)
			res.Donor = toDonorSummary(d.Donor)
			res.TotalFoodItems = len(items)
		}
		result = append(result, res)
	}

	return result, nil
}

func (s *donationService) ListPendingDonations(ctx context.Context) ([]*domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetPendingDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDonationResponse(d))
	}
	return result, nil
}

func (s *donationService) ListDonationsByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.DonationResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}

	donations, err := s.donationRepository.GetDonationsByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDonationResponse(d))
	}
	return result, nil
}

func toDonationResponse(d *entities.Donation) *domain.DonationResponse {
	return &domain.DonationResponse{
		ID:      d.ID,
		Date:    d.Date,
		Time:    d.Time,
		State:   d.State,
		DonorID: d.DonorID,
		PointID: d.PointID,
		Type:    d.Type,
		Pending: d.Pending,
	}
}

func toFoodItemResponses(items []*entities.FoodItem) []*domain.FoodItemResponse {
	result := make([]*domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, &domain.FoodItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Category:   item.Category,
			Perishable: item.Perishable,
		})
	}
	return result
}

// toDonorSummary reduces the donor to name and contact fields. Credential
// material never leaves the donors relation through this projection.
func toDonorSummary(donor *entities.Donor) *domain.DonorSummary {
	if donor == nil {
		return nil
	}
	return &domain.DonorSummary{
		ID:    donor.ID,
		Name:  donor.Name,
		Phone: donor.Phone,
		Email: donor.Email,
	}
}
