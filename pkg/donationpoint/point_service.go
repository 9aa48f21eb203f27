package donationpoint

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"Punto-Donativo-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	PointService interface {
		CreatePoint(ctx context.Context, req domain.CreatePointRequest) (*domain.PointResponse, error)
		UpdatePoint(ctx context.Context, id uint, req domain.UpdatePointRequest) (*domain.PointResponse, error)
		DeletePoint(ctx context.Context, id uint) error
		GetPointByID(ctx context.Context, id uint) (*domain.PointResponse, error)
		ListPoints(ctx context.Context, name string) (*domain.ListPointsResponse, error)
		UploadPointImage(ctx context.Context, req domain.UploadPointImageRequest) (*domain.PointResponse, error)
	}

	pointService struct {
		pointRepository PointRepository
		s3              storage.AwsS3
	}
)

func NewPointService(pointRepository PointRepository, s3 storage.AwsS3) PointService {
	return &pointService{
		pointRepository: pointRepository,
		s3:              s3,
	}
}

func (s *pointService) CreatePoint(ctx context.Context, req domain.CreatePointRequest) (*domain.PointResponse, error) {
	point := &entities.DonationPoint{
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lon:     req.Lon,
	}
	if err := s.pointRepository.CreatePoint(ctx, point); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return toPointResponse(point), nil
}

func (s *pointService) UpdatePoint(ctx context.Context, id uint, req domain.UpdatePointRequest) (*domain.PointResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Lat != nil {
		updates["lat"] = *req.Lat
	}
	if req.Lon != nil {
		updates["lon"] = *req.Lon
	}
	if len(updates) == 0 {
		return nil, domain.ErrNoUpdatableFields
	}

	affected, err := s.pointRepository.UpdatePointFields(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	if affected == 0 {
		return nil, domain.ErrDonationPointNotFound
	}

	point, err := s.pointRepository.GetPointByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return toPointResponse(point), nil
}

func (s *pointService) DeletePoint(ctx context.Context, id uint) error {
	affected, err := s.pointRepository.DeletePoint(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	if affected == 0 {
		return domain.ErrDonationPointNotFound
	}
	return nil
}

func (s *pointService) GetPointByID(ctx context.Context, id uint) (*domain.PointResponse, error) {
	point, err := s.pointRepository.GetPointByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationPointNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return toPointResponse(point), nil
}

func (s *pointService) ListPoints(ctx context.Context, name string) (*domain.ListPointsResponse, error) {
	points, err := s.pointRepository.GetPoints(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	result := make([]*domain.PointResponse, 0, len(points))
	for _, p := range points {
		result = append(result, toPointResponse(p))
	}
	return &domain.ListPointsResponse{Points: result, Total: len(result)}, nil
}

func (s *pointService) UploadPointImage(ctx context.Context, req domain.UploadPointImageRequest) (*domain.PointResponse, error) {
	point, err := s.pointRepository.GetPointByID(ctx, req.PointID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationPointNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("point-%d", point.ID),
		req.Image,
		"donation-points",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if _, err := s.pointRepository.UpdatePointFields(ctx, point.ID, map[string]interface{}{"image_url": imageURL}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	point.ImageURL = imageURL
	return toPointResponse(point), nil
}

func toPointResponse(p *entities.DonationPoint) *domain.PointResponse {
	return &domain.PointResponse{
		ID:       p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Lat:      p.Lat,
		Lon:      p.Lon,
		ImageURL: p.ImageURL,
	}
}
