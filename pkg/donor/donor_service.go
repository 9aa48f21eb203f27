package donor

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"Punto-Donativo-Backend/internal/utils/mailing"
	"Punto-Donativo-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	DonorService interface {
		Register(ctx context.Context, req domain.RegisterDonorRequest) (*domain.RegisterDonorResponse, error)
		Login(ctx context.Context, req domain.LoginDonorRequest) (*domain.LoginDonorResponse, error)
		GetDonorByID(ctx context.Context, id uint) (*domain.RegisterDonorResponse, error)
	}

	donorService struct {
		donorRepository DonorRepository
		jwtService      jwt.JWTService
	}
)

func NewDonorService(donorRepository DonorRepository, jwtService jwt.JWTService) DonorService {
	return &donorService{
		donorRepository: donorRepository,
		jwtService:      jwtService,
	}
}

func (s *donorService) Register(ctx context.Context, req domain.RegisterDonorRequest) (*domain.RegisterDonorResponse, error) {
	if _, err := s.donorRepository.GetDonorByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	donor := &entities.Donor{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
	}
	if err := s.donorRepository.CreateDonor(ctx, donor); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	// Welcome mail is best-effort; registration succeeds either way.
	go func() {
		body := "<p>Hola " + donor.Name + ",</p><p>Welcome to Punto Donativo. You can now register donations at any donation point.</p>"
		if err := mailing.SendMail(donor.Email, "Welcome to Punto Donativo", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", donor.Email, err)
		}
	}()

	return toDonorResponse(donor), nil
}

func (s *donorService) Login(ctx context.Context, req domain.LoginDonorRequest) (*domain.LoginDonorResponse, error) {
	donor, err := s.donorRepository.GetDonorByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(donor.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenDonor(strconv.FormatUint(uint64(donor.ID), 10), "donor")

	return &domain.LoginDonorResponse{
		AccessToken: token,
		Donor:       *toDonorResponse(donor),
	}, nil
}

func (s *donorService) GetDonorByID(ctx context.Context, id uint) (*domain.RegisterDonorResponse, error) {
	donor, err := s.donorRepository.GetDonorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return toDonorResponse(donor), nil
}

func toDonorResponse(donor *entities.Donor) *domain.RegisterDonorResponse {
	return &domain.RegisterDonorResponse{
		ID:    donor.ID,
		Name:  donor.Name,
		Email: donor.Email,
		Phone: donor.Phone,
	}
}
