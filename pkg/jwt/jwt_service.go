package jwt

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/internal/utils"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type (
	JWTService interface {
		GenerateTokenDonor(donorID string, role string) string
		ValidateTokenDonor(token string) (*jwt.Token, error)
		GetDonorIDByToken(token string) (string, string, error)
		RefreshToken(token string) (string, error)
	}

	jwtDonorClaim struct {
		DonorID string `json:"donor_id"`
		Role    string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "PUNTO-DONATIVO",
	}
}

func (j *jwtService) GenerateTokenDonor(donorID string, role string) string {
	claims := jwtDonorClaim{
		donorID,
		role,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenDonor(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtDonorClaim{}, j.parseToken)
}

func (j *jwtService) GetDonorIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenDonor(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtDonorClaim)
	return claims.DonorID, claims.Role, nil
}

func (j *jwtService) RefreshToken(token string) (string, error) {
	donorID, role, err := j.GetDonorIDByToken(token)
	if err != nil {
		return "", err
	}
	return j.GenerateTokenDonor(donorID, role), nil
}
