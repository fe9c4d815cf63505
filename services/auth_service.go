package services

import (
	"bnc-store/models"
	"bnc-store/repositories"
	"bnc-store/utils"
	"context"
	"errors"
)

type AuthService struct {
	adminRepo *repositories.AdminRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		adminRepo: repositories.NewAdminRepository(),
	}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(admin.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, "admin")
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		Admin: *admin,
	}, nil
}
