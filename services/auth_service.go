package services

import (
	"context"
	"errors"
	"time"

	"pdv/models"
	"pdv/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users  UserFinder
	secret string
	expiry time.Duration
}

func NewAuthService(users UserFinder, secret string, expiry time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, expiry: expiry}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.secret, s.expiry, utils.Claims{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: user.Permissions,
	})
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
