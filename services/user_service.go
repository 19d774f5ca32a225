package services

import (
	"context"
	"errors"
	"strings"

	"pdv/models"
	"pdv/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrEmailTaken     = errors.New("Email já cadastrado")
	ErrDeleteSelf     = errors.New("Você não pode excluir sua própria conta.")
	ErrProtectedAdmin = errors.New("Não é possível excluir o administrador principal.")
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}

// UserService manages staff accounts. The seeded admins cannot be removed.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// AddUser creates a staff account with the permissions of its role.
func (s *UserService) AddUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	permissions := models.RolePermissions[req.Role]
	if permissions == nil {
		permissions = []string{}
	}
	user := &models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Password:    hash,
		Role:        req.Role,
		Permissions: permissions,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account id on behalf of currentUserID. It returns
// pgx.ErrNoRows for an unknown id.
func (s *UserService) DeleteUser(ctx context.Context, id, currentUserID int) (*models.User, error) {
	if id == currentUserID {
		return nil, ErrDeleteSelf
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isSeededAdmin(user.Email) {
		return nil, ErrProtectedAdmin
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

func isSeededAdmin(email string) bool {
	for _, u := range defaultUsers {
		if strings.EqualFold(u.email, email) {
			return true
		}
	}
	return false
}
