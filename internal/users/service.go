package users

import (
	"context"
	"fmt"
	"time"

	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/luisherrera/billpoint-backend/pkg/types"
	"gorm.io/gorm"
)

// UpdateProfileInput captures the editable profile fields.
type UpdateProfileInput struct {
	Name        string        `json:"name" validate:"required"`
	ShopName    *string       `json:"shop_name"`
	ShopAddress *string       `json:"shop_address"`
	Phone       *string       `json:"phone"`
	Settings    types.JSONMap `json:"settings"`
}

// UserDTO is the profile shape returned to clients.
type UserDTO struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	ShopName    *string       `json:"shop_name,omitempty"`
	ShopAddress *string       `json:"shop_address,omitempty"`
	Phone       *string       `json:"phone,omitempty"`
	Settings    types.JSONMap `json:"settings,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Service manages the shopkeeper profile attached to incoming requests.
type Service interface {
	GetOrCreate(ctx context.Context, id string) (*UserDTO, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*UserDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a users service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

// GetOrCreate lazily provisions the profile row the first time an identity
// shows up. There is no signup flow, identity is a header-supplied id.
func (s *service) GetOrCreate(ctx context.Context, id string) (*UserDTO, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return toUserDTO(user), nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}

	created, err := s.repo.Create(ctx, &models.User{ID: id})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}
	return toUserDTO(created), nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*UserDTO, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
		}
		user = &models.User{ID: id}
		if _, err := s.repo.Create(ctx, user); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
		}
	}

	user.Name = input.Name
	user.ShopName = input.ShopName
	user.ShopAddress = input.ShopAddress
	user.Phone = input.Phone
	if input.Settings != nil {
		user.Settings = input.Settings
	}

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving user")
	}
	return toUserDTO(saved), nil
}

func toUserDTO(user *models.User) *UserDTO {
	return &UserDTO{
		ID:          user.ID,
		Name:        user.Name,
		ShopName:    user.ShopName,
		ShopAddress: user.ShopAddress,
		Phone:       user.Phone,
		Settings:    user.Settings,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
