package services

import (
	"context"

	"github.com/jey-uki/users-api/internal/models"
	repo "github.com/jey-uki/users-api/internal/repository"
)

// UserService applies normalization and validation, then issues exactly one
// storage call per operation. Uniqueness of email is left to the storage
// engine's index so concurrent creates are serialized there.
type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) Create(ctx context.Context, in models.CreateUserInput) (models.User, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}
	u := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Age:      in.Age,
		IsActive: true,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	return s.r.Create(ctx, u)
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.r.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.r.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, in models.UpdateUserInput) (models.User, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}
	return s.r.Update(ctx, id, in)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}
