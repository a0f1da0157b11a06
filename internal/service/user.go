package service

import (
	"context"
	"errors"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/rs/zerolog"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	if !validID(id) {
		return nil, notFound("User", "USER_NOT_FOUND")
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("User", "USER_NOT_FOUND")
	}
	return user, err
}

func (s *UserService) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	user, err := s.users.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, params model.UpdateUserParams) (*model.User, error) {
	if !validID(id) {
		return nil, notFound("User", "USER_NOT_FOUND")
	}

	user, err := s.users.Update(ctx, id, params)
	switch {
	case errors.Is(err, repository.ErrNoFields):
		return nil, noFields()
	case errors.Is(err, repository.ErrNotFound):
		return nil, notFound("User", "USER_NOT_FOUND")
	}
	return user, err
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return notFound("User", "USER_NOT_FOUND")
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("User", "USER_NOT_FOUND")
	}

	zerolog.Ctx(ctx).Info().Str("user_id", id).Msg("user deleted")
	return nil
}
