package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"user-service-backend/internal/common/validation"
	"user-service-backend/internal/features/user/models"
	"user-service-backend/internal/features/user/repository"
)

var (
	ErrInvalidID       = errors.New("malformed user id")
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already exist")
	ErrInvalidUsername = errors.New("invalid username")
	// ErrNotModified covers both an absent id and a payload identical to
	// the stored record; the store reports zero modified documents either
	// way and this layer does not tell the two apart.
	ErrNotModified = errors.New("user not found or not modified")
)

type UserService interface {
	ListUsers(ctx context.Context, skip, limit int64) (*models.UserPage, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, input *models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id string, input *models.UserInput) (*models.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

// ListUsers returns one offset slice of the listing together with the
// total count. An empty page, including skip running past the end, is
// reported as ErrUserNotFound rather than an empty success.
func (s *userService) ListUsers(ctx context.Context, skip, limit int64) (*models.UserPage, error) {
	counts, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.Find(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	return &models.UserPage{
		Counts: counts,
		Skip:   skip,
		Limit:  limit,
		Users:  users,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, input *models.UserInput) (*models.User, error) {
	if err := validation.ValidateUsername(input.Username); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUsername, err)
	}

	// Fast-path duplicate check; the unique index underneath is the
	// authoritative one.
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Username:  input.Username,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	user.ID = id
	return user, nil
}

// UpdateUser replaces the record's mutable fields wholesale. Renaming a
// record to the username it already holds is allowed; renaming it to a
// username held by another record is a conflict. On success the stored
// state is not re-read - the write is trusted and the payload echoed.
func (s *userService) UpdateUser(ctx context.Context, id string, input *models.UserInput) (*models.UserResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	if err := validation.ValidateUsername(input.Username); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUsername, err)
	}

	holder, err := s.repo.FindByUsername(ctx, input.Username)
	if err == nil {
		if holder.ID != oid {
			return nil, ErrUsernameTaken
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	modified, err := s.repo.Update(ctx, oid, input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if modified == 0 {
		return nil, ErrNotModified
	}

	return &models.UserResponse{
		ID:        oid.Hex(),
		Username:  input.Username,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
	}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return ErrUserNotFound
	}

	return nil
}
