package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"user-service-backend/internal/features/user/models"
)

var (
	// ErrNotFound means the filter matched no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate means the store's unique index rejected the write.
	ErrDuplicate = errors.New("duplicate username")
)

// UserRepository is the gateway to the user collection. Documents are
// returned in store-native insertion order; no other ordering is defined.
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	Find(ctx context.Context, skip, limit int64) ([]*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, input *models.UserInput) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
