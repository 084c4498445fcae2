package auth

import (
	"context"

	"tourbook/internal/domain"
)

// UserRepository covers only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	CreateCustomerDetail(ctx context.Context, userID int64, address string) error
}
