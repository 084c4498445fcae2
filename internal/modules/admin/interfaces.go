package admin

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	CreateStaff(ctx context.Context, u *domain.User, detail repository.StaffDetail) error
	ListStaff(ctx context.Context) ([]repository.StaffRow, error)
	DB() *gorm.DB
}
