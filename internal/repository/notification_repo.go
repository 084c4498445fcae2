package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.RefundNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) List(ctx context.Context, unreadOnly bool) ([]domain.RefundNotification, error) {
	q := r.db.WithContext(ctx).Order("notification_id DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var out []domain.RefundNotification
	err := q.Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.RefundNotification{}).
		Where("notification_id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
