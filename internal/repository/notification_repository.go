package repository

import (
	"brightminds_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListByParent(parentID uint, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.DB.Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(parentID, notificationID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("id = ? AND parent_id = ?", notificationID, parentID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) UnreadCount(parentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("parent_id = ? AND is_read = ?", parentID, false).
		Count(&count).Error
	return count, err
}
