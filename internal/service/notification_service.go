package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
)

// NotificationService is the NotificationSink the engine writes through,
// plus the parent inbox on top of the same table.
type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) Notify(parentID uint, kind model.NotificationKind, title, message string) error {
	return s.Repo.Create(&model.Notification{
		ParentID: parentID,
		Kind:     kind,
		Title:    title,
		Message:  message,
	})
}

func (s *NotificationService) Inbox(parentID uint, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.Repo.ListByParent(parentID, limit)
}

func (s *NotificationService) MarkRead(parentID, notificationID uint) error {
	return s.Repo.MarkRead(parentID, notificationID)
}

func (s *NotificationService) UnreadCount(parentID uint) (int64, error) {
	return s.Repo.UnreadCount(parentID)
}
