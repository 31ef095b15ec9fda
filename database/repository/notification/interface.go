// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"medportal/database"
	"medportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByDoctor(ctx context.Context, doctorID string, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, doctorID string) (int64, error)
	MarkRead(ctx context.Context, doctorID, id string) error
	MarkAllRead(ctx context.Context, doctorID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
