package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Williamriis/bookshelf-api/internal/models"
)

type AuditLogger struct {
	Collection *mongo.Collection
}

func (l *AuditLogger) Log(ctx context.Context, entity, action string, data any) error {
	entry := models.AuditLog{
		Timestamp: time.Now(),
		Entity:    entity,
		Action:    action,
		Data:      data,
	}
	_, err := l.Collection.InsertOne(ctx, entry)
	return err
}
