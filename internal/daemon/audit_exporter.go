package daemon

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Williamriis/bookshelf-api/internal/models"
	"github.com/Williamriis/bookshelf-api/internal/utils"
	logger "github.com/Williamriis/bookshelf-api/loggers"
)

// AuditExporter periodically drains unexported audit rows and marks
// them exported. Best effort: a failed pass is retried on the next tick.
type AuditExporter struct {
	Coll     *mongo.Collection
	Interval time.Duration

	stop chan struct{}
}

func (e *AuditExporter) Start() {
	e.stop = make(chan struct{})
	go e.run()
}

func (e *AuditExporter) Stop() {
	close(e.stop)
}

func (e *AuditExporter) run() {
	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			if err := e.ExportPending(context.Background()); err != nil {
				logger.Logger.Warnf("audit export pass failed: %v", err)
			}
		}
	}
}

func (e *AuditExporter) ExportPending(ctx context.Context) error {
	cursor, err := e.Coll.Find(ctx, bson.M{"exported": false})
	if err != nil {
		return err
	}

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return err
	}
	if len(logs) == 0 {
		return nil
	}

	if err := utils.ExportAuditLogs(logs); err != nil {
		return err
	}

	ids := make([]primitive.ObjectID, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}

	_, err = e.Coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"exported": true}},
	)
	return err
}
