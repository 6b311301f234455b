package utils

import (
	"github.com/sirupsen/logrus"

	"github.com/Williamriis/bookshelf-api/internal/models"
	logger "github.com/Williamriis/bookshelf-api/loggers"
)

func ExportAuditLogs(logs []models.AuditLog) error {
	for _, entry := range logs {
		logger.Logger.WithFields(logrus.Fields{
			"entity": entry.Entity,
			"action": entry.Action,
			"at":     entry.Timestamp,
		}).Info("audit export")
	}
	return nil
}
