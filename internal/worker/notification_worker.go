package worker

import (
	"go.uber.org/zap"

	"github.com/qztech/asset-console/internal/service"
)

// StartNotificationWorker registers notification handlers for ticket,
// warranty, maintenance, and inventory events.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
