package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/trip-booking-service/internal/service"
)

// StartNotificationWorker registers notification handlers on the dispatcher.
// Delivery is synchronous today; this is the seam where a queue consumer
// would slot in.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification handlers registered")
}
