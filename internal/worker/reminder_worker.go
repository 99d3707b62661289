package worker

import (
	"github.com/spec-kit/news-service/internal/service"
)

// StartReminderWorker registers reminder event handlers.
func StartReminderWorker(reminderService *service.ReminderService) {
	if reminderService == nil {
		return
	}
	reminderService.RegisterHandlers()
}
