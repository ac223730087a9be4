package worker

import (
	"github.com/ticketflow/ticketflow/internal/service"
)

// StartActivityWorker registers activity log handlers.
func StartActivityWorker(activity *service.ActivityService) {
	if activity == nil {
		return
	}
	activity.RegisterHandlers()
}
