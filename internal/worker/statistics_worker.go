package worker

import (
	"github.com/spec-kit/skills-registry/internal/service"
)

// StartStatisticsWorker registers aggregation handlers.
func StartStatisticsWorker(aggregationService *service.AggregationService) {
	if aggregationService == nil {
		return
	}
	aggregationService.RegisterHandlers()
}
