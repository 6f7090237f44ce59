package http

import (
	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeStatisticsNotReady = "STATS_1000"
)

// errStatisticsNotReady returns an error when no snapshot has been published
// yet (the first cycle has not completed since startup).
func errStatisticsNotReady() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeStatisticsNotReady, "statistics not ready yet", nil)
}
