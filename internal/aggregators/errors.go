package aggregators

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeInternalCheckpointWriteFailed   = "AGG_9000"
	codeInternalCheckpointRestoreFailed = "AGG_9001"
	codeInternalSnapshotPublishFailed   = "AGG_9002"
)

// errInternalCheckpointWriteFailed returns an error when persisting the cumulative checkpoint fails.
func errInternalCheckpointWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCheckpointWriteFailed, fmt.Errorf("checkpointWriteFailed: %w", cause))
}

// errInternalCheckpointRestoreFailed returns an error when a persisted checkpoint cannot be read back.
func errInternalCheckpointRestoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCheckpointRestoreFailed, fmt.Errorf("checkpointRestoreFailed: %w", cause))
}

// errInternalSnapshotPublishFailed returns an error when a snapshot publisher rejects the cycle's snapshot.
func errInternalSnapshotPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotPublishFailed, fmt.Errorf("snapshotPublishFailed: %w", cause))
}
