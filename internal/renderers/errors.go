package renderers

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeInternalRenderFailed      = "REN_9000"
	codeInternalOutputWriteFailed = "REN_9001"
)

// errInternalRenderFailed returns an error when template execution fails.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalOutputWriteFailed returns an error when the output file cannot be replaced.
func errInternalOutputWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputWriteFailed, fmt.Errorf("outputWriteFailed: %w", cause))
}
