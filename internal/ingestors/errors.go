package ingestors

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeMalformedLogLine = "ING_1000"
)

const maxLineExcerpt = 120

// errMalformedLogLine returns an error for lines that do not parse as
// access-log records. The excerpt is truncated so a garbage line cannot
// flood logs.
func errMalformedLogLine(line string, cause error) *svcerrors.ServiceError {
	excerpt := line
	if len(excerpt) > maxLineExcerpt {
		excerpt = excerpt[:maxLineExcerpt]
	}
	return svcerrors.NewInvalidArgumentError(codeMalformedLogLine, fmt.Sprintf("malformed log line: %q", excerpt), cause)
}
