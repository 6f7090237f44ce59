package ingestors

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"log-analyzer/internal/models"

	"github.com/mileusna/useragent"
)

// accessLogPattern matches Apache common log format lines, with the combined
// format's trailing referer and user-agent fields as an optional suffix:
//
//	127.0.0.1 - frank [10/Oct/2000:13:55:36 -0700] "GET /apache_pb.gif HTTP/1.0" 200 2326
//	127.0.0.1 - - [10/Oct/2000:13:55:36 -0700] "GET / HTTP/1.1" 200 512 "-" "Mozilla/5.0 ..."
var accessLogPattern = regexp.MustCompile(`^(\S+) (\S+) (\S+) \[([^\]]+)\] "(\S+) (\S+) (\S+)" (\d{3}) (\S+)(?: "([^"]*)" "([^"]*)")?\s*$`)

const accessLogTimeLayout = "02/Jan/2006:15:04:05 -0700"

//go:generate mockgen -source=access_log_parser.go -destination=./mocks/access_log_parser_mock.go -package=mocks
type AccessLogParser interface {
	// Parse converts one raw log line into a record. Lines that do not match
	// the access-log grammar yield a malformed-line error; the caller drops
	// them, they never reach the aggregation engine.
	Parse(line string) (*models.AccessLogRecord, error)
}

type accessLogParser struct{}

func NewAccessLogParser() AccessLogParser {
	return &accessLogParser{}
}

func (p *accessLogParser) Parse(line string) (*models.AccessLogRecord, error) {
	m := accessLogPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, errMalformedLogLine(line, nil)
	}

	receivedAt, err := time.Parse(accessLogTimeLayout, m[4])
	if err != nil {
		return nil, errMalformedLogLine(line, err)
	}

	// The status group is three digits by construction.
	statusCode, _ := strconv.Atoi(m[8])

	record := &models.AccessLogRecord{
		IPAddress:    m[1],
		ClientIdentd: dashToEmpty(m[2]),
		UserID:       dashToEmpty(m[3]),
		ReceivedAt:   receivedAt,
		Method:       strings.ToUpper(m[5]),
		Endpoint:     m[6],
		Protocol:     m[7],
		StatusCode:   statusCode,
	}

	if m[9] != "-" {
		contentSize, err := strconv.ParseInt(m[9], 10, 64)
		if err != nil {
			return nil, errMalformedLogLine(line, err)
		}
		record.ContentSize = contentSize
		record.SizeKnown = true
	}

	if userAgent := m[11]; userAgent != "" && userAgent != "-" {
		record.UserAgentFamily = normalizeUserAgent(userAgent)
	}

	return record, nil
}

func dashToEmpty(field string) string {
	if field == "-" {
		return ""
	}
	return field
}

// normalizeUserAgent reduces a raw user-agent string to its family name, or
// returns the original when parsing yields nothing usable.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
