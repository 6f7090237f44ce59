package renderers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/metrics"
)

// statsPageTemplate renders one StatisticsSnapshot as a self-contained HTML
// page with an all-time section and a trailing-window section. The output
// file is replaced atomically every cycle, so refreshing it in a browser
// always shows a complete, consistent page.
const statsPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Access Log Statistics</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 0.5em 0 1.5em; }
th, td { border: 1px solid #999; padding: 0.25em 0.75em; text-align: left; }
.meta { color: #555; }
</style>
</head>
<body>
<h1>Access Log Statistics</h1>
<p class="meta">Cycle {{.Cycle}} &mdash; batch time {{.BatchTime.Format "2006-01-02 15:04:05 MST"}}</p>

<h2>All of Time</h2>
{{template "body" .Cumulative}}

<h2>Last Window{{if .WindowPartial}} (partial: {{.WindowCoverageSeconds}}s of data so far){{end}}</h2>
{{template "body" .Windowed}}
</body>
</html>
{{define "body"}}
<p>Request count: {{.RequestCount}}</p>
{{if .ContentSize}}
<p>Content size (bytes): avg {{printf "%.1f" .ContentSize.Average}}, min {{.ContentSize.Min}}, max {{.ContentSize.Max}} over {{.ContentSize.SizedCount}} sized responses</p>
{{else}}
<p>Content size: no data</p>
{{end}}
<h3>Response codes</h3>
<table><tr><th>Status</th><th>Count</th></tr>
{{range $status, $count := .StatusCounts}}<tr><td>{{$status}}</td><td>{{$count}}</td></tr>
{{end}}</table>
<h3>Top endpoints</h3>
<table><tr><th>Endpoint</th><th>Count</th></tr>
{{range .TopEndpoints}}<tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
<h3>Top IP addresses</h3>
<table><tr><th>IP</th><th>Count</th></tr>
{{range .TopIPAddresses}}<tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{if .TopUserAgents}}
<h3>Top user agents</h3>
<table><tr><th>User agent</th><th>Count</th></tr>
{{range .TopUserAgents}}<tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
{{end}}`

type htmlRenderer struct {
	fileStorage filestorages.FileStorage
	outputKey   string
	template    *template.Template
}

// NewHTMLRenderer returns a SnapshotPublisher that re-renders the statistics
// page to outputKey on every published snapshot.
func NewHTMLRenderer(fileStorage filestorages.FileStorage, outputKey string) (aggregators.SnapshotPublisher, error) {
	tmpl, err := template.New("stats").Parse(statsPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stats page template: %w", err)
	}

	return &htmlRenderer{
		fileStorage: fileStorage,
		outputKey:   outputKey,
		template:    tmpl,
	}, nil
}

func (r *htmlRenderer) Publish(ctx context.Context, snapshot *models.StatisticsSnapshot) error {
	var buf bytes.Buffer
	if err := r.template.Execute(&buf, snapshot); err != nil {
		metricSnapshotsRenderedTotal.WithLabelValues(codeInternalRenderFailed).Inc()
		return errInternalRenderFailed(err)
	}

	_, err := r.fileStorage.Put(ctx, r.outputKey, &buf, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		metricSnapshotsRenderedTotal.WithLabelValues(codeInternalOutputWriteFailed).Inc()
		return errInternalOutputWriteFailed(err)
	}

	metricSnapshotsRenderedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}
