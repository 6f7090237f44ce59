package ingestors

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/streams"

	"github.com/fsnotify/fsnotify"
)

// LogDirectoryTailer watches a directory for access-log files, reads newly
// appended complete lines from created or grown files, and publishes parsed
// records to the record queue. Malformed lines are dropped with a warning and
// a counted metric; only well-formed records reach the engine.
//
//go:generate mockgen -source=log_directory_tailer.go -destination=./mocks/log_directory_tailer_mock.go -package=mocks
type LogDirectoryTailer interface {
	Start(ctx context.Context) error
	Stop()
}

type logDirectoryTailer struct {
	dir    string
	parser AccessLogParser
	queue  *streams.RecordQueue

	watcher *fsnotify.Watcher
	// offsets tracks how far each file has been consumed; rereads resume at
	// the last complete line.
	offsets map[string]int64

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewLogDirectoryTailer(dir string, parser AccessLogParser, queue *streams.RecordQueue, logger loggers.Logger) LogDirectoryTailer {
	return &logDirectoryTailer{
		dir:     dir,
		parser:  parser,
		queue:   queue,
		offsets: make(map[string]int64),
		stopCh:  make(chan struct{}),
		logger:  logger,
	}
}

// Start begins watching the logs directory. The directory must exist; a
// missing directory is a startup error.
func (t *logDirectoryTailer) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create directory watcher: %w", err)
	}
	if err := watcher.Add(t.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch logs directory %q: %w", t.dir, err)
	}
	t.watcher = watcher

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.run(ctx)
	}()

	return nil
}

// Stop closes the watcher and waits for the tail goroutine to drain.
func (t *logDirectoryTailer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
		if t.watcher != nil {
			_ = t.watcher.Close()
		}
	})
	t.wg.Wait()
}

func (t *logDirectoryTailer) run(ctx context.Context) {
	ctx = t.logger.WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopCh:
			return
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				t.consumeFile(ctx, event.Name)
			}
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			t.logger.Warn().Err(err).Msg("directory watcher error")
		}
	}
}

// consumeFile reads every complete line appended to path since the last read
// and publishes the parsed records. A trailing partial line stays unread
// until the writer finishes it.
func (t *logDirectoryTailer) consumeFile(ctx context.Context, path string) {
	logger := loggers.Ctx(ctx)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str(loggers.FieldFile, path).Msg("failed to open log file")
		return
	}
	defer file.Close()

	offset := t.offsets[path]
	if info.Size() < offset {
		// Truncated or rotated in place: start over.
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		logger.Warn().Err(err).Str(loggers.FieldFile, path).Msg("failed to seek log file")
		return
	}

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// err is io.EOF or a read failure; either way the partial line
			// is left for the next event.
			break
		}
		offset += int64(len(line))
		t.publishLine(ctx, path, line)
	}
	t.offsets[path] = offset
}

func (t *logDirectoryTailer) publishLine(ctx context.Context, path string, line string) {
	record, err := t.parser.Parse(line)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricLinesConsumedTotal.WithLabelValues(svcErr.Code).Inc()
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldFile, path).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("dropped malformed log line")
		return
	}

	t.queue.Publish(record)
	metricLinesConsumedTotal.WithLabelValues(metrics.ValueNoError).Inc()
}
