package aggregators

import (
	"context"

	"log-analyzer/internal/models"
)

// SnapshotPublisher receives the immutable snapshot produced at the end of
// each cycle. Publishers must not mutate the snapshot; a failing publisher is
// logged and counted but never fails the cycle.
//
//go:generate mockgen -source=snapshot_publisher.go -destination=./mocks/snapshot_publisher_mock.go -package=mocks
type SnapshotPublisher interface {
	Publish(ctx context.Context, snapshot *models.StatisticsSnapshot) error
}
