package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
)

var (
	ErrCheckpointNotFound = errors.New("checkpoint not found")
)

// Checkpoint is the durable state of the cumulative tracker: the all-time
// Aggregate and the cycle counter it was valid for. Save is atomic
// (temp-then-rename underneath), so a crash mid-write never leaves a partial
// checkpoint, and Load(Save(x)) round-trips x exactly.
type Checkpoint struct {
	Cycle      int64             `json:"cycle"`
	Cumulative *models.Aggregate `json:"cumulative"`
	SavedAt    time.Time         `json:"savedAt"`
}

//go:generate mockgen -source=checkpoint_store.go -destination=./mocks/checkpoint_store_mock.go -package=mocks
type CheckpointStore interface {
	Save(ctx context.Context, checkpoint *Checkpoint) error
	Load(ctx context.Context) (*Checkpoint, error)
}

type checkpointStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewCheckpointStore(fileStorage filestorages.FileStorage) CheckpointStore {
	return &checkpointStore{fileStorage: fileStorage, key: "checkpoints/cumulative.json"}
}

func (s *checkpointStore) Save(ctx context.Context, checkpoint *Checkpoint) error {
	jsonData, err := json.Marshal(checkpoint)
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put checkpoint: %w", err)
	}
	return nil
}

func (s *checkpointStore) Load(ctx context.Context) (*Checkpoint, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrCheckpointNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}

	var checkpoint Checkpoint
	if err := json.Unmarshal(data, &checkpoint); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkpoint: %w", err)
	}
	if checkpoint.Cumulative == nil {
		return nil, fmt.Errorf("failed to unmarshal checkpoint: missing cumulative aggregate")
	}
	checkpoint.Cumulative.Normalize()

	return &checkpoint, nil
}
