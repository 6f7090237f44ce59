package http

import (
	"encoding/json"
	"net/http"

	"log-analyzer/internal/stores"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type statsHandler struct {
	snapshotStore stores.SnapshotStore
}

func NewStatsHandler(snapshotStore stores.SnapshotStore) AppHttpHandler {
	return &statsHandler{
		snapshotStore: snapshotStore,
	}
}

// Handle processes GET /stats requests, serving the most recently published
// statistics snapshot.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot := h.snapshotStore.Latest()
	if snapshot == nil {
		return errStatisticsNotReady()
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(snapshot)
}
