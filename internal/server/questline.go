package server

import (
	"context"
	"fmt"
	"net/http"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/questline"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/httpx/reply"
)

type snapshotProvider interface {
	Snapshot(ctx context.Context, mode value.GameMode) (entity.Snapshot, error)
}

type QuestlineServer struct {
	snapshots snapshotProvider
	questline *questline.Service
}

func NewQuestlineServer(snapshots snapshotProvider, questlineService *questline.Service) QuestlineServer {
	return QuestlineServer{
		snapshots: snapshots,
		questline: questlineService,
	}
}

func (s QuestlineServer) getV1Questline(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := value.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		return asHTTPError(err)
	}

	snap, err := s.snapshots.Snapshot(ctx, mode)
	if err != nil {
		return asHTTPError(fmt.Errorf("snapshots.Snapshot: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuestline(snap))

	return nil
}

func (s QuestlineServer) getV1QuestlineSummary(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := value.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		return asHTTPError(err)
	}

	snap, err := s.snapshots.Snapshot(ctx, mode)
	if err != nil {
		return asHTTPError(fmt.Errorf("snapshots.Snapshot: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSummary(snap.Summary))

	return nil
}

// getV1Quests serves the tracked chain. Unlock analysis needs a snapshot;
// before the first refresh the chain is served without it.
func (s QuestlineServer) getV1Quests(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := value.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		return asHTTPError(err)
	}

	response := newRESTQuests(s.questline.Quests())

	if snap, err := s.snapshots.Snapshot(ctx, mode); err == nil {
		response.Unlocks = newRESTUnlocks(s.questline.UnlockSummary(snap.Items))
	} else if code, ok := domain.GetCode(err); !ok || code != errcodes.SnapshotNotReady {
		return asHTTPError(fmt.Errorf("snapshots.Snapshot: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}
