package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sahilm/fuzzy"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/httpx/reply"
	"tarkov_market/pkg/httpx/req"
	"tarkov_market/pkg/rest"
)

const maxSearchResults = 20

type ItemServer struct {
	snapshots snapshotProvider
}

func NewItemServer(snapshots snapshotProvider) ItemServer {
	return ItemServer{
		snapshots: snapshots,
	}
}

// itemIndex implements fuzzy.Source over a snapshot's items, matching on
// both the full and the short name.
type itemIndex []entity.Item

func (s itemIndex) Len() int { return len(s) }

func (s itemIndex) String(i int) string {
	return s[i].Name + " " + s[i].ShortName
}

func (s ItemServer) getV1ItemsSearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		return asHTTPError(domain.NewError(errcodes.InvalidSearchQuery, "query parameter q is required"))
	}

	mode, err := value.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		return asHTTPError(err)
	}

	result, err := s.search(ctx, query, mode, maxSearchResults)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s ItemServer) postV1ItemsSearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SearchRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	mode, err := value.ParseGameMode(request.Mode)
	if err != nil {
		return asHTTPError(err)
	}

	limit := request.Limit
	if limit == 0 {
		limit = maxSearchResults
	}

	result, err := s.search(ctx, strings.TrimSpace(request.Query), mode, limit)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s ItemServer) search(
	ctx context.Context,
	query string,
	mode value.GameMode,
	limit int,
) (rest.SearchResult, error) {
	snap, err := s.snapshots.Snapshot(ctx, mode)
	if err != nil {
		return rest.SearchResult{}, asHTTPError(fmt.Errorf("snapshots.Snapshot: %w", err))
	}

	index := itemIndex(snap.Items)
	matches := fuzzy.FindFrom(query, index)

	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := rest.SearchResult{
		Query: query,
		Mode:  mode.String(),
		Items: make([]rest.Item, 0, len(matches)),
	}

	for _, match := range matches {
		result.Items = append(result.Items, newRESTItem(index[match.Index], mode))
	}

	return result, nil
}

func (s ItemServer) getV1Item(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		return asHTTPError(domain.NewError(errcodes.InvalidItemID, "item id is required"))
	}

	mode, err := value.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		return asHTTPError(err)
	}

	snap, err := s.snapshots.Snapshot(ctx, mode)
	if err != nil {
		return asHTTPError(fmt.Errorf("snapshots.Snapshot: %w", err))
	}

	for _, item := range snap.Items {
		if item.ID == id {
			reply.JSON(ctx, w, http.StatusOK, newRESTItem(item, mode))
			return nil
		}
	}

	return asHTTPError(domain.NewError(errcodes.ItemNotFound,
		fmt.Sprintf("item %s is not part of the questline", id)))
}
