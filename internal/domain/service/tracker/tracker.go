// Package tracker orchestrates one refresh cycle: pull the questline
// requirements and catalog from upstream, price every requirement through
// the acquisition engine in both game modes, and publish the resulting
// snapshots.
package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/acquisition"
	"tarkov_market/internal/domain/service/questline"
	"tarkov_market/internal/domain/value"
)

type CatalogClient interface {
	Tasks(ctx context.Context) ([]entity.Task, error)
	Items(ctx context.Context, ids []string, mode value.GameMode) ([]entity.Item, error)
	BundledItems(ctx context.Context, names []string, mode value.GameMode) ([]entity.BundledItem, error)
	Prices(ctx context.Context, ids []string, mode value.GameMode) (value.PriceIndex, error)
}

type SnapshotStore interface {
	Put(ctx context.Context, snap entity.Snapshot) error
	Get(ctx context.Context, mode value.GameMode) (entity.Snapshot, error)
}

type Service struct {
	client    CatalogClient
	store     SnapshotStore
	questline *questline.Service
	engine    acquisition.Engine

	// bundledSources maps a target item id to the display-name search term
	// of the composite item it can be stripped out of.
	bundledSources map[string]string
}

func NewService(
	client CatalogClient,
	store SnapshotStore,
	questlineService *questline.Service,
	engine acquisition.Engine,
) *Service {
	return &Service{
		client:         client,
		store:          store,
		questline:      questlineService,
		engine:         engine,
		bundledSources: map[string]string{},
	}
}

func (s *Service) WithBundledSources(sources map[string]string) *Service {
	s.bundledSources = sources
	return s
}

// Snapshot returns the latest published snapshot for the mode.
func (s *Service) Snapshot(ctx context.Context, mode value.GameMode) (entity.Snapshot, error) {
	return s.store.Get(ctx, mode)
}

// RefreshResult summarizes one refresh cycle across both game modes.
type RefreshResult struct {
	Requirements int
	Quests       int
	Modes        int
	Elapsed      time.Duration
}

// Refresh runs one full cycle and publishes a snapshot per game mode.
// Both modes fetch and compute concurrently; the cycle fails as a whole
// when either mode cannot be priced, leaving the previous snapshots in
// place.
func (s *Service) Refresh(ctx context.Context) (RefreshResult, error) {
	started := time.Now()

	logger(ctx).Info("refresh cycle started")

	tasks, err := s.client.Tasks(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("fetch tasks: %w", err)
	}

	requirements := s.questline.RequirementsFromTasks(tasks)
	targetIDs := targetIDsOf(requirements)

	logger(ctx).Info("questline requirements resolved",
		"quests", len(s.questline.Quests()),
		"requirements", len(requirements),
	)

	modes := value.GameModes()
	fetched := make([]modeCatalog, len(modes))

	g, gctx := errgroup.WithContext(ctx)

	for i, mode := range modes {
		g.Go(func() error {
			catalog, err := s.fetchMode(gctx, targetIDs, mode)
			if err != nil {
				return err
			}

			fetched[i] = catalog

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RefreshResult{}, err
	}

	catalogs := make(map[value.GameMode]modeCatalog, len(modes))
	for i, mode := range modes {
		catalogs[mode] = fetched[i]
	}

	fetchedAt := time.Now()

	for _, mode := range modes {
		items := s.assemble(ctx, requirements, catalogs, mode)

		prices, err := s.client.Prices(ctx, ingredientIDsOf(items), mode)
		if err != nil {
			return RefreshResult{}, fmt.Errorf("fetch prices (%s): %w", mode, err)
		}

		priced := s.engine.ComputePass(ctx, items, prices, mode)

		snap := entity.Snapshot{
			Mode:      mode,
			Items:     priced,
			Summary:   acquisition.Summarize(priced, mode),
			Prices:    prices,
			FetchedAt: fetchedAt,
		}

		if err := s.store.Put(ctx, snap); err != nil {
			return RefreshResult{}, fmt.Errorf("store snapshot (%s): %w", mode, err)
		}

		logger(ctx).Info("snapshot published",
			"mode", mode.String(),
			"items", len(priced),
			"grand_total", snap.Summary.GrandTotal,
			"restricted", snap.Summary.RestrictedCount,
		)
	}

	result := RefreshResult{
		Requirements: len(requirements),
		Quests:       len(s.questline.Quests()),
		Modes:        len(value.GameModes()),
		Elapsed:      time.Since(started),
	}

	logger(ctx).Info("refresh cycle finished",
		"requirements", result.Requirements,
		"elapsed", result.Elapsed.String(),
	)

	return result, nil
}

// modeCatalog is everything one mode's economy knows about the targets.
type modeCatalog struct {
	items   map[string]entity.Item
	bundled []entity.BundledItem
}

func (s *Service) fetchMode(ctx context.Context, targetIDs []string, mode value.GameMode) (modeCatalog, error) {
	catalog := modeCatalog{items: make(map[string]entity.Item, len(targetIDs))}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.client.Items(gctx, targetIDs, mode)
		if err != nil {
			return fmt.Errorf("fetch items (%s): %w", mode, err)
		}

		for _, item := range items {
			catalog.items[item.ID] = item
		}

		return nil
	})

	g.Go(func() error {
		bundled, err := s.client.BundledItems(gctx, bundledSearchTerms(s.bundledSources), mode)
		if err != nil {
			return fmt.Errorf("fetch bundled items (%s): %w", mode, err)
		}

		catalog.bundled = bundled

		return nil
	})

	if err := g.Wait(); err != nil {
		return modeCatalog{}, err
	}

	return catalog, nil
}

// assemble builds the priced-pass input for one mode: the mode's own
// catalog records annotated with quest context, the bundled source where
// configured, and the flea price of both modes. Restriction detection
// needs both prices, which is why the other mode's catalog is consulted.
func (s *Service) assemble(
	ctx context.Context,
	requirements []questline.Requirement,
	catalogs map[value.GameMode]modeCatalog,
	mode value.GameMode,
) []entity.Item {
	catalog := catalogs[mode]
	items := make([]entity.Item, 0, len(requirements))

	for _, req := range requirements {
		item, ok := catalog.items[req.Item.ID]
		if !ok {
			logger(ctx).Warn("requirement missing from catalog",
				"item_id", req.Item.ID,
				"item", req.Item.Name,
			)

			continue
		}

		item.Quantity = req.Count
		item.QuestName = req.Quest.Name
		item.QuestOrder = req.Quest.Order

		for otherMode, other := range catalogs {
			record, ok := other.items[req.Item.ID]
			if !ok {
				continue
			}

			price := record.Avg24hPrice
			if price == 0 {
				price = record.LastLowPrice
			}

			switch otherMode {
			case value.GameModePvE:
				item.PvEPrice = price
			case value.GameModePvP:
				item.PvPPrice = price
			}
		}

		if term, ok := s.bundledSources[item.ID]; ok {
			item.Bundled = matchBundled(catalog.bundled, term)
		}

		items = append(items, item)
	}

	return items
}

func matchBundled(bundled []entity.BundledItem, term string) *entity.BundledItem {
	needle := strings.ToLower(term)

	for i := range bundled {
		if strings.Contains(strings.ToLower(bundled[i].Name), needle) {
			return &bundled[i]
		}
	}

	return nil
}

func targetIDsOf(requirements []questline.Requirement) []string {
	seen := make(map[string]struct{}, len(requirements))
	ids := make([]string, 0, len(requirements))

	for _, req := range requirements {
		if _, ok := seen[req.Item.ID]; ok {
			continue
		}

		seen[req.Item.ID] = struct{}{}
		ids = append(ids, req.Item.ID)
	}

	return ids
}

// ingredientIDsOf collects every item id the engine may need a price for:
// craft and barter inputs of the targets plus the inputs of the bundled
// sources' barters.
func ingredientIDsOf(items []entity.Item) []string {
	seen := make(map[string]struct{})
	var ids []string

	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, item := range items {
		for _, craft := range item.Crafts {
			for _, stack := range craft.RequiredItems {
				add(stack.Item.ID)
			}
		}

		for _, barter := range item.Barters {
			for _, stack := range barter.RequiredItems {
				add(stack.Item.ID)
			}
		}

		if item.Bundled == nil {
			continue
		}

		for _, barter := range item.Bundled.Barters {
			for _, stack := range barter.RequiredItems {
				add(stack.Item.ID)
			}
		}
	}

	return ids
}

func bundledSearchTerms(sources map[string]string) []string {
	seen := make(map[string]struct{}, len(sources))
	terms := make([]string, 0, len(sources))

	for _, term := range sources {
		if _, ok := seen[term]; ok {
			continue
		}

		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	return terms
}
