package tracker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/acquisition"
	"tarkov_market/internal/domain/service/questline"
	"tarkov_market/internal/domain/service/tracker"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/infrastructure/snapshot"
	"tarkov_market/pkg/errcodes"
)

type fakeCatalog struct {
	tasks   []entity.Task
	items   map[value.GameMode][]entity.Item
	bundled map[value.GameMode][]entity.BundledItem
	prices  map[value.GameMode]value.PriceIndex
}

func (f *fakeCatalog) Tasks(context.Context) ([]entity.Task, error) {
	return f.tasks, nil
}

func (f *fakeCatalog) Items(_ context.Context, _ []string, mode value.GameMode) ([]entity.Item, error) {
	return f.items[mode], nil
}

func (f *fakeCatalog) BundledItems(_ context.Context, _ []string, mode value.GameMode) ([]entity.BundledItem, error) {
	return f.bundled[mode], nil
}

func (f *fakeCatalog) Prices(_ context.Context, _ []string, mode value.GameMode) (value.PriceIndex, error) {
	return f.prices[mode], nil
}

func fixtureCatalog() *fakeCatalog {
	restricted := entity.Item{
		ID:        "scope-1",
		Name:      "Axion scope",
		ShortName: "Axion",
		Crafts: []entity.Craft{{
			ID:            "craft-1",
			Station:       entity.Station{Name: "Workbench"},
			Level:         1,
			RequiredItems: []entity.ItemStack{{Item: entity.ItemRef{ID: "wires"}, Count: 2}},
		}},
	}

	fee := int64(9_000)
	market := entity.Item{
		ID:            "gpu-1",
		Name:          "Graphics card",
		ShortName:     "GPU",
		FleaMarketFee: &fee,
	}

	pvpMarket := market
	pvpMarket.Avg24hPrice = 300_000

	pveMarket := market
	pveMarket.Avg24hPrice = 280_000

	bundle := entity.BundledItem{
		ID:   "preset-1",
		Name: "SIG MCX-SPEAR RSASS default",
	}

	return &fakeCatalog{
		tasks: []entity.Task{
			{
				ID:     "67af4c1405c58dc6f7056667", // Profitable Venture
				Name:   "Profitable Venture",
				Trader: entity.Trader{Name: "Skier"},
				Objectives: []entity.QuestObjective{
					{Item: entity.ItemRef{ID: "scope-1", Name: "Axion scope"}, Count: 2},
					{Item: entity.ItemRef{ID: "gpu-1", Name: "Graphics card"}, Count: 5},
					{Item: entity.ItemRef{ID: "ghost-item", Name: "not in catalog"}, Count: 1},
				},
			},
		},
		items: map[value.GameMode][]entity.Item{
			value.GameModePvP: {restricted, pvpMarket},
			value.GameModePvE: {restricted, pveMarket},
		},
		bundled: map[value.GameMode][]entity.BundledItem{
			value.GameModePvP: {bundle},
			value.GameModePvE: {bundle},
		},
		prices: map[value.GameMode]value.PriceIndex{
			value.GameModePvP: {"wires": 25_000},
			value.GameModePvE: {"wires": 20_000},
		},
	}
}

func newService(catalog *fakeCatalog, store *snapshot.Store) *tracker.Service {
	return tracker.NewService(
		catalog,
		store,
		questline.NewService(),
		acquisition.NewEngine(2),
	).WithBundledSources(map[string]string{"scope-1": "RSASS"})
}

func TestRefreshPublishesBothModes(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := snapshot.NewStore()
	service := newService(fixtureCatalog(), store)

	result, err := service.Refresh(ctx)
	rq.NoError(err)
	rq.Equal(3, result.Requirements)
	rq.Equal(2, result.Modes)

	for _, mode := range value.GameModes() {
		snap, err := service.Snapshot(ctx, mode)
		rq.NoError(err)
		rq.Equal(mode, snap.Mode)

		// The ghost requirement is dropped, two items survive.
		rq.Len(snap.Items, 2)

		scope := snap.Items[0]
		rq.Equal("scope-1", scope.ID)
		rq.Equal(2, scope.Quantity)
		rq.Equal("Profitable Venture", scope.QuestName)
		rq.Equal(1, scope.QuestOrder)
		rq.True(scope.FleaRestricted())
		rq.NotNil(scope.Cheapest)
		rq.NotNil(scope.Bundled)
		rq.Equal("preset-1", scope.Bundled.ID)

		gpu := snap.Items[1]
		rq.Equal(int64(300_000), gpu.PvPPrice)
		rq.Equal(int64(280_000), gpu.PvEPrice)
		rq.Nil(gpu.Cheapest)
	}

	pvp, err := service.Snapshot(ctx, value.GameModePvP)
	rq.NoError(err)
	rq.Equal(int64(50_000), pvp.Items[0].Cheapest.Cost)

	pve, err := service.Snapshot(ctx, value.GameModePvE)
	rq.NoError(err)
	rq.Equal(int64(40_000), pve.Items[0].Cheapest.Cost)

	// Summary rolls the mode's own prices up.
	rq.InDelta(100_000+5*300_000, pvp.Summary.GrandTotal, 0.001)
	rq.Equal(1, pvp.Summary.RestrictedCount)
}

func TestSnapshotBeforeFirstRefresh(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := newService(fixtureCatalog(), snapshot.NewStore())

	_, err := service.Snapshot(ctx, value.GameModePvP)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.SnapshotNotReady, code)
}
