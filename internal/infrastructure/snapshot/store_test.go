package snapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/infrastructure/snapshot"
	"tarkov_market/pkg/errcodes"
)

func TestStoreRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := snapshot.NewStore().WithTTL(time.Minute)

	snap := entity.Snapshot{
		Mode:      value.GameModePvP,
		Items:     []entity.Item{{ID: "scope-1", Name: "Axion scope", Quantity: 2}},
		Summary:   entity.Summary{GrandTotal: 100_000, RestrictedCount: 1},
		Prices:    value.PriceIndex{"wires": 25_000},
		FetchedAt: time.Now().Truncate(time.Second),
	}

	rq.NoError(store.Put(ctx, snap))

	got, err := store.Get(ctx, value.GameModePvP)
	rq.NoError(err)
	rq.Equal(snap, got)

	// Modes are independent.
	_, err = store.Get(ctx, value.GameModePvE)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.SnapshotNotReady, code)
}

func TestStoreReplacesSnapshot(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := snapshot.NewStore()

	first := entity.Snapshot{Mode: value.GameModePvE, Summary: entity.Summary{GrandTotal: 1}}
	second := entity.Snapshot{Mode: value.GameModePvE, Summary: entity.Summary{GrandTotal: 2}}

	rq.NoError(store.Put(ctx, first))
	rq.NoError(store.Put(ctx, second))

	got, err := store.Get(ctx, value.GameModePvE)
	rq.NoError(err)
	rq.InDelta(2, got.Summary.GrandTotal, 0.001)
}
