package acquisition_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/acquisition"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/tests"
)

func stack(id string, count int) entity.ItemStack {
	return entity.ItemStack{
		Item:  entity.ItemRef{ID: id, Name: "ingredient " + id, ShortName: id},
		Count: count,
	}
}

func craft(id string, stacks ...entity.ItemStack) entity.Craft {
	return entity.Craft{
		ID:            id,
		Station:       entity.Station{ID: "workbench", Name: "Workbench"},
		Level:         2,
		Duration:      90 * time.Minute,
		RequiredItems: stacks,
	}
}

func barter(id string, stacks ...entity.ItemStack) entity.Barter {
	return entity.Barter{
		ID:            id,
		Trader:        entity.Trader{ID: "mechanic", Name: "Mechanic"},
		Level:         3,
		RequiredItems: stacks,
	}
}

func restrictedItem() entity.Item {
	// FleaMarketFee nil and zero mode prices mark the item as restricted.
	return entity.Item{
		ID:        "target-1",
		Name:      "Axion scope",
		ShortName: "Axion",
		Quantity:  1,
	}
}

func TestEnumerateCraftBeatsBarter(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	item.Crafts = []entity.Craft{craft("craft-1", stack("a", 2), stack("b", 1))}
	item.Barters = []entity.Barter{barter("barter-1", stack("c", 3))}

	prices := value.PriceIndex{"a": 50_000, "b": 30_000, "c": 100_000}

	methods := engine.Enumerate(item, prices)
	rq.Len(methods, 2)
	rq.Equal(entity.MethodCraft, methods[0].Type)
	rq.Equal(int64(130_000), methods[0].Cost)
	rq.Equal(entity.MethodBarter, methods[1].Type)
	rq.Equal(int64(300_000), methods[1].Cost)

	cheapest := engine.SelectCheapest(methods)
	rq.NotNil(cheapest)
	rq.Equal(entity.MethodCraft, cheapest.Type)
	rq.InDelta(130_000, cheapest.CostRUB, 0.001)
	rq.Contains(cheapest.Details, "Workbench Level 2")
	rq.Contains(cheapest.Details, "1h 30m")
}

func TestEnumerateDropsUnpricedMethods(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	item.Crafts = []entity.Craft{craft("craft-1", stack("a", 2))}
	item.Barters = []entity.Barter{barter("barter-1", stack("unknown", 3))}

	// Only the craft ingredient is priced; the barter collapses to 0 and
	// must not surface as a free method.
	prices := value.PriceIndex{"a": 20_000}

	methods := engine.Enumerate(item, prices)
	rq.Len(methods, 1)
	rq.Equal(entity.MethodCraft, methods[0].Type)
	rq.Equal(int64(40_000), methods[0].Cost)

	rq.Nil(engine.CheapestFor(item, value.PriceIndex{}))
}

func TestEnumerateGatedBarterStillCompetes(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	gated := barter("barter-gated", stack("x", 1))
	gated.TaskUnlock = &entity.QuestGate{ID: "quest-1", Name: "Profitable Venture"}

	item := restrictedItem()
	item.Barters = []entity.Barter{barter("barter-open", stack("y", 1)), gated}

	prices := value.PriceIndex{"x": 20_000, "y": 25_000}

	cheapest := engine.CheapestFor(item, prices)
	rq.NotNil(cheapest)
	rq.Equal("barter-gated", cheapest.ID)
	rq.Equal(int64(20_000), cheapest.Cost)
	rq.Contains(cheapest.Details, "Profitable Venture")
}

func TestSelectCheapestStableOnTies(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	item.Crafts = []entity.Craft{craft("craft-1", stack("a", 1))}
	item.Barters = []entity.Barter{barter("barter-1", stack("b", 1))}

	prices := value.PriceIndex{"a": 10_000, "b": 10_000}

	cheapest := engine.CheapestFor(item, prices)
	rq.NotNil(cheapest)
	rq.Equal(entity.MethodCraft, cheapest.Type)
}

func TestSelectCheapestEmpty(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	rq.Nil(engine.SelectCheapest(nil))
	rq.Nil(engine.SelectCheapest([]entity.AcquisitionMethod{}))
}

func TestSelectCheapestIsMinimal(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)
	random := tests.NewRandomizer()

	candidates := make([]entity.AcquisitionMethod, 0, 20)
	for i := 0; i < 20; i++ {
		cost := int64(random.Float64() * 1_000_000)
		candidates = append(candidates, entity.AcquisitionMethod{
			Type:    entity.MethodBarter,
			Cost:    cost,
			CostRUB: float64(cost),
		})
	}

	cheapest := engine.SelectCheapest(candidates)
	rq.NotNil(cheapest)

	for _, candidate := range candidates {
		rq.LessOrEqual(cheapest.CostRUB, candidate.CostRUB)
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	item.Crafts = []entity.Craft{craft("craft-1", stack("a", 2))}
	item.Barters = []entity.Barter{barter("barter-1", stack("b", 1))}

	prices := value.PriceIndex{"a": 11_000, "b": 33_000}

	first := engine.CheapestFor(item, prices)
	for i := 0; i < 10; i++ {
		again := engine.CheapestFor(item, prices)
		rq.Equal(first, again)
	}
}

func TestEnumerateMonotoneUnderPriceIncrease(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)
	random := tests.NewRandomizer()

	item := restrictedItem()
	item.Crafts = []entity.Craft{craft("craft-1", stack("a", 2), stack("b", 1))}
	item.Barters = []entity.Barter{barter("barter-1", stack("a", 1), stack("c", 3))}
	bundle := bundledFixture()
	item.Bundled = &bundle

	base := value.PriceIndex{"a": 10_000, "b": 20_000, "c": 5_000, "rouble-item": 150_000}

	costsByID := func(methods []entity.AcquisitionMethod) map[string]int64 {
		costs := make(map[string]int64, len(methods))
		for _, method := range methods {
			costs[method.ID] = method.Cost
		}

		return costs
	}

	// Raising any single ingredient price may only raise the cost of the
	// methods that consume it, and never lowers any method's cost.
	for ingredient := range base {
		bumped := make(value.PriceIndex, len(base))
		for id, price := range base {
			bumped[id] = price
		}
		bumped[ingredient] += int64(random.Float64()*100_000) + 1

		rq.GreaterOrEqual(
			acquisition.CraftCost(item.Crafts[0], bumped),
			acquisition.CraftCost(item.Crafts[0], base),
			"craft cost after raising %s", ingredient,
		)
		rq.GreaterOrEqual(
			acquisition.BarterCost(item.Barters[0], bumped),
			acquisition.BarterCost(item.Barters[0], base),
			"barter cost after raising %s", ingredient,
		)

		before := costsByID(engine.Enumerate(item, base))
		after := costsByID(engine.Enumerate(item, bumped))
		rq.Len(after, len(before))

		for id, cost := range before {
			rq.GreaterOrEqual(after[id], cost, "method %s after raising %s", id, ingredient)
		}
	}
}

func bundledFixture() entity.BundledItem {
	fleaOffer := func(price int64) entity.SellOffer {
		return entity.SellOffer{
			Vendor:   entity.Vendor{Name: "Flea Market", NormalizedName: entity.FleaMarketVendor},
			Price:    price,
			Currency: value.RUB,
			PriceRUB: price,
		}
	}
	traderOffer := func(name string, price int64) entity.SellOffer {
		return entity.SellOffer{
			Vendor:   entity.Vendor{Name: name, NormalizedName: name},
			Price:    price,
			Currency: value.RUB,
			PriceRUB: price,
		}
	}

	return entity.BundledItem{
		ID:        "preset-1",
		Name:      "SIG MPX bundle",
		ShortName: "MPX",
		Barters: []entity.Barter{{
			ID:            "preset-barter",
			Trader:        entity.Trader{ID: "skier", Name: "Skier"},
			Level:         4,
			RequiredItems: []entity.ItemStack{stack("rouble-item", 3)},
		}},
		ContainsItems: []entity.ContainedPart{
			{
				// The quest target, kept and never sold.
				Item: entity.SubPart{
					ID:      "target-1",
					Name:    "Axion scope",
					SellFor: []entity.SellOffer{traderOffer("Mechanic", 500_000)},
				},
				Count: 1,
			},
			{
				Item: entity.SubPart{
					ID:      "part-trader",
					Name:    "stock",
					SellFor: []entity.SellOffer{traderOffer("Skier", 150_000), traderOffer("Prapor", 120_000)},
				},
				Count: 1,
			},
			{
				// On the flea recommendation list.
				Item: entity.SubPart{
					ID:   "5a1ead28fcdbcb001912fa9f",
					Name: "DLOC-IRD mount",
					SellFor: []entity.SellOffer{
						traderOffer("Mechanic", 90_000),
						fleaOffer(240_000),
					},
				},
				Count: 1,
			},
		},
	}
}

func TestDecomposeKeepsQuestTarget(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	target := restrictedItem()
	decomposition := engine.Decompose(bundledFixture(), target)

	rq.Len(decomposition.Parts, 3)

	kept := decomposition.Parts[0]
	rq.True(kept.KeepForQuest)
	rq.Zero(kept.SellValue)

	// The kept part's huge trader offer must not leak into the totals.
	rq.Equal(int64(390_000), decomposition.TotalSellValue)
	rq.Equal(int64(150_000), decomposition.TraderSellValue)
	rq.Equal(int64(240_000), decomposition.FleaSellValue)
}

func TestDecomposeShortNameFallback(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	target := entity.Item{ID: "other-id", ShortName: "Axion"}

	decomposition := engine.Decompose(bundledFixture(), target)
	rq.True(decomposition.Parts[0].KeepForQuest)
}

func TestDecomposeFirstFleaOfferWins(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	bundle := bundledFixture()

	// Upstream occasionally repeats the flea vendor in sellFor; only the
	// first offer counts.
	dlocPart := &bundle.ContainsItems[2].Item
	dlocPart.SellFor = append(dlocPart.SellFor, entity.SellOffer{
		Vendor:   entity.Vendor{Name: "Flea Market", NormalizedName: entity.FleaMarketVendor},
		Price:    10_000,
		Currency: value.RUB,
		PriceRUB: 10_000,
	})

	decomposition := engine.Decompose(bundle, restrictedItem())

	dloc := decomposition.Parts[2]
	rq.Equal(int64(240_000), dloc.FleaPrice)
	rq.Equal(int64(240_000), dloc.SellValue)
	rq.Equal(int64(240_000), decomposition.FleaSellValue)
}

func TestBundledMethodNetCost(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	bundle := bundledFixture()
	item.Bundled = &bundle

	prices := value.PriceIndex{"rouble-item": 150_000} // barter cost 450000

	methods := engine.Enumerate(item, prices)
	rq.Len(methods, 1)

	method := methods[0]
	rq.Equal(entity.MethodBundled, method.Type)
	rq.Equal(int64(60_000), method.Cost)
	rq.NotNil(method.Bundled)
	rq.Equal(int64(450_000), method.Bundled.BarterCost)
	rq.Equal(int64(390_000), method.Bundled.TotalSellValue)
}

func TestBundledMethodNegativeNetCost(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	bundle := bundledFixture()
	item.Bundled = &bundle

	// Cheap barter, resale exceeds it: the windfall stays negative.
	prices := value.PriceIndex{"rouble-item": 100_000}

	cheapest := engine.CheapestFor(item, prices)
	rq.NotNil(cheapest)
	rq.Equal(entity.MethodBundled, cheapest.Type)
	rq.Equal(int64(-90_000), cheapest.Cost)
	rq.InDelta(-90_000, cheapest.CostRUB, 0.001)
}

func TestBundledMethodSkippedWhenBartersUnpriced(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(0)

	item := restrictedItem()
	bundle := bundledFixture()
	item.Bundled = &bundle

	rq.Empty(engine.Enumerate(item, value.PriceIndex{}))
}

func TestComputePassSkipsMarketItems(t *testing.T) {
	rq := require.New(t)
	engine := acquisition.NewEngine(4)
	ctx := context.Background()

	fee := int64(5_000)
	market := entity.Item{
		ID:            "market-1",
		Name:          "graphics card",
		FleaMarketFee: &fee,
		PvPPrice:      320_000,
		PvEPrice:      280_000,
	}

	restricted := restrictedItem()
	restricted.Crafts = []entity.Craft{craft("craft-1", stack("a", 1))}

	items := []entity.Item{market, restricted}
	prices := value.PriceIndex{"a": 70_000}

	result := engine.ComputePass(ctx, items, prices, value.GameModePvP)

	rq.Len(result, 2)
	rq.Nil(result[0].Cheapest)
	rq.NotNil(result[1].Cheapest)
	rq.Equal(int64(70_000), result[1].Cheapest.Cost)

	// Inputs stay untouched.
	rq.Nil(items[1].Cheapest)
}

func TestTotalValuePriority(t *testing.T) {
	rq := require.New(t)

	fee := int64(5_000)

	item := entity.Item{
		ID:            "i",
		Quantity:      3,
		FleaMarketFee: &fee,
		PvPPrice:      10_000,
	}

	rq.InDelta(30_000, acquisition.TotalValue(item, value.GameModePvP), 0.001)

	// PvE has no price and the item is not restricted: contributes 0.
	rq.Zero(acquisition.TotalValue(item, value.GameModePvE))

	restricted := restrictedItem()
	restricted.Quantity = 2
	restricted.PvPPrice = 999_999 // stale, must lose to the computed method
	restricted.Cheapest = &entity.AcquisitionMethod{CostRUB: 40_000}

	rq.InDelta(80_000, acquisition.TotalValue(restricted, value.GameModePvP), 0.001)
}

func TestSummarize(t *testing.T) {
	rq := require.New(t)

	fee := int64(1_000)
	change := 10.0

	items := []entity.Item{
		{
			ID: "m", Quantity: 5, QuestName: "Profitable Venture",
			FleaMarketFee: &fee, PvPPrice: 2_000, ChangeLast48hPercent: &change,
		},
		{
			ID: "r", Quantity: 3, QuestName: "Safety Guarantee",
			Cheapest: &entity.AcquisitionMethod{CostRUB: 10_000},
		},
	}

	summary := acquisition.Summarize(items, value.GameModePvP)

	rq.InDelta(40_000, summary.GrandTotal, 0.001)
	rq.InDelta(10_000, summary.QuestTotals["Profitable Venture"], 0.001)
	rq.InDelta(30_000, summary.QuestTotals["Safety Guarantee"], 0.001)
	rq.Equal(1, summary.RestrictedCount)

	// Only the market item carries a change figure; it owns all the weight.
	rq.InDelta(10.0, summary.OverallPriceChange, 0.001)
}
