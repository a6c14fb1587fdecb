package acquisition

import (
	"fmt"
	"strings"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// Sub-parts that historically sell better on the flea market than to any
// trader. Data-driven heuristic carried over from observed prices, not an
// algorithm; everything else defaults to the best trader offer.
//
//nolint:gochecknoglobals
var fleaRecommendedParts = map[string]struct{}{
	"5a1ead28fcdbcb001912fa9f": {}, // DLOC-IRD mount
	"59f8a37386f7747af3328f06": {}, // Shift handguard
	"59bfe68886f7746004266202": {}, // MUR-1S upper
	"59db3a1d86f77429e05b4e92": {}, // GRAL-S foregrip
}

// isQuestTarget matches a sub-part against the item the quest wants.
// Exact id match first; the case-insensitive short-name substring check is
// a fallback for catalog entries where the preset part id differs from the
// loose item id.
// TODO: replace the substring fallback with an explicit id mapping once
// the upstream exposes preset part links.
func isQuestTarget(part entity.SubPart, target entity.Item) bool {
	if part.ID == target.ID {
		return true
	}

	if target.ShortName == "" {
		return false
	}

	return strings.Contains(strings.ToLower(part.Name), strings.ToLower(target.ShortName))
}

// Decompose values every sub-part of the bundle. The part matching the
// quest target is kept, never sold, and contributes exactly 0; each other
// part realizes count × the price at its recommended venue.
func (e Engine) Decompose(bundled entity.BundledItem, target entity.Item) entity.Decomposition {
	var decomposition entity.Decomposition

	for _, contained := range bundled.ContainsItems {
		part := contained.Item
		keep := isQuestTarget(part, target)

		var (
			bestTraderPrice int64
			bestTraderName  = "Unknown"
			fleaPrice       int64
		)

		for _, offer := range part.SellFor {
			if offer.IsFleaMarket() {
				// First flea offer wins; duplicates are upstream noise.
				if fleaPrice == 0 {
					fleaPrice = offer.RUB()
				}
				continue
			}

			if rub := offer.RUB(); rub > bestTraderPrice {
				bestTraderPrice = rub
				bestTraderName = offer.Vendor.Name
			}
		}

		marketPrice := part.Avg24hPrice
		if marketPrice == 0 {
			marketPrice = part.LastLowPrice
		}

		_, recommendFlea := fleaRecommendedParts[part.ID]

		var sellValue int64
		if !keep {
			price := bestTraderPrice
			if recommendFlea {
				price = fleaPrice
			}
			sellValue = price * int64(contained.Count)
		}

		decomposition.Parts = append(decomposition.Parts, entity.PartValuation{
			ID:              part.ID,
			Name:            part.Name,
			ShortName:       part.ShortName,
			IconLink:        part.IconLink,
			Count:           contained.Count,
			MarketPrice:     marketPrice,
			BestTraderPrice: bestTraderPrice,
			BestTraderName:  bestTraderName,
			FleaPrice:       fleaPrice,
			RecommendFlea:   recommendFlea,
			SellValue:       sellValue,
			KeepForQuest:    keep,
			ChangeLast48h:   part.ChangeLast48h,
		})

		if keep {
			continue
		}

		decomposition.TotalSellValue += sellValue
		if recommendFlea {
			decomposition.FleaSellValue += sellValue
		} else {
			decomposition.TraderSellValue += sellValue
		}
	}

	return decomposition
}

// bundledMethod builds the strip-for-parts candidate: acquire the bundle
// through its cheapest barter, sell everything except the quest target,
// and carry the remainder as net cost. Net cost below zero is a profit
// and stays negative. No barters, or only unpriced ones, means no method.
func (e Engine) bundledMethod(
	target entity.Item,
	bundled entity.BundledItem,
	prices value.PriceIndex,
) (entity.AcquisitionMethod, bool) {
	if len(bundled.Barters) == 0 {
		return entity.AcquisitionMethod{}, false
	}

	decomposition := e.Decompose(bundled, target)

	var (
		bestBarter     *entity.Barter
		bestBarterCost int64
		bestNetCost    int64
	)

	for i := range bundled.Barters {
		barter := bundled.Barters[i]

		barterCost := BarterCost(barter, prices)
		if barterCost <= 0 {
			// Unpriced barter: a zero cost here would fabricate a
			// sell-value windfall.
			continue
		}

		netCost := barterCost - decomposition.TotalSellValue

		if bestBarter == nil || netCost < bestNetCost {
			bestBarter = &bundled.Barters[i]
			bestBarterCost = barterCost
			bestNetCost = netCost
		}
	}

	if bestBarter == nil {
		return entity.AcquisitionMethod{}, false
	}

	return entity.AcquisitionMethod{
		Type:     entity.MethodBundled,
		ID:       "bundled-" + bestBarter.ID,
		Cost:     bestNetCost,
		Currency: value.RUB,
		CostRUB:  value.RUB.ToRubles(bestNetCost),
		Details: fmt.Sprintf("%s LL%d %s (net cost after selling parts)",
			bestBarter.Trader.Name, bestBarter.Level, bundled.ShortName),
		Barter: bestBarter,
		Bundled: &entity.BundledBreakdown{
			BundledName:      bundled.Name,
			BundledShortName: bundled.ShortName,
			BarterCost:       bestBarterCost,
			NetCost:          bestNetCost,
			Trader:           bestBarter.Trader.Name,
			TraderLevel:      bestBarter.Level,
			RequiredItems:    bestBarter.RequiredItems,
			Parts:            decomposition.Parts,
			TotalSellValue:   decomposition.TotalSellValue,
			FleaSellValue:    decomposition.FleaSellValue,
			TraderSellValue:  decomposition.TraderSellValue,
		},
	}, true
}
