package server

import (
	"time"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/acquisition"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/lox"
	"tarkov_market/pkg/rest"
)

func newRESTQuestline(snap entity.Snapshot) rest.Questline {
	return rest.Questline{
		Mode: snap.Mode.String(),
		Items: lox.Map(snap.Items, func(item entity.Item) rest.Item {
			return newRESTItem(item, snap.Mode)
		}),
		Summary:   newRESTSummary(snap.Summary),
		FetchedAt: snap.FetchedAt.Format(time.RFC3339),
	}
}

func newRESTSummary(summary entity.Summary) rest.Summary {
	return rest.Summary{
		GrandTotal:         summary.GrandTotal,
		QuestTotals:        summary.QuestTotals,
		RestrictedCount:    summary.RestrictedCount,
		OverallPriceChange: summary.OverallPriceChange,
	}
}

func newRESTItem(item entity.Item, mode value.GameMode) rest.Item {
	result := rest.Item{
		ID:                   item.ID,
		Name:                 item.Name,
		ShortName:            item.ShortName,
		IconLink:             item.IconLink,
		WikiLink:             item.WikiLink,
		Quantity:             item.Quantity,
		QuestName:            item.QuestName,
		QuestOrder:           item.QuestOrder,
		Price:                item.ModePrice(mode),
		ChangeLast48hPercent: item.ChangeLast48hPercent,
		FleaRestricted:       item.FleaRestricted(),
		TotalValue:           acquisition.TotalValue(item, mode),
		Crafts:               lox.Map(item.Crafts, newRESTCraft),
		Barters:              lox.Map(item.Barters, newRESTBarter),
	}

	if !item.Updated.IsZero() {
		result.Updated = item.Updated.Format(time.RFC3339)
	}

	if item.Cheapest != nil {
		result.Cheapest = newRESTMethod(*item.Cheapest)
	}

	return result
}

func newRESTMethod(method entity.AcquisitionMethod) *rest.AcquisitionMethod {
	result := &rest.AcquisitionMethod{
		Type:     string(method.Type),
		Cost:     method.Cost,
		Currency: string(method.Currency),
		CostRUB:  method.CostRUB,
		Details:  method.Details,
	}

	if method.Craft != nil {
		craft := newRESTCraft(*method.Craft)
		result.Craft = &craft
	}

	if method.Barter != nil {
		barter := newRESTBarter(*method.Barter)
		result.Barter = &barter
	}

	if method.Bundled != nil {
		result.Bundled = newRESTBundled(*method.Bundled)
	}

	return result
}

func newRESTCraft(craft entity.Craft) rest.Craft {
	return rest.Craft{
		ID:            craft.ID,
		Station:       craft.Station.Name,
		Level:         craft.Level,
		Duration:      craft.Duration.String(),
		RequiredItems: lox.Map(craft.RequiredItems, newRESTStack),
	}
}

func newRESTBarter(barter entity.Barter) rest.Barter {
	result := rest.Barter{
		ID:            barter.ID,
		Trader:        barter.Trader.Name,
		Level:         barter.Level,
		RequiredItems: lox.Map(barter.RequiredItems, newRESTStack),
	}

	if barter.TaskUnlock != nil {
		result.QuestUnlock = barter.TaskUnlock.Name
	}

	return result
}

func newRESTStack(stack entity.ItemStack) rest.ItemStack {
	return rest.ItemStack{
		ID:        stack.Item.ID,
		Name:      stack.Item.Name,
		ShortName: stack.Item.ShortName,
		IconLink:  stack.Item.IconLink,
		Count:     stack.Count,
	}
}

func newRESTBundled(breakdown entity.BundledBreakdown) *rest.BundledBreakdown {
	return &rest.BundledBreakdown{
		SourceName:      breakdown.BundledName,
		Trader:          breakdown.Trader,
		TraderLevel:     breakdown.TraderLevel,
		BarterCost:      breakdown.BarterCost,
		NetCost:         breakdown.NetCost,
		TotalSellValue:  breakdown.TotalSellValue,
		FleaSellValue:   breakdown.FleaSellValue,
		TraderSellValue: breakdown.TraderSellValue,
		RequiredItems:   lox.Map(breakdown.RequiredItems, newRESTStack),
		Parts:           lox.Map(breakdown.Parts, newRESTPart),
	}
}

func newRESTPart(part entity.PartValuation) rest.PartValuation {
	venue := "trader"
	if part.RecommendFlea {
		venue = "flea"
	}

	return rest.PartValuation{
		ID:        part.ID,
		Name:      part.Name,
		ShortName: part.ShortName,
		IconLink:  part.IconLink,
		Count:     part.Count,
		SellValue: part.SellValue,
		Venue:     venue,
		Keep:      part.KeepForQuest,
	}
}

func newRESTQuests(quests []entity.Quest) rest.QuestsResponse {
	return rest.QuestsResponse{
		Quests: lox.Map(quests, func(quest entity.Quest) rest.Quest {
			return rest.Quest{
				ID:       quest.ID,
				Name:     quest.Name,
				Order:    quest.Order,
				Trader:   quest.Trader.Name,
				WikiLink: quest.WikiLink,
			}
		}),
	}
}

func newRESTUnlocks(unlocks map[string][]entity.QuestUnlock) map[string][]rest.QuestUnlock {
	result := make(map[string][]rest.QuestUnlock, len(unlocks))

	for questID, entries := range unlocks {
		result[questID] = lox.Map(entries, func(unlock entity.QuestUnlock) rest.QuestUnlock {
			return rest.QuestUnlock{
				QuestID:   unlock.QuestID,
				QuestName: unlock.QuestName,
				Trader:    unlock.Trader,
				Level:     unlock.Level,
				ItemID:    unlock.ItemID,
				ItemName:  unlock.ItemName,
			}
		})
	}

	return result
}
