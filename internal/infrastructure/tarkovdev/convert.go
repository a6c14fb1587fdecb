package tarkovdev

import (
	"time"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/lox"
)

func toEntityRef(ref apiItemRef) entity.ItemRef {
	return entity.ItemRef{
		ID:        ref.ID,
		Name:      ref.Name,
		ShortName: ref.ShortName,
		IconLink:  ref.IconLink,
	}
}

func toEntityStack(stack apiStack) entity.ItemStack {
	return entity.ItemStack{
		Item:  toEntityRef(stack.Item),
		Count: stack.Count,
	}
}

func toEntityOffer(offer apiSellOffer) entity.SellOffer {
	return entity.SellOffer{
		Vendor: entity.Vendor{
			Name:           offer.Vendor.Name,
			NormalizedName: offer.Vendor.NormalizedName,
		},
		Price:    offer.Price,
		Currency: value.Currency(offer.Currency),
		PriceRUB: offer.PriceRUB,
	}
}

func toEntityCraft(craft apiCraft) entity.Craft {
	return entity.Craft{
		ID: craft.ID,
		Station: entity.Station{
			ID:             craft.Station.ID,
			Name:           craft.Station.Name,
			NormalizedName: craft.Station.NormalizedName,
		},
		Level:         craft.Level,
		Duration:      time.Duration(craft.Duration) * time.Second,
		RequiredItems: lox.Map(craft.RequiredItems, toEntityStack),
		RewardItems:   lox.Map(craft.RewardItems, toEntityStack),
	}
}

func toEntityBarter(barter apiBarter) entity.Barter {
	result := entity.Barter{
		ID: barter.ID,
		Trader: entity.Trader{
			ID:             barter.Trader.ID,
			Name:           barter.Trader.Name,
			NormalizedName: barter.Trader.NormalizedName,
		},
		Level:         barter.Level,
		RequiredItems: lox.Map(barter.RequiredItems, toEntityStack),
		RewardItems:   lox.Map(barter.RewardItems, toEntityStack),
	}

	if barter.TaskUnlock != nil {
		result.TaskUnlock = &entity.QuestGate{
			ID:   barter.TaskUnlock.ID,
			Name: barter.TaskUnlock.Name,
		}
	}

	return result
}

func toEntityItem(item apiItem) entity.Item {
	updated, _ := time.Parse(time.RFC3339, item.Updated)

	return entity.Item{
		ID:                   item.ID,
		Name:                 item.Name,
		ShortName:            item.ShortName,
		Avg24hPrice:          item.Avg24hPrice,
		LastLowPrice:         item.LastLowPrice,
		ChangeLast48h:        item.ChangeLast48h,
		ChangeLast48hPercent: item.ChangeLast48hPercent,
		Updated:              updated,
		IconLink:             item.IconLink,
		WikiLink:             item.WikiLink,
		FleaMarketFee:        item.FleaMarketFee,
		SellFor:              lox.Map(item.SellFor, toEntityOffer),
		Crafts:               lox.Map(item.CraftsFor, toEntityCraft),
		Barters:              lox.Map(item.BartersFor, toEntityBarter),
	}
}

func toEntityBundled(item apiItem) entity.BundledItem {
	return entity.BundledItem{
		ID:           item.ID,
		Name:         item.Name,
		ShortName:    item.ShortName,
		Avg24hPrice:  item.Avg24hPrice,
		LastLowPrice: item.LastLowPrice,
		Barters:      lox.Map(item.BartersFor, toEntityBarter),
		SellFor:      lox.Map(item.SellFor, toEntityOffer),
		ContainsItems: lox.Map(item.ContainsItems, func(stack apiContainedStack) entity.ContainedPart {
			return entity.ContainedPart{
				Item: entity.SubPart{
					ID:            stack.Item.ID,
					Name:          stack.Item.Name,
					ShortName:     stack.Item.ShortName,
					IconLink:      stack.Item.IconLink,
					Avg24hPrice:   stack.Item.Avg24hPrice,
					LastLowPrice:  stack.Item.LastLowPrice,
					ChangeLast48h: stack.Item.ChangeLast48h,
					SellFor:       lox.Map(stack.Item.SellFor, toEntityOffer),
				},
				Count: stack.Count,
			}
		}),
	}
}

func toEntityTask(task apiTask) entity.Task {
	result := entity.Task{
		ID:   task.ID,
		Name: task.Name,
		Trader: entity.Trader{
			ID:             task.Trader.ID,
			Name:           task.Trader.Name,
			NormalizedName: task.Trader.NormalizedName,
		},
	}

	for _, objective := range task.Objectives {
		if objective.Item == nil {
			continue
		}

		result.Objectives = append(result.Objectives, entity.QuestObjective{
			Item:        toEntityRef(*objective.Item),
			Count:       objective.Count,
			FoundInRaid: objective.FoundInRaid,
			Description: objective.Description,
		})
	}

	return result
}
