package questline

import (
	"sort"

	"tarkov_market/internal/domain/entity"
)

// GatedBarters returns the item's barters locked behind quests of the
// tracked chain.
func (s *Service) GatedBarters(item entity.Item) []entity.Barter {
	var gated []entity.Barter

	for _, barter := range item.Barters {
		if barter.TaskUnlock != nil && s.Tracked(barter.TaskUnlock.ID) {
			gated = append(gated, barter)
		}
	}

	return gated
}

// AvailableWithoutQuests reports whether the item can be acquired without
// completing any chain quest: any craft counts, as does any barter that is
// ungated or gated behind an untracked quest.
func (s *Service) AvailableWithoutQuests(item entity.Item) bool {
	if len(item.Crafts) > 0 {
		return true
	}

	for _, barter := range item.Barters {
		if barter.TaskUnlock == nil || !s.Tracked(barter.TaskUnlock.ID) {
			return true
		}
	}

	return false
}

// UnlockSummary groups quest-gated barters across all items by gating
// quest, so the UI can show "complete X to unlock these trades". Quests
// appear in chain order.
func (s *Service) UnlockSummary(items []entity.Item) map[string][]entity.QuestUnlock {
	summary := make(map[string][]entity.QuestUnlock)

	for _, item := range items {
		for _, barter := range s.GatedBarters(item) {
			unlock := entity.QuestUnlock{
				QuestID:   barter.TaskUnlock.ID,
				QuestName: barter.TaskUnlock.Name,
				Trader:    barter.Trader.Name,
				Level:     barter.Level,
				ItemID:    item.ID,
				ItemName:  item.Name,
			}

			summary[unlock.QuestID] = append(summary[unlock.QuestID], unlock)
		}
	}

	for questID := range summary {
		unlocks := summary[questID]
		sort.SliceStable(unlocks, func(i, j int) bool {
			return unlocks[i].ItemName < unlocks[j].ItemName
		})
		summary[questID] = unlocks
	}

	return summary
}
