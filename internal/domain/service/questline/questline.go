// Package questline knows which quests form the tracked chain, derives
// the item requirements from upstream task objectives, and analyzes which
// acquisition offers are locked behind quests in the chain.
package questline

import (
	"sort"

	"tarkov_market/internal/domain/entity"
)

// The "all on red" chain, in completion order.
//
//nolint:gochecknoglobals
var chain = []entity.Quest{
	{ID: "67af4c1405c58dc6f7056667", Name: "Profitable Venture", Order: 1,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/Profitable_Venture"},
	{ID: "67af4c169d95ad16e004fd86", Name: "Safety Guarantee", Order: 2,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/Safety_Guarantee"},
	{ID: "67af4c17f4f1fb58a907f8f6", Name: "Never Too Late To Learn", Order: 3,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/Never_Too_Late_To_Learn"},
	{ID: "67af4c1991ee75c6d7060a16", Name: "Get a Foothold", Order: 4,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/Get_a_Foothold"},
	{ID: "67af4c1a6c3ebfd8e6034916", Name: "Profit Retention", Order: 5,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/Profit_Retention"},
	{ID: "67af4c1cc0e59d55e2010b97", Name: "A Life Lesson", Order: 6,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/A_Life_Lesson"},
	{ID: "67af4c1d8c9482eca103e477", Name: "Consolation Prize", Order: 7,
		WikiLink: "https://escapefromtarkov.fandom.com/wiki/Consolation_Prize"},
}

type Service struct {
	quests  []entity.Quest
	questID map[string]entity.Quest
}

// NewService tracks the default chain; ids may override it for testing or
// for pointing the tracker at another quest line.
func NewService(quests ...entity.Quest) *Service {
	if len(quests) == 0 {
		quests = chain
	}

	byID := make(map[string]entity.Quest, len(quests))
	for _, q := range quests {
		byID[q.ID] = q
	}

	return &Service{
		quests:  quests,
		questID: byID,
	}
}

// Quests returns the tracked chain in completion order.
func (s *Service) Quests() []entity.Quest {
	result := make([]entity.Quest, len(s.quests))
	copy(result, s.quests)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})

	return result
}

// Tracked reports whether the quest id belongs to the chain.
func (s *Service) Tracked(questID string) bool {
	_, ok := s.questID[questID]
	return ok
}

// Requirement is one item a quest of the chain asks to turn in.
type Requirement struct {
	Quest       entity.Quest
	Item        entity.ItemRef
	Count       int
	FoundInRaid bool
}

// RequirementsFromTasks filters upstream tasks down to the chain and
// flattens their item objectives into requirements, ordered by quest.
// Duplicate items within one quest accumulate their counts.
func (s *Service) RequirementsFromTasks(tasks []entity.Task) []Requirement {
	var requirements []Requirement

	index := make(map[string]int)

	for _, task := range tasks {
		quest, ok := s.questID[task.ID]
		if !ok {
			continue
		}

		quest.Trader = task.Trader

		for _, objective := range task.Objectives {
			if objective.Item.ID == "" || objective.Count <= 0 {
				continue
			}

			key := quest.ID + "/" + objective.Item.ID
			if i, seen := index[key]; seen {
				requirements[i].Count += objective.Count
				continue
			}

			index[key] = len(requirements)
			requirements = append(requirements, Requirement{
				Quest:       quest,
				Item:        objective.Item,
				Count:       objective.Count,
				FoundInRaid: objective.FoundInRaid,
			})
		}
	}

	sort.SliceStable(requirements, func(i, j int) bool {
		return requirements[i].Quest.Order < requirements[j].Quest.Order
	})

	return requirements
}
