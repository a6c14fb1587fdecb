package entity

// Quest is one task of the tracked questline.
type Quest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Trader   Trader `json:"trader"`
	WikiLink string `json:"wiki_link,omitempty"`
	Order    int    `json:"order"`
}

// QuestObjective is a turn-in requirement extracted from a task.
type QuestObjective struct {
	Item        ItemRef `json:"item"`
	Count       int     `json:"count"`
	FoundInRaid bool    `json:"found_in_raid"`
	Description string  `json:"description"`
}

// Task mirrors one upstream task with its item objectives.
type Task struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Trader     Trader           `json:"trader"`
	Objectives []QuestObjective `json:"objectives"`
}

// QuestUnlock links a quest to a barter it gates.
type QuestUnlock struct {
	QuestID   string `json:"quest_id"`
	QuestName string `json:"quest_name"`
	Trader    string `json:"trader"`
	Level     int    `json:"level"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
}
