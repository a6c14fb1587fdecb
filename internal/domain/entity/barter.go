package entity

// Trader is an NPC vendor offering barter trades.
type Trader struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalized_name"`
}

// QuestGate marks a barter that only becomes available after completing a
// quest. Gated offers are still priced; surfacing the gate is up to the UI.
type QuestGate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Barter is a trade offer: required stacks are handed to the trader at the
// given loyalty level in exchange for the reward stacks.
type Barter struct {
	ID            string      `json:"id"`
	Trader        Trader      `json:"trader"`
	Level         int         `json:"level"`
	RequiredItems []ItemStack `json:"required_items"`
	RewardItems   []ItemStack `json:"reward_items"`
	TaskUnlock    *QuestGate  `json:"task_unlock,omitempty"`
}
