package entity

import "time"

// Station is a hideout production station.
type Station struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalized_name"`
}

// Craft is a production recipe: required ingredient stacks go in, reward
// stacks come out after Duration at the given station level.
type Craft struct {
	ID            string        `json:"id"`
	Station       Station       `json:"station"`
	Level         int           `json:"level"`
	Duration      time.Duration `json:"duration"`
	RequiredItems []ItemStack   `json:"required_items"`
	RewardItems   []ItemStack   `json:"reward_items"`
}
