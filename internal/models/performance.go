package models

// ItemSlots is the fixed length of a performance item list: six equipped
// slots (left to right, top to bottom) followed by the neutral item.
const ItemSlots = 7

// PlayerPerformance records the fields of one player's showing in one match
// that the outer interface cares about. Constructed once per
// (account_id, match_id) pair and never mutated afterwards.
type PlayerPerformance struct {
	AccountID string `json:"account_id"`
	MatchID   string `json:"match_id"`
	// HeroID is resolved to a display name only at presentation time.
	HeroID int `json:"hero_id"`
	// ItemList holds item_0..item_5 then the neutral item. Slot order is
	// meaningful and preserved from the upstream payload.
	ItemList          []int    `json:"item_list"`
	Kills             uint8    `json:"kills"`
	Deaths            uint8    `json:"deaths"`
	Assists           uint8    `json:"assists"`
	ParticipationRate float64  `json:"participation_rate"`
	LastHits          uint32   `json:"last_hits"`
	Denies            uint32   `json:"denies"`
	GPM               uint32   `json:"gpm"`
	XPM               uint32   `json:"xpm"`
	HeroDamage        uint32   `json:"hero_damage"`
	TowerDamage       uint32   `json:"tower_damage"`
	HeroHealing       uint32   `json:"hero_healing"`
	DireScore         uint32   `json:"dire_score"`
	RadiantScore      uint32   `json:"radiant_score"`
	// Gold is unspent gold plus cumulative gold spent, i.e. total earned.
	Gold  uint32 `json:"gold"`
	Level uint8  `json:"level"`
	// Win is true iff the player's side matches the match's winning side.
	Win bool `json:"win"`
	// Radiant is true iff the player was on team_number 0.
	Radiant  bool     `json:"radiant"`
	GameMode GameMode `json:"game_mode"`
}
