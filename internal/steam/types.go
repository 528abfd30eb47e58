package steam

import "encoding/json"

// envelope is the outer JSON object every Steam Web API response uses.
type envelope struct {
	Result json.RawMessage `json:"result"`
}

// MatchRef pairs a match id with its start timestamp, both kept as opaque
// strings. Slices of MatchRef preserve the upstream most-recent-first order.
type MatchRef struct {
	MatchID   string `json:"match_id"`
	StartTime string `json:"start_time"`
}

type historyResult struct {
	Matches *[]historyMatch `json:"matches"`
}

type historyMatch struct {
	MatchID   *int64 `json:"match_id"`
	StartTime *int64 `json:"start_time"`
}

// MatchDetail is the decoded result object of GetMatchDetails. Every field
// the extractor needs is a pointer so a missing key is distinguishable from
// a zero value; nothing here is validated beyond JSON shape.
type MatchDetail struct {
	// Error is set inside an HTTP 200 body when the match id is unknown.
	Error        *string       `json:"error"`
	MatchID      *int64        `json:"match_id"`
	GameMode     *int          `json:"game_mode"`
	RadiantWin   *bool         `json:"radiant_win"`
	DireScore    *uint32       `json:"dire_score"`
	RadiantScore *uint32       `json:"radiant_score"`
	Players      []MatchPlayer `json:"players"`
}

// MatchPlayer is one entry of a match's player roster on the wire.
type MatchPlayer struct {
	AccountID   *int64 `json:"account_id"`
	HeroID      *int   `json:"hero_id"`
	Item0       *int   `json:"item_0"`
	Item1       *int   `json:"item_1"`
	Item2       *int   `json:"item_2"`
	Item3       *int   `json:"item_3"`
	Item4       *int   `json:"item_4"`
	Item5       *int   `json:"item_5"`
	ItemNeutral *int   `json:"item_neutral"`
	Kills       *int   `json:"kills"`
	Deaths      *int   `json:"deaths"`
	Assists     *int   `json:"assists"`
	LastHits    *int   `json:"last_hits"`
	Denies      *int   `json:"denies"`
	GoldPerMin  *int   `json:"gold_per_min"`
	XPPerMin    *int   `json:"xp_per_min"`
	Gold        *int   `json:"gold"`
	GoldSpent   *int   `json:"gold_spent"`
	HeroDamage  *int   `json:"hero_damage"`
	TowerDamage *int   `json:"tower_damage"`
	HeroHealing *int   `json:"hero_healing"`
	Level       *int   `json:"level"`
	TeamNumber  *int   `json:"team_number"`
}

type heroesResult struct {
	Heroes *[]heroEntry `json:"heroes"`
}

type heroEntry struct {
	ID            *int    `json:"id"`
	LocalizedName *string `json:"localized_name"`
}
