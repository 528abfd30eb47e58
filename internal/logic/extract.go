package logic

import (
	"strconv"

	"github.com/dotacourier/match-api/internal/models"
	"github.com/dotacourier/match-api/internal/steam"
)

// required unwraps a decoded wire field, converting a missing key into a
// MalformedMatchDataError naming it. No field is ever defaulted silently.
func required[T any](v *T, field string) (T, error) {
	if v == nil {
		var zero T
		return zero, &models.MalformedMatchDataError{Field: field}
	}
	return *v, nil
}

// ExtractPerformance locates accountID in the match's player roster and
// builds the normalized performance record for it. Every decode failure is
// attributable to a specific upstream field.
func ExtractPerformance(detail *steam.MatchDetail, accountID string) (*models.PlayerPerformance, error) {
	matchID, err := required(detail.MatchID, "match_id")
	if err != nil {
		return nil, err
	}
	modeCode, err := required(detail.GameMode, "game_mode")
	if err != nil {
		return nil, err
	}
	mode, err := models.ParseGameMode(modeCode)
	if err != nil {
		return nil, err
	}
	radiantWin, err := required(detail.RadiantWin, "radiant_win")
	if err != nil {
		return nil, err
	}
	direScore, err := required(detail.DireScore, "dire_score")
	if err != nil {
		return nil, err
	}
	radiantScore, err := required(detail.RadiantScore, "radiant_score")
	if err != nil {
		return nil, err
	}

	matchIDStr := strconv.FormatInt(matchID, 10)

	player, err := findPlayer(detail.Players, accountID, matchIDStr)
	if err != nil {
		return nil, err
	}

	teamNumber, err := required(player.TeamNumber, "team_number")
	if err != nil {
		return nil, err
	}
	var radiant bool
	switch teamNumber {
	case 0:
		radiant = true
	case 1:
		radiant = false
	default:
		return nil, &models.InvalidTeamNumberError{Value: teamNumber}
	}

	items, err := decodeItems(player)
	if err != nil {
		return nil, err
	}

	stats := []struct {
		field string
		value *int
	}{
		{"hero_id", player.HeroID},
		{"kills", player.Kills},
		{"deaths", player.Deaths},
		{"assists", player.Assists},
		{"last_hits", player.LastHits},
		{"denies", player.Denies},
		{"gold_per_min", player.GoldPerMin},
		{"xp_per_min", player.XPPerMin},
		{"gold", player.Gold},
		{"gold_spent", player.GoldSpent},
		{"hero_damage", player.HeroDamage},
		{"tower_damage", player.TowerDamage},
		{"hero_healing", player.HeroHealing},
		{"level", player.Level},
	}
	for _, s := range stats {
		if s.value == nil {
			return nil, &models.MalformedMatchDataError{Field: s.field}
		}
	}

	kills := *player.Kills
	assists := *player.Assists

	// Participation is the player's share of their own side's kills. A side
	// score of zero would divide by zero; it clamps to 0 instead.
	ownSideScore := direScore
	if radiant {
		ownSideScore = radiantScore
	}
	participation := 0.0
	if ownSideScore > 0 {
		participation = float64(kills+assists) / float64(ownSideScore)
	}

	return &models.PlayerPerformance{
		AccountID:         accountID,
		MatchID:           matchIDStr,
		HeroID:            *player.HeroID,
		ItemList:          items,
		Kills:             uint8(kills),
		Deaths:            uint8(*player.Deaths),
		Assists:           uint8(assists),
		ParticipationRate: participation,
		LastHits:          uint32(*player.LastHits),
		Denies:            uint32(*player.Denies),
		GPM:               uint32(*player.GoldPerMin),
		XPM:               uint32(*player.XPPerMin),
		HeroDamage:        uint32(*player.HeroDamage),
		TowerDamage:       uint32(*player.TowerDamage),
		HeroHealing:       uint32(*player.HeroHealing),
		DireScore:         direScore,
		RadiantScore:      radiantScore,
		Gold:              uint32(*player.Gold + *player.GoldSpent),
		Level:             uint8(*player.Level),
		Win:               radiant == radiantWin,
		Radiant:           radiant,
		GameMode:          mode,
	}, nil
}

// findPlayer scans the roster for the entry whose account id, in decimal
// string form, equals accountID. Absence is surfaced, never defaulted.
func findPlayer(players []steam.MatchPlayer, accountID, matchID string) (*steam.MatchPlayer, error) {
	for i := range players {
		p := &players[i]
		if p.AccountID == nil {
			continue
		}
		if strconv.FormatInt(*p.AccountID, 10) == accountID {
			return p, nil
		}
	}
	return nil, &models.PlayerNotFoundError{AccountID: accountID, MatchID: matchID}
}

// decodeItems reads the six equipped slots in source order, then the neutral
// item, producing the fixed 7-entry list.
func decodeItems(p *steam.MatchPlayer) ([]int, error) {
	slots := []struct {
		field string
		value *int
	}{
		{"item_0", p.Item0},
		{"item_1", p.Item1},
		{"item_2", p.Item2},
		{"item_3", p.Item3},
		{"item_4", p.Item4},
		{"item_5", p.Item5},
		{"item_neutral", p.ItemNeutral},
	}

	items := make([]int, 0, models.ItemSlots)
	for _, s := range slots {
		if s.value == nil {
			return nil, &models.MalformedMatchDataError{Field: s.field}
		}
		items = append(items, *s.value)
	}
	return items, nil
}
