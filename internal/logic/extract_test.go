package logic

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dotacourier/match-api/internal/models"
	"github.com/dotacourier/match-api/internal/steam"
)

// baseDetailJSON is a well-formed match detail with the target account on
// the Radiant side. Tests mutate it via detailFromJSON + overrides.
const baseDetailJSON = `{
	"match_id": 7131970019,
	"game_mode": 22,
	"radiant_win": true,
	"dire_score": 40,
	"radiant_score": 30,
	"players": [
		{
			"account_id": 417817047,
			"hero_id": 8,
			"item_0": 1, "item_1": 29, "item_2": 147, "item_3": 108, "item_4": 116, "item_5": 0,
			"item_neutral": 2081,
			"kills": 10, "deaths": 3, "assists": 5,
			"last_hits": 250, "denies": 12,
			"gold_per_min": 612, "xp_per_min": 705,
			"gold": 1200, "gold_spent": 21800,
			"hero_damage": 31000, "tower_damage": 5200, "hero_healing": 0,
			"level": 25,
			"team_number": 0
		},
		{
			"account_id": 111111111,
			"hero_id": 14,
			"item_0": 0, "item_1": 0, "item_2": 0, "item_3": 0, "item_4": 0, "item_5": 0,
			"item_neutral": 0,
			"kills": 2, "deaths": 9, "assists": 11,
			"last_hits": 80, "denies": 2,
			"gold_per_min": 310, "xp_per_min": 402,
			"gold": 400, "gold_spent": 9100,
			"hero_damage": 9000, "tower_damage": 100, "hero_healing": 4000,
			"level": 18,
			"team_number": 1
		}
	]
}`

func detailFromJSON(t *testing.T, raw string) *steam.MatchDetail {
	t.Helper()
	var detail steam.MatchDetail
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		t.Fatalf("unmarshal detail: %v", err)
	}
	return &detail
}

// mutateDetail rewrites baseDetailJSON through a generic map so table cases
// can drop or replace individual fields.
func mutateDetail(raw string, mutate func(m map[string]any)) string {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		panic(err)
	}
	mutate(m)
	out, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func TestExtractPerformance(t *testing.T) {
	detail := detailFromJSON(t, baseDetailJSON)

	perf, err := ExtractPerformance(detail, "417817047")
	if err != nil {
		t.Fatalf("ExtractPerformance() error = %v", err)
	}

	if perf.MatchID != "7131970019" {
		t.Errorf("MatchID = %q, want 7131970019", perf.MatchID)
	}
	if len(perf.ItemList) != models.ItemSlots {
		t.Fatalf("len(ItemList) = %d, want %d", len(perf.ItemList), models.ItemSlots)
	}
	wantItems := []int{1, 29, 147, 108, 116, 0, 2081}
	for i, item := range wantItems {
		if perf.ItemList[i] != item {
			t.Errorf("ItemList[%d] = %d, want %d", i, perf.ItemList[i], item)
		}
	}
	if !perf.Radiant {
		t.Error("Radiant = false, want true for team_number 0")
	}
	if !perf.Win {
		t.Error("Win = false, want true when radiant and radiant_win")
	}
	if perf.Gold != 1200+21800 {
		t.Errorf("Gold = %d, want %d", perf.Gold, 1200+21800)
	}
	// (10 kills + 5 assists) / 30 radiant kills
	if perf.ParticipationRate != 0.5 {
		t.Errorf("ParticipationRate = %v, want 0.5", perf.ParticipationRate)
	}
	if perf.GameMode != models.RankedMatchmaking {
		t.Errorf("GameMode = %v, want RankedMatchmaking", perf.GameMode)
	}
	if perf.Kills != 10 || perf.Deaths != 3 || perf.Assists != 5 {
		t.Errorf("KDA = %d/%d/%d, want 10/3/5", perf.Kills, perf.Deaths, perf.Assists)
	}
	if perf.Level != 25 || perf.GPM != 612 || perf.XPM != 705 {
		t.Errorf("Level/GPM/XPM = %d/%d/%d, want 25/612/705", perf.Level, perf.GPM, perf.XPM)
	}
}

func TestExtractPerformance_DireSide(t *testing.T) {
	detail := detailFromJSON(t, baseDetailJSON)

	perf, err := ExtractPerformance(detail, "111111111")
	if err != nil {
		t.Fatalf("ExtractPerformance() error = %v", err)
	}

	if perf.Radiant {
		t.Error("Radiant = true, want false for team_number 1")
	}
	if perf.Win {
		t.Error("Win = true, want false when dire and radiant_win")
	}
	// (2 kills + 11 assists) / 40 dire kills
	want := float64(2+11) / 40
	if perf.ParticipationRate != want {
		t.Errorf("ParticipationRate = %v, want %v", perf.ParticipationRate, want)
	}
}

func TestExtractPerformance_ZeroSideScoreClampsParticipation(t *testing.T) {
	raw := mutateDetail(baseDetailJSON, func(m map[string]any) {
		m["radiant_score"] = 0
	})

	perf, err := ExtractPerformance(detailFromJSON(t, raw), "417817047")
	if err != nil {
		t.Fatalf("ExtractPerformance() error = %v", err)
	}
	if perf.ParticipationRate != 0 {
		t.Errorf("ParticipationRate = %v, want 0 when own-side score is 0", perf.ParticipationRate)
	}
}

func TestExtractPerformance_Errors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		accountID string
		check     func(t *testing.T, err error)
	}{
		{
			name:      "player absent from roster",
			raw:       baseDetailJSON,
			accountID: "999999999",
			check: func(t *testing.T, err error) {
				var target *models.PlayerNotFoundError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want PlayerNotFoundError", err)
				}
				if target.AccountID != "999999999" {
					t.Errorf("AccountID = %q, want 999999999", target.AccountID)
				}
			},
		},
		{
			name: "unrecognized game mode",
			raw: mutateDetail(baseDetailJSON, func(m map[string]any) {
				m["game_mode"] = 99
			}),
			accountID: "417817047",
			check: func(t *testing.T, err error) {
				var target *models.InvalidGameModeError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want InvalidGameModeError", err)
				}
				if target.Code != 99 {
					t.Errorf("Code = %d, want 99", target.Code)
				}
			},
		},
		{
			name: "invalid team number",
			raw: mutateDetail(baseDetailJSON, func(m map[string]any) {
				players := m["players"].([]any)
				players[0].(map[string]any)["team_number"] = 5
			}),
			accountID: "417817047",
			check: func(t *testing.T, err error) {
				var target *models.InvalidTeamNumberError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want InvalidTeamNumberError", err)
				}
			},
		},
		{
			name: "missing item slot",
			raw: mutateDetail(baseDetailJSON, func(m map[string]any) {
				players := m["players"].([]any)
				delete(players[0].(map[string]any), "item_3")
			}),
			accountID: "417817047",
			check: func(t *testing.T, err error) {
				var target *models.MalformedMatchDataError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want MalformedMatchDataError", err)
				}
				if target.Field != "item_3" {
					t.Errorf("Field = %q, want item_3", target.Field)
				}
			},
		},
		{
			name: "missing neutral item",
			raw: mutateDetail(baseDetailJSON, func(m map[string]any) {
				players := m["players"].([]any)
				delete(players[0].(map[string]any), "item_neutral")
			}),
			accountID: "417817047",
			check: func(t *testing.T, err error) {
				var target *models.MalformedMatchDataError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want MalformedMatchDataError", err)
				}
				if target.Field != "item_neutral" {
					t.Errorf("Field = %q, want item_neutral", target.Field)
				}
			},
		},
		{
			name: "missing radiant_win",
			raw: mutateDetail(baseDetailJSON, func(m map[string]any) {
				delete(m, "radiant_win")
			}),
			accountID: "417817047",
			check: func(t *testing.T, err error) {
				var target *models.MalformedMatchDataError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want MalformedMatchDataError", err)
				}
				if target.Field != "radiant_win" {
					t.Errorf("Field = %q, want radiant_win", target.Field)
				}
			},
		},
		{
			name: "missing per-player stat field",
			raw: mutateDetail(baseDetailJSON, func(m map[string]any) {
				players := m["players"].([]any)
				delete(players[0].(map[string]any), "gold_spent")
			}),
			accountID: "417817047",
			check: func(t *testing.T, err error) {
				var target *models.MalformedMatchDataError
				if !errors.As(err, &target) {
					t.Fatalf("error = %v, want MalformedMatchDataError", err)
				}
				if target.Field != "gold_spent" {
					t.Errorf("Field = %q, want gold_spent", target.Field)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPerformance(detailFromJSON(t, tt.raw), tt.accountID)
			if err == nil {
				t.Fatal("ExtractPerformance() error = nil, want error")
			}
			tt.check(t, err)
		})
	}
}
