package models

import (
	"encoding/json"
	"fmt"
)

// GameMode is the closed set of match modes this service understands,
// decoded from the Steam Web API's integer game_mode codes.
type GameMode int

const (
	AllPick           GameMode = 1
	RandomDraft       GameMode = 3
	RankedMatchmaking GameMode = 22
	TurboMode         GameMode = 23
)

var gameModeNames = map[GameMode]string{
	AllPick:           "All Pick",
	RandomDraft:       "Random Draft",
	RankedMatchmaking: "Ranked Matchmaking",
	TurboMode:         "Turbo",
}

// ParseGameMode maps an upstream game_mode code to its variant. Unknown
// codes are never defaulted to a guessed mode.
func ParseGameMode(code int) (GameMode, error) {
	mode := GameMode(code)
	if _, ok := gameModeNames[mode]; !ok {
		return 0, &InvalidGameModeError{Code: code}
	}
	return mode, nil
}

func (m GameMode) String() string {
	if name, ok := gameModeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON renders the mode as its display name rather than the raw code.
func (m GameMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts the display-name form produced by MarshalJSON, so
// cached records round-trip through the redis backend.
func (m *GameMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for mode, n := range gameModeNames {
		if n == name {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown game mode name %q", name)
}
