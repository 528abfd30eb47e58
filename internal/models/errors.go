package models

import "fmt"

// PlayerNotFoundError reports that the requested account appears nowhere in
// a fetched match's player roster.
type PlayerNotFoundError struct {
	AccountID string
	MatchID   string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %s not found in match %s", e.AccountID, e.MatchID)
}

// InvalidGameModeError reports a game_mode code outside the supported set.
type InvalidGameModeError struct {
	Code int
}

func (e *InvalidGameModeError) Error() string {
	return fmt.Sprintf("invalid game_mode code %d", e.Code)
}

// InvalidTeamNumberError reports a team_number other than 0 (Radiant) or
// 1 (Dire).
type InvalidTeamNumberError struct {
	Value int
}

func (e *InvalidTeamNumberError) Error() string {
	return fmt.Sprintf("invalid team_number %d", e.Value)
}

// MalformedMatchDataError reports a required field missing from an upstream
// match-detail payload. Field names the exact upstream JSON key so decode
// failures stay attributable.
type MalformedMatchDataError struct {
	Field string
}

func (e *MalformedMatchDataError) Error() string {
	return fmt.Sprintf("match data missing required field %q", e.Field)
}

// UnknownHeroError reports a hero id absent from the hero catalogue.
type UnknownHeroError struct {
	HeroID int
}

func (e *UnknownHeroError) Error() string {
	return fmt.Sprintf("unknown hero id %d", e.HeroID)
}

// NoMatchHistoryError reports an account with zero recorded matches.
type NoMatchHistoryError struct {
	AccountID string
}

func (e *NoMatchHistoryError) Error() string {
	return fmt.Sprintf("no match history for account %s", e.AccountID)
}
