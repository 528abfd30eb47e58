package logic

import (
	"fmt"
	"strings"

	"github.com/dotacourier/match-api/internal/models"
)

// FormatPerformance renders a performance record as the multi-line summary
// relayed to chat subscribers. The hero name comes strictly from the supplied
// catalogue; an unknown hero id is an error, never a fabricated name.
func FormatPerformance(p *models.PlayerPerformance, heroes map[int]string) (string, error) {
	heroName, ok := heroes[p.HeroID]
	if !ok {
		return "", &models.UnknownHeroError{HeroID: p.HeroID}
	}

	result := "Defeat"
	if p.Win {
		result = "Victory"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s\n", p.GameMode, heroName, result)
	fmt.Fprintf(&b, "KDA %d/%d/%d, participation %.1f%%\n", p.Kills, p.Deaths, p.Assists, p.ParticipationRate*100)
	fmt.Fprintf(&b, "LH/DN %d/%d, GPM/XPM %d/%d\n", p.LastHits, p.Denies, p.GPM, p.XPM)
	fmt.Fprintf(&b, "Level %d, total gold %d\n", p.Level, p.Gold)
	fmt.Fprintf(&b, "Hero damage %d, tower damage %d, healing %d", p.HeroDamage, p.TowerDamage, p.HeroHealing)
	return b.String(), nil
}
