package insight

import (
	"sort"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
)

// unknownBucket 承接缺失维度的游戏
const unknownBucket = "Unknown"

// PlatformPreference 按平台计算时长占比偏好。
func PlatformPreference(games []game.Game) []Preference {
	return preferenceBy(games, func(g *game.Game) string { return g.Platform })
}

// GenrePreference 按题材计算时长占比偏好。
func GenrePreference(games []game.Game) []Preference {
	return preferenceBy(games, func(g *game.Game) string { return g.Genre })
}

// preferenceBy 按维度累计时长，换算为0-100的占比分，
// 并按绝对时长降序排列。
func preferenceBy(games []game.Game, dimension func(*game.Game) string) []Preference {
	hoursByKey := make(map[string]float64)
	var totalHours float64

	for i := range games {
		g := &games[i]
		if !g.Owned() || g.HoursPlayed <= 0 {
			continue
		}
		key := dimension(g)
		if key == "" {
			key = unknownBucket
		}
		hoursByKey[key] += g.HoursPlayed
		totalHours += g.HoursPlayed
	}

	if totalHours == 0 {
		return nil
	}

	prefs := make([]Preference, 0, len(hoursByKey))
	for key, hours := range hoursByKey {
		prefs = append(prefs, Preference{
			Name:  key,
			Hours: hours,
			Share: hours / totalHours * 100,
		})
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].Hours != prefs[j].Hours {
			return prefs[i].Hours > prefs[j].Hours
		}
		return prefs[i].Name < prefs[j].Name
	})
	return prefs
}
