package insight

import (
	"github.com/SlpAus/game-library-insights-backend/internal/game"
)

// --- 画像子指标的评级阈值 ---
// 每个子指标按固定阈值给出字母等级，等级折算为4/3/2/1分后
// 按固定权重加权，得到整体评级。阈值和权重都不从数据推导。
const (
	completionRateA = 60.0
	completionRateB = 40.0
	completionRateC = 20.0

	genreBreadthA = 8
	genreBreadthB = 5
	genreBreadthC = 3

	avgSessionA = 3.0
	avgSessionB = 2.0
	avgSessionC = 1.0

	abandonRateA = 10.0
	abandonRateB = 25.0
	abandonRateC = 40.0
)

// 整体评级的加权系数
const (
	weightCompletion   = 0.4
	weightGenreBreadth = 0.2
	weightAvgSession   = 0.2
	weightAbandonment  = 0.2
)

// 人格原型的判定阈值
const (
	completionistRate = 60.0
	deepDiverSession  = 3.0
	samplerGenres     = 8
	dropperRate       = 40.0
)

var gradePoints = map[string]float64{"A": 4, "B": 3, "C": 2, "D": 1}

// Personality 从游玩模式的固定比率中归纳画像：
// 通关率、题材广度、平均会话时长、弃坑率，各给一个字母等级，
// 再加权合成整体等级，并判定一个人格原型。
func Personality(games []game.Game) PersonalityReport {
	var owned, completed, abandoned int
	var totalHours float64
	var sessions int
	genres := make(map[string]struct{})

	for i := range games {
		g := &games[i]
		if !g.Owned() {
			continue
		}
		owned++
		switch g.Status {
		case game.StatusCompleted:
			completed++
		case game.StatusAbandoned:
			abandoned++
		}
		if g.HoursPlayed > 0 && g.Genre != "" {
			genres[g.Genre] = struct{}{}
		}
		totalHours += g.HoursPlayed
		sessions += len(g.PlayLogs)
	}

	report := PersonalityReport{Archetype: "Casual Player"}
	if owned == 0 {
		report.OverallGrade = "D"
		return report
	}

	completionRate := float64(completed) / float64(owned) * 100
	abandonRate := float64(abandoned) / float64(owned) * 100
	genreCount := len(genres)
	var avgSession float64
	if sessions > 0 {
		avgSession = totalHours / float64(sessions)
	}

	completionGrade := gradeByDescending(completionRate, completionRateA, completionRateB, completionRateC)
	breadthGrade := gradeByDescending(float64(genreCount), genreBreadthA, genreBreadthB, genreBreadthC)
	sessionGrade := gradeByDescending(avgSession, avgSessionA, avgSessionB, avgSessionC)
	abandonGrade := gradeByAscending(abandonRate, abandonRateA, abandonRateB, abandonRateC)

	report.Metrics = []GradedMetric{
		{Name: "completionRate", Value: completionRate, Grade: completionGrade},
		{Name: "genreBreadth", Value: float64(genreCount), Grade: breadthGrade},
		{Name: "avgSessionLength", Value: avgSession, Grade: sessionGrade},
		{Name: "abandonRate", Value: abandonRate, Grade: abandonGrade},
	}

	report.OverallScore = gradePoints[completionGrade]*weightCompletion +
		gradePoints[breadthGrade]*weightGenreBreadth +
		gradePoints[sessionGrade]*weightAvgSession +
		gradePoints[abandonGrade]*weightAbandonment
	switch {
	case report.OverallScore >= 3.5:
		report.OverallGrade = "A"
	case report.OverallScore >= 2.5:
		report.OverallGrade = "B"
	case report.OverallScore >= 1.5:
		report.OverallGrade = "C"
	default:
		report.OverallGrade = "D"
	}

	// 原型判定按优先级自上而下匹配第一条
	switch {
	case completionRate >= completionistRate:
		report.Archetype = "Completionist"
	case avgSession >= deepDiverSession:
		report.Archetype = "Deep Diver"
	case genreCount >= samplerGenres:
		report.Archetype = "Sampler"
	case abandonRate >= dropperRate:
		report.Archetype = "Serial Dropper"
	default:
		report.Archetype = "Balanced Player"
	}

	return report
}

// gradeByDescending 值越大越好的指标评级。
func gradeByDescending(value, a, b, c float64) string {
	switch {
	case value >= a:
		return "A"
	case value >= b:
		return "B"
	case value >= c:
		return "C"
	default:
		return "D"
	}
}

// gradeByAscending 值越小越好的指标评级。
func gradeByAscending(value, a, b, c float64) string {
	switch {
	case value <= a:
		return "A"
	case value <= b:
		return "B"
	case value <= c:
		return "C"
	default:
		return "D"
	}
}
