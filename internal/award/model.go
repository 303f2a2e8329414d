package award

import (
	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// Nominee 是一个奖项的候选游戏，附带一条用于展示的数据说明
type Nominee struct {
	GameID   string `json:"id"`
	Name     string `json:"name"`
	StatLine string `json:"statLine"`

	// Score 只用于确定获奖者的排序，不属于展示数据
	Score float64 `json:"-"`
}

// Award 是一个周期内单个类别的评奖结果
type Award struct {
	CategoryID string    `json:"categoryId"`
	Title      string    `json:"title"`
	Nominees   []Nominee `json:"nominees"`
	Winner     Nominee   `json:"winner"`
}

// AwardSet 是一个周期实例的完整奖项集合。
// 候选数量不足的类别被整体省略，而不是渲染一个残缺的奖项。
type AwardSet struct {
	PeriodType stats.PeriodType `json:"periodType"`
	PeriodKey  string           `json:"periodKey"`
	Start      civil.Date       `json:"start"`
	End        civil.Date       `json:"end"`
	Awards     []Award          `json:"awards"`
}
