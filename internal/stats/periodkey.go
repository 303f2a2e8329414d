package stats

import (
	"fmt"
	"time"

	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// PeriodType 是评奖周期的类型
type PeriodType string

const (
	PeriodWeek    PeriodType = "week"
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

// IsValid 报告周期类型是否为已定义的枚举值。
func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// PeriodKey 返回t所在周期实例的规范字符串键。
// 该键是评奖引擎和选票存储之间的连接键：
//
//	week-<ISO年>-<两位ISO周>
//	month-<年>-<两位月>
//	quarter-<年>-Q<季>
//	year-<年>
func PeriodKey(pt PeriodType, t time.Time) string {
	switch pt {
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("week-%d-%02d", year, week)
	case PeriodMonth:
		return fmt.Sprintf("month-%d-%02d", t.Year(), int(t.Month()))
	case PeriodQuarter:
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("quarter-%d-Q%d", t.Year(), quarter)
	case PeriodYear:
		return fmt.Sprintf("year-%d", t.Year())
	}
	return ""
}

// PeriodRange 返回t所在周期实例的 [start, end] 闭日期区间。
// 周采用ISO口径，从周一到周日。
func PeriodRange(pt PeriodType, t time.Time) (start, end civil.Date) {
	d := civil.DateOf(t)
	switch pt {
	case PeriodWeek:
		// time.Weekday以周日为0，换算成周一偏移
		offset := (int(t.Weekday()) + 6) % 7
		start = d.AddDays(-offset)
		end = start.AddDays(6)
	case PeriodMonth:
		start = civil.Date{Year: d.Year, Month: d.Month, Day: 1}
		end = start.AddDays(daysInMonth(d.Year, d.Month) - 1)
	case PeriodQuarter:
		firstMonth := time.Month((int(d.Month)-1)/3*3 + 1)
		start = civil.Date{Year: d.Year, Month: firstMonth, Day: 1}
		lastMonth := firstMonth + 2
		end = civil.Date{Year: d.Year, Month: lastMonth, Day: daysInMonth(d.Year, lastMonth)}
	case PeriodYear:
		start = civil.Date{Year: d.Year, Month: time.January, Day: 1}
		end = civil.Date{Year: d.Year, Month: time.December, Day: 31}
	}
	return start, end
}

func daysInMonth(year int, month time.Month) int {
	// 下月第0天即本月最后一天
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
