package civil

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date 表示一个不带时区的日历日期 (年/月/日)。
// 游玩记录和购买日期只关心“哪一天”，使用time.Time会把日期当作UTC午夜的
// 时间戳处理，跨时区时会偏移到错误的一天，因此单独建模。
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// layout 是日期的标准字符串格式
const layout = "2006-01-02"

// DateOf 提取一个time.Time在其所在时区的日历日期。
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today 返回本地时区的当前日期。
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate 解析 "YYYY-MM-DD" 格式的字符串。
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("无法解析日期 %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String 返回 "YYYY-MM-DD" 格式的字符串。
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero 报告日期是否为零值。
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// midnightUTC 将日期转换为UTC午夜的time.Time，仅用于内部的日期运算。
// 固定使用UTC可以保证加减天数时不受夏令时影响。
func (d Date) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays 返回向后(或向前，n为负)移动n天的日期。
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnightUTC().AddDate(0, 0, n))
}

// Weekday 返回日期是星期几。
func (d Date) Weekday() time.Weekday {
	return d.midnightUTC().Weekday()
}

// DaysSince 返回 d - o 的天数差，可以为负。
func (d Date) DaysSince(o Date) int {
	return int(d.midnightUTC().Sub(o.midnightUTC()) / (24 * time.Hour))
}

// Before 报告 d 是否早于 o。
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After 报告 d 是否晚于 o。
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Equal 报告两个日期是否相同。
func (d Date) Equal(o Date) bool {
	return d == o
}

// MonthKey 返回日期所在月份的 "YYYY-MM" 键。
// 零填充保证了按字典序排序即为按时间排序。
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// --- JSON ---

// MarshalJSON 将日期序列化为 "YYYY-MM-DD" 字符串。
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 从 "YYYY-MM-DD" 字符串反序列化日期。
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("无效的日期JSON: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// --- GORM / database/sql ---

// Value 实现driver.Valuer，日期在数据库中存储为 "YYYY-MM-DD" 字符串。
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan 实现sql.Scanner。SQLite中date列可能以字符串或time.Time返回，
// 两种形式都需要兼容。
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("无法将 %T 扫描为civil.Date", value)
	}
}

// GormDataType 告知GORM该类型的列类型。
func (Date) GormDataType() string {
	return "date"
}
