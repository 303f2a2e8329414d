package stats

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
	"github.com/gin-gonic/gin"
)

// 滚动窗口天数的默认值和上限
const (
	defaultPeriodDays = 7
	maxPeriodDays     = 365
)

// GetSummary 返回游戏库的聚合摘要。
// Redis健康时优先读缓存，未命中则重算并异步回填。
func GetSummary(c *gin.Context) {
	if database.IsRedisHealthy() {
		if cached, err := GetSummaryCache(); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	summary := BuildSummary(games)

	if database.IsRedisHealthy() {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("严重错误: 缓存摘要的goroutine发生panic: %v\n", r)
				}
			}()
			_ = SetSummaryCache(&summary, SummaryCacheTTL)
		}()
	}

	c.JSON(http.StatusOK, summary)
}

// GetMonthly 返回按月分桶的时长/消费序列。
func GetMonthly(c *gin.Context) {
	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	c.JSON(http.StatusOK, MonthlyActivity(games))
}

// GetSpending 返回按月累计的消费曲线。
func GetSpending(c *gin.Context) {
	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	c.JSON(http.StatusOK, CumulativeSpending(games))
}

// periodComparisonResponse 是滚动窗口统计接口的响应结构
type periodComparisonResponse struct {
	Current  PeriodStats `json:"current"`
	Previous PeriodStats `json:"previous"`
}

// GetPeriod 返回最近N天滚动窗口的统计，并附带上一窗口用于对比。
func GetPeriod(c *gin.Context) {
	days := defaultPeriodDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxPeriodDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("days必须是1到%d之间的整数", maxPeriodDays)})
			return
		}
		days = parsed
	}

	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}

	current, previous := ComparePeriods(games, days, civil.Today())
	c.JSON(http.StatusOK, periodComparisonResponse{Current: current, Previous: previous})
}

// GetStreak 返回连续游玩天数统计。
func GetStreak(c *gin.Context) {
	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	c.JSON(http.StatusOK, Streaks(games, civil.Today()))
}
