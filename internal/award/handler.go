package award

import (
	"net/http"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/gin-gonic/gin"
)

// GetAwards 计算并返回当前周期实例的奖项集合。
// 路径参数 periodType 取 week/month/quarter/year。
func GetAwards(c *gin.Context) {
	pt := stats.PeriodType(c.Param("periodType"))
	if !pt.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "周期类型必须是 week/month/quarter/year 之一"})
		return
	}

	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}

	set, err := Generate(games, pt, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成奖项失败"})
		return
	}
	c.JSON(http.StatusOK, set)
}
