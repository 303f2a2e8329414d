package ballot

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/SlpAus/game-library-insights-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// CastRequestBody 定义投票请求的结构
type CastRequestBody struct {
	PeriodType string `json:"periodType" binding:"required"`
	PeriodKey  string `json:"periodKey" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
	GameID     string `json:"gameId" binding:"required"`
	GameName   string `json:"gameName"`
}

// currentUserID 从上下文取出中间件注入的用户ID。
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(user.UserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无法识别用户身份"})
		return "", false
	}
	return userID, true
}

// CastBallotHandler 处理投票请求，同一类别重复投票覆盖旧票。
func CastBallotHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var body CastRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体: " + err.Error()})
		return
	}
	if !stats.PeriodType(body.PeriodType).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的周期类型: " + body.PeriodType})
		return
	}

	// 第一次投票时把临时用户正式持久化
	if err := user.ActivateUser(userID); err != nil {
		fmt.Printf("激活用户 %s 失败: %v\n", userID, err)
	}

	b := Ballot{
		PeriodKey:  body.PeriodKey,
		PeriodType: body.PeriodType,
		CategoryID: body.CategoryID,
		GameID:     body.GameID,
		GameName:   body.GameName,
		VotedAt:    time.Now(),
	}
	if err := ActiveStore().Cast(userID, b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存选票失败"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBallotsHandler 返回指定周期类型的当前周期实例中已投的全部选票。
func GetBallotsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pt := stats.PeriodType(c.Param("periodType"))
	if !pt.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "周期类型必须是 week/month/quarter/year 之一"})
		return
	}
	periodKey := stats.PeriodKey(pt, time.Now())

	ballots, err := ActiveStore().GetAllForPeriod(userID, periodKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取选票失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"periodKey": periodKey, "ballots": ballots})
}

// ClearBallotsHandler 清空某个周期内的全部选票。
func ClearBallotsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	periodKey := c.Param("periodKey")
	if periodKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少periodKey参数"})
		return
	}

	if err := ActiveStore().Clear(userID, periodKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "清除选票失败"})
		return
	}
	c.Status(http.StatusNoContent)
}
