package insight

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
	"github.com/gin-gonic/gin"
)

const maxMoodWeeks = 52

// insightsResponse 是洞察总览接口的响应结构
type insightsResponse struct {
	HiddenGems      []HiddenGem      `json:"hiddenGems"`
	RegretPurchases []RegretPurchase `json:"regretPurchases"`
	ShelfWarmers    []ShelfWarmer    `json:"shelfWarmers"`
	Platforms       []Preference     `json:"platforms"`
	Genres          []Preference     `json:"genres"`
	Discounts       DiscountReport   `json:"discounts"`
}

// GetInsights 返回全部榜单类洞察。
func GetInsights(c *gin.Context) {
	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}

	today := civil.Today()
	c.JSON(http.StatusOK, insightsResponse{
		HiddenGems:      FindHiddenGems(games),
		RegretPurchases: FindRegretPurchases(games, today),
		ShelfWarmers:    FindShelfWarmers(games, today),
		Platforms:       PlatformPreference(games),
		Genres:          GenrePreference(games),
		Discounts:       DiscountEffectiveness(games),
	})
}

// GetPersonality 返回游玩模式画像。
func GetPersonality(c *gin.Context) {
	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	c.JSON(http.StatusOK, Personality(games))
}

// GetMoodArc 返回最近N周的游玩强度曲线。
func GetMoodArc(c *gin.Context) {
	weeks := DefaultMoodWeeks
	if raw := c.Query("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxMoodWeeks {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("weeks必须是1到%d之间的整数", maxMoodWeeks)})
			return
		}
		weeks = parsed
	}

	games, err := game.LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	c.JSON(http.StatusOK, MoodArc(games, weeks, civil.Today()))
}
