package game

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameRequestBody 定义了创建/更新游戏时请求体的JSON结构
type GameRequestBody struct {
	Name          string      `json:"name" binding:"required"`
	Price         float64     `json:"price" binding:"gte=0"`
	OriginalPrice *float64    `json:"originalPrice"`
	Rating        float64     `json:"rating" binding:"gte=0,lte=10"`
	Status        Status      `json:"status" binding:"required"`
	AcquiredFree  bool        `json:"acquiredFree"`
	PurchaseDate  *civil.Date `json:"purchaseDate"`
	StartDate     *civil.Date `json:"startDate"`
	EndDate       *civil.Date `json:"endDate"`
	Platform      string      `json:"platform"`
	Genre         string      `json:"genre"`
	Franchise     string      `json:"franchise"`
}

// PlayLogRequestBody 定义了追加游玩记录时请求体的JSON结构
type PlayLogRequestBody struct {
	Date  civil.Date `json:"date" binding:"required"`
	Hours float64    `json:"hours" binding:"required,gt=0"`
	Note  string     `json:"note"`
}

func (b *GameRequestBody) apply(g *Game) {
	g.Name = b.Name
	g.Price = b.Price
	g.OriginalPrice = b.OriginalPrice
	g.Rating = b.Rating
	g.Status = b.Status
	g.AcquiredFree = b.AcquiredFree
	g.PurchaseDate = b.PurchaseDate
	g.StartDate = b.StartDate
	g.EndDate = b.EndDate
	g.Platform = b.Platform
	g.Genre = b.Genre
	g.Franchise = b.Franchise
}

// ListLibrary 返回完整的游戏库。
func ListLibrary(c *gin.Context) {
	games, err := LoadLibrary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载游戏库失败"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame 按ID返回单个游戏。
func GetGame(c *gin.Context) {
	g, err := GetByGameID(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %s 的游戏", c.Param("id"))})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// CreateGameHandler 创建一条新的游戏记录。
func CreateGameHandler(c *gin.Context) {
	var body GameRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}
	if !body.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("无效的游戏状态: %s", body.Status)})
		return
	}

	newUUID, err := uuid.NewV7()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法生成游戏ID"})
		return
	}

	g := Game{GameID: newUUID.String()}
	body.apply(&g)
	if err := CreateGame(&g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建游戏失败"})
		return
	}
	c.JSON(http.StatusCreated, g)
}

// UpdateGameHandler 更新一条已有的游戏记录。
func UpdateGameHandler(c *gin.Context) {
	var body GameRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}
	if !body.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("无效的游戏状态: %s", body.Status)})
		return
	}

	g, err := GetByGameID(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %s 的游戏", c.Param("id"))})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
		return
	}

	body.apply(g)
	if err := SaveGame(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存游戏失败"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGameHandler 删除一条游戏记录。
func DeleteGameHandler(c *gin.Context) {
	err := DeleteGame(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %s 的游戏", c.Param("id"))})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除游戏失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// AddPlayLogHandler 为游戏追加一条游玩记录。
func AddPlayLogHandler(c *gin.Context) {
	var body PlayLogRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	g, err := AppendPlayLog(c.Param("id"), PlayLog{
		Date:  body.Date,
		Hours: body.Hours,
		Note:  body.Note,
	})
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %s 的游戏", c.Param("id"))})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入游玩记录失败"})
		return
	}
	c.JSON(http.StatusCreated, g)
}
