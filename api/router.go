package api

import (
	"github.com/SlpAus/game-library-insights-backend/internal/award"
	"github.com/SlpAus/game-library-insights-backend/internal/ballot"
	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/insight"
	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/SlpAus/game-library-insights-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 游戏库相关的路由组
		library := api.Group("/library")
		{
			library.GET("", game.ListLibrary)
			library.POST("", game.CreateGameHandler)
			library.GET("/:id", game.GetGame)
			library.PUT("/:id", game.UpdateGameHandler)
			library.DELETE("/:id", game.DeleteGameHandler)
			library.POST("/:id/logs", game.AddPlayLogHandler)
		}

		// 统计相关的路由组
		statsRoutes := api.Group("/stats")
		{
			statsRoutes.GET("/summary", stats.GetSummary)
			statsRoutes.GET("/monthly", stats.GetMonthly)
			statsRoutes.GET("/spending", stats.GetSpending)
			statsRoutes.GET("/period", stats.GetPeriod)
			statsRoutes.GET("/streak", stats.GetStreak)
		}

		// 洞察相关的路由
		api.GET("/insights", insight.GetInsights)
		api.GET("/insights/personality", insight.GetPersonality)
		api.GET("/insights/mood", insight.GetMoodArc)

		// 颁奖相关的路由组，投票操作需要用户身份
		awards := api.Group("/awards")
		{
			awards.GET("/:periodType", award.GetAwards)

			withUser := awards.Group("", user.EnsureUserCookieMiddleware(), user.LoadUserMiddleware())
			{
				withUser.POST("/vote", ballot.CastBallotHandler)
				withUser.GET("/:periodType/ballots", ballot.GetBallotsHandler)
				withUser.DELETE("/ballots/:periodKey", ballot.ClearBallotsHandler)
			}
		}
	}
}
