package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/game-library-insights-backend/api"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/config"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/health"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/shutdown"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/startup"
	"github.com/SlpAus/game-library-insights-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env文件是可选的，容器环境直接注入环境变量
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	gin.SetMode(cfg.Server.Mode)
	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	// 阻塞式获取初始Run ID，Redis不可用时以降级模式继续
	health.InitializeRunID()

	// 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 创建两阶段停机所需的生命周期管理器
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	// 异步启动后台的持续健康检查器
	healthHandle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("注册健康检查器失败: %v", err))
	}
	go health.StartRedisHealthCheck(healthHandle)

	r := gin.Default()

	allowedOrigins := cfg.Server.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(fmt.Sprintf("服务器启动失败: %v", err))
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
