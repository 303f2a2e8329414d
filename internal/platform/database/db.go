package database

import (
	"fmt"
	"log"
	"os"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是全局的GORM数据库实例，供项目其他部分使用
var DB *gorm.DB

// InitDB 根据配置初始化数据库连接。
// driver为sqlite时使用本地文件库，为postgres时连接远端库，
// 两者对上层完全透明。
func InitDB(cfg config.DatabaseConfig) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent,
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Postgres.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Sqlite.Path)
	default:
		panic(fmt.Sprintf("不支持的数据库驱动: %s", cfg.Driver))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		fmt.Println("连接数据库失败", err)
		panic(err)
	}

	fmt.Println("数据库连接成功！")
}
