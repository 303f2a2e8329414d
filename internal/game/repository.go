package game

import (
	"errors"
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"gorm.io/gorm"
)

// ErrNotFound 表示指定的游戏不存在。
var ErrNotFound = errors.New("游戏不存在")

// libraryChangedHook 在游戏库发生任何写入后被调用。
// 由startup在初始化时注入，用于让派生数据缓存失效，
// 避免本包反向依赖统计模块。
var libraryChangedHook func()

// SetLibraryChangedHook 注册游戏库变更后的回调。
func SetLibraryChangedHook(hook func()) {
	libraryChangedHook = hook
}

func notifyLibraryChanged() {
	if libraryChangedHook != nil {
		libraryChangedHook()
	}
}

// LoadLibrary 从数据库一次性加载完整的游戏库(含全部游玩记录)。
// 统计、洞察和提名引擎都在这份完整的内存数组上做纯计算，
// 不做增量查询，也没有分页契约。
func LoadLibrary() ([]Game, error) {
	var games []Game
	if err := database.DB.Preload("PlayLogs").Order("id asc").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("无法从数据库加载游戏库: %w", err)
	}
	return games, nil
}

// GetByGameID 按业务主键查询单个游戏。
func GetByGameID(gameID string) (*Game, error) {
	var g Game
	err := database.DB.Preload("PlayLogs").Where("game_id = ?", gameID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("无法查询游戏 %s: %w", gameID, err)
	}
	return &g, nil
}

// CreateGame 写入一条新的游戏记录。
func CreateGame(g *Game) error {
	if err := database.DB.Create(g).Error; err != nil {
		return fmt.Errorf("无法创建游戏记录: %w", err)
	}
	notifyLibraryChanged()
	return nil
}

// SaveGame 保存对一条游戏记录的修改。
func SaveGame(g *Game) error {
	if err := database.DB.Save(g).Error; err != nil {
		return fmt.Errorf("无法保存游戏记录 %s: %w", g.GameID, err)
	}
	notifyLibraryChanged()
	return nil
}

// DeleteGame 按业务主键删除游戏及其全部游玩记录。
func DeleteGame(gameID string) error {
	g, err := GetByGameID(gameID)
	if err != nil {
		return err
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", g.ID).Delete(&PlayLog{}).Error; err != nil {
			return fmt.Errorf("无法删除游玩记录: %w", err)
		}
		if err := tx.Delete(g).Error; err != nil {
			return fmt.Errorf("无法删除游戏记录: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	notifyLibraryChanged()
	return nil
}

// AppendPlayLog 为游戏追加一条游玩记录，并同步累加游戏的总时长。
// 两个写入在同一事务中完成，避免时长与记录不一致。
func AppendPlayLog(gameID string, entry PlayLog) (*Game, error) {
	g, err := GetByGameID(gameID)
	if err != nil {
		return nil, err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		entry.GameID = g.ID
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("无法写入游玩记录: %w", err)
		}
		g.HoursPlayed += entry.Hours
		if g.Status == StatusNotStarted {
			g.Status = StatusInProgress
			if g.StartDate == nil {
				d := entry.Date
				g.StartDate = &d
			}
		}
		if err := tx.Save(g).Error; err != nil {
			return fmt.Errorf("无法更新游戏时长: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.PlayLogs = append(g.PlayLogs, entry)
	notifyLibraryChanged()
	return g, nil
}
