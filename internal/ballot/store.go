package ballot

import (
	"encoding/json"
	"strings"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
)

// Store 是选票存储的统一接口。
// 两个实现(Redis热存储 / 本地数据库)在构造时按能力检查二选一，
// 上层只依赖接口。userID在每次调用中显式传入，
// 存储实现不持有任何“当前用户”状态。
type Store interface {
	// Cast 写入或覆盖一张选票。对同一类别重复投票是幂等的覆盖，
	// 不保留历史。
	Cast(userID string, b Ballot) error

	// Get 读取某个周期某个类别的选票，未投过时返回nil。
	Get(userID, periodKey, categoryID string) (*Ballot, error)

	// GetAllForPeriod 返回某个周期内已投的全部选票，
	// 以 周期键::类别ID 为键。
	GetAllForPeriod(userID, periodKey string) (map[string]Ballot, error)

	// Clear 删除某个周期内的全部选票。
	Clear(userID, periodKey string) error
}

// keySeparator 连接周期键和类别ID构成存储键
const keySeparator = "::"

// StorageKey 返回一张选票在映射中的存储键。
func StorageKey(periodKey, categoryID string) string {
	return periodKey + keySeparator + categoryID
}

// periodPrefix 返回某个周期全部存储键共享的前缀。
func periodPrefix(periodKey string) string {
	return periodKey + keySeparator
}

// ActiveStore 按能力检查返回当前应使用的选票存储：
// Redis健康时走热存储(写透到本地库)，否则直接走本地库。
func ActiveStore() Store {
	if database.IsRedisHealthy() {
		return redisStore{}
	}
	return localStore{}
}

// --- 投票映射上的纯操作 ---
// 读-改-写的“改”集中在这里，两个存储实现共用。

// decodeBallots 解析持久化的JSON映射。
// 损坏或为空的数据退化为空映射，而不是向调用方抛错：
// 这是一个尽力而为的仪表盘，不是账本系统。
func decodeBallots(data string) map[string]Ballot {
	ballots := make(map[string]Ballot)
	if data == "" {
		return ballots
	}
	if err := json.Unmarshal([]byte(data), &ballots); err != nil {
		return make(map[string]Ballot)
	}
	return ballots
}

// encodeBallots 序列化投票映射。
func encodeBallots(ballots map[string]Ballot) (string, error) {
	data, err := json.Marshal(ballots)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// applyCast 在映射上写入或覆盖一张选票。
func applyCast(ballots map[string]Ballot, b Ballot) {
	ballots[StorageKey(b.PeriodKey, b.CategoryID)] = b
}

// filterPeriod 取出某个周期的全部选票。
func filterPeriod(ballots map[string]Ballot, periodKey string) map[string]Ballot {
	result := make(map[string]Ballot)
	prefix := periodPrefix(periodKey)
	for key, b := range ballots {
		if strings.HasPrefix(key, prefix) {
			result[key] = b
		}
	}
	return result
}

// clearPeriod 删除某个周期的全部选票，返回是否有改动。
func clearPeriod(ballots map[string]Ballot, periodKey string) bool {
	changed := false
	prefix := periodPrefix(periodKey)
	for key := range ballots {
		if strings.HasPrefix(key, prefix) {
			delete(ballots, key)
			changed = true
		}
	}
	return changed
}
