package user

import (
	"time"

	"gorm.io/gorm"
)

// User 定义了用户在数据库中的持久化模型。
// 这是一个单机仪表盘，用户只是一个浏览器身份，
// 用来把选票归属到具体的Cookie上。
type User struct {
	// UUID 是用户的主键，来自客户端Cookie。
	UUID string `gorm:"primarykey;type:varchar(36)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
