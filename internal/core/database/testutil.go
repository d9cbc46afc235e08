package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// NewMemory 打开一个命名的内存 SQLite 库（测试 / 本地体验用），同名共享、单连接。
func NewMemory(name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(name)
	return NewGorm(Opts{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
}
