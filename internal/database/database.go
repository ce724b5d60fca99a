package database

import (
	"gorm.io/gorm"
)

var (
	PostgresDB *gorm.DB
)

func InitDatabase() {
	initPostgres()
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}
