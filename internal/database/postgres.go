package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/model"
)

func initPostgres() {
	dbConfig := &config.Conf.Database

	host := dbConfig.Host
	port := dbConfig.Port

	// 设置默认值
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 5432 // PostgreSQL默认端口
	}

	sslmode := "disable"
	if dbConfig.SSLMode {
		sslmode = "require"
	}

	// 构建PostgreSQL DSN连接字符串
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		host, dbConfig.Username, dbConfig.Password, dbConfig.Database, port, sslmode)

	// 配置GORM日志级别
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	switch dbConfig.LogLevel {
	case "silent":
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	case "error":
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	case "warn":
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	// 连接数据库
	var err error
	PostgresDB, err = gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 配置连接池
	sqlDB, err := PostgresDB.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	maxOpen := dbConfig.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 100
	}
	maxIdle := dbConfig.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 10
	}
	maxLifetime := time.Duration(dbConfig.MaxLifetime) * time.Second
	if maxLifetime == 0 {
		maxLifetime = time.Hour
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	// 初始化数据库表
	if err = model.InitTable(PostgresDB); err != nil {
		log.Fatalf("Failed to initialize database tables: %v", err)
	}

	log.Println("Database connection established successfully")
}
