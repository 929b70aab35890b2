package database

import (
	"Patchwork/config"
	"Patchwork/models"
	"Patchwork/pkg/log"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接, 连接池由 database/sql 管理
func NewDB(conf *config.Config) (*gorm.DB, error) {
	gormConf := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gormConf)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.L.Info("connect database success",
		zap.String("host", conf.MySQL.Host),
		zap.String("database", conf.MySQL.Database),
	)
	return db, nil
}

// Migrate 建表 Image / Day / User
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
