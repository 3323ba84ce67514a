package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cogscreen-go/internal/config"
	logging "cogscreen-go/internal/logging"
	"cogscreen-go/internal/models"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = gormlogger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.AssessmentRecord{},
		&models.CategoryScoreRecord{},
		&models.ResponseRecord{},
		&models.BehaviorRecord{},
		&models.EmotionSampleRecord{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	historyIndex := `CREATE INDEX IF NOT EXISTS idx_assessments_user_completed ON assessment_records (user_id, completed_at DESC);`
	if err := DB.Exec(historyIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on assessment records", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
