package persistence

import (
	"context"
	"database/sql"

	"gorm.io/gorm/logger"

	"threadline/internal/config"
	"threadline/internal/core"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DB struct {
	db     *gorm.DB
	Config *config.Config
}

// Open wraps an already configured dialector. Tests use it with an
// in-memory sqlite dialector; production goes through Init.
func Open(dialector gorm.Dialector) (*DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &DB{db: gormDB}, nil
}

func (db *DB) Init(_ context.Context) error {
	gormDB, err := gorm.Open(postgres.Open(db.Config.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	db.db = gormDB

	return nil
}

func (db *DB) Model(a any) *gorm.DB {
	return db.db.Model(a)
}

// Commit runs all intents in one transaction. Either every intent's write
// persists or none does.
func (db *DB) Commit(ctx context.Context, intents ...core.Intent) error {
	return db.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, intent := range intents {
			if err := intent(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *DB) EstimatedCount(tableName string) (int64, error) {
	var count int64
	return count, db.db.Raw(
		`SELECT reltuples::bigint AS count
				FROM pg_class
				WHERE relname = ?`, tableName,
	).Scan(&count).Error
}

func (db *DB) AutoMigrate(models ...any) error {
	return db.db.AutoMigrate(models...)
}

func (db *DB) DB() (*sql.DB, error) {
	return db.db.DB()
}

func (db *DB) Shutdown(_ context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
