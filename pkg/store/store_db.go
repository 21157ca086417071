package store

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ListRecord represents one saved list.
type ListRecord struct {
	Name       string `gorm:"primaryKey"`
	SnapshotID string `gorm:"index"`
	Size       int
	SavedAt    time.Time
}

// ElementRecord stores one element of a saved list at its position from the
// front.
type ElementRecord struct {
	ListName string `gorm:"primaryKey;index"`
	Position int    `gorm:"primaryKey"`
	Value    string
}

// getMigrations returns the list of migrations for the snapshot database.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610160001",
			Migrate: func(tx *gorm.DB) error {
				// Create initial schema.
				return tx.AutoMigrate(
					&ListRecord{},
					&ElementRecord{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				// Drop all tables.
				return tx.Migrator().DropTable(
					&ElementRecord{},
					&ListRecord{},
				)
			},
		},
	}
}

// Migrate performs database migrations using gormigrate.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration checks if the database schema is up to date.
func CheckMigration(db *gorm.DB) (bool, error) {
	// If the migrations table doesn't exist yet the query fails, which means
	// no migrations have been run. Use a silent logger to avoid spurious
	// warnings on fresh databases.
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error

	if err != nil {
		return false, nil
	}

	migrations := getMigrations()
	if len(migrations) == 0 {
		return true, nil
	}

	// The last migration in our list should match the last applied migration.
	expectedLastID := migrations[len(migrations)-1].ID
	return lastMigration == expectedLastID, nil
}
