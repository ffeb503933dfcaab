package db

import (
	"fmt"

	"github.com/yungbote/neurobridge-lms/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// EnsureSearchIndexes adds lower-cased indexes used by course search and
// case-insensitive email and organization name lookups. Postgres only.
func EnsureSearchIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_course_title_lower ON course (LOWER(title));`).Error; err != nil {
		return fmt.Errorf("create idx_course_title_lower: %w", err)
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_email_lower ON "user" (LOWER(email));`).Error; err != nil {
		return fmt.Errorf("create idx_user_email_lower: %w", err)
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_organization_name_lower ON organization (LOWER(name));`).Error; err != nil {
		return fmt.Errorf("create idx_organization_name_lower: %w", err)
	}
	return nil
}
