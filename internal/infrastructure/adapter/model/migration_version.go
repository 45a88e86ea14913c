package model

import (
	"time"
)

// MigrationVersion records one applied schema or seed step
type MigrationVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(255)"`
	AppliedAt   time.Time `gorm:"not null"`
	Details     string    `gorm:"type:text;null"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
