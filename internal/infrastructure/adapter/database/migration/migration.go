package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned schema change
type step struct {
	version     string
	description string
	run         func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", description: "Base exchange schema", run: m.autoMigrateModels},
		{version: "1.1.0", description: "Order book and volume indexes", run: m.createIndexes},
	}
	return m
}

// MigrateAll performs all migrations not yet recorded in migration_versions
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	// Create migration version table first
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range m.steps {
		applied, err := m.isApplied(ctx, s.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version":     s.version,
			"description": s.description,
		})

		if err := s.run(ctx, m.db.WithContext(ctx)); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}

		if err := m.setVersion(ctx, s.version, s.description); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": s.version,
			})
			return err
		}
	}

	// Dialect-specific tuning is best effort and rerun on every upgrade
	if err := m.advancedIndexMgr.CreatePerformanceTweaks(ctx); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the most recently applied migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) isApplied(ctx context.Context, version string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Where("version = ?", version).Count(&count).Error
	return count > 0, err
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, description string) error {
	migrationVersion := model.MigrationVersion{
		Version:     version,
		Description: description,
		AppliedAt:   m.timeProvider.Now(),
		Details:     fmt.Sprintf("dialect=%s", m.db.Dialector.Name()),
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels creates tables, foreign keys and unique constraints
func (m *MigrationManager) autoMigrateModels(_ context.Context, db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	// Referenced tables come first so foreign keys resolve
	return db.AutoMigrate(
		&model.User{},
		&model.Cryptocurrency{},
		&model.Wallet{},
		&model.FiatBalance{},
		&model.Order{},
		&model.Transaction{},
	)
}

func (m *MigrationManager) createIndexes(ctx context.Context, _ *gorm.DB) error {
	return m.advancedIndexMgr.CreateAdvancedIndexes(ctx)
}
