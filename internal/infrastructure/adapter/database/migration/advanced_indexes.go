package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"gorm.io/gorm"
)

const dialectPostgres = "postgres"

type indexDef struct {
	name string
	sql  string
	// postgresOnly marks statements sqlite cannot parse
	postgresOnly bool
}

var exchangeIndexes = []indexDef{
	{
		// Order book lookups: pending orders of one side for one crypto, sorted by price
		name: "idx_orders_book",
		sql:  `CREATE INDEX IF NOT EXISTS idx_orders_book ON orders (crypto_id, type, status, price)`,
	},
	{
		name: "idx_orders_pending",
		sql:  `CREATE INDEX IF NOT EXISTS idx_orders_pending ON orders (crypto_id, price) WHERE status = 'PENDING'`,
	},
	{
		// Volume window aggregation
		name: "idx_transactions_crypto_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_crypto_created ON transactions (crypto_id, created_at)`,
	},
	{
		name: "idx_wallets_crypto_balance",
		sql:  `CREATE INDEX IF NOT EXISTS idx_wallets_crypto_balance ON wallets (crypto_id, balance DESC)`,
	},
	{
		name:         "idx_transactions_created_at_brin",
		sql:          `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
		postgresOnly: true,
	},
}

// AdvancedIndexManager manages composite, partial and dialect-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == dialectPostgres
}

// CreateAdvancedIndexes creates the indexes backing the order book and volume queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced indexes", map[string]any{
		"dialect": m.db.Dialector.Name(),
	})

	created := 0
	for _, idx := range exchangeIndexes {
		if idx.postgresOnly && !m.isPostgres() {
			continue
		}
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
		created++
	}

	m.logger.Info("Advanced indexes created successfully", map[string]any{
		"count": created,
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks; other dialects are skipped
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	if !m.isPostgres() {
		return nil
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Orders are updated in place when their status changes
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE orders SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for orders table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN crypto_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for crypto_id", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
