// Package testutil opens throwaway databases for repository and service
// tests. With TEST_POSTGRES_DSN set, tests run against that Postgres;
// otherwise each test gets its own in-memory SQLite database.
package testutil

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

var memCounter atomic.Int64

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// DB opens a migrated database for one test. Every table is empty.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	var dialector gorm.Dialector
	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		name := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", memCounter.Add(1))
		dialector = sqlite.Open(name)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		tb.Fatalf("unwrap test database: %v", err)
	}
	// A shared in-memory SQLite database disappears once its last
	// connection closes; one pinned connection keeps it alive.
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := gdb.AutoMigrate(
		&types.Product{},
		&types.MerchantProduct{},
		&types.ReferenceProcess{},
		&types.ProductMapping{},
		&types.Benchmark{},
		&types.EcoScore{},
		&types.EcoScoreHistory{},
		&types.EcoAchievement{},
	); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}

	return gdb
}

// Tx wraps a test in a transaction that is rolled back on cleanup, so
// Postgres-backed runs leave no residue.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin test transaction: %v", tx.Error)
	}
	tb.Cleanup(func() { _ = tx.Rollback() })
	return tx
}
