package db

import (
	"fmt"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	openOnce sync.Once
	shared   *gorm.DB
	openErr  error
)

// Open returns the process-wide GORM handle, connecting on first use.
// Concurrent first callers share a single connection attempt.
func Open(dsn string) (*gorm.DB, error) {
	openOnce.Do(func() {
		shared, openErr = gorm.Open(mysql.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
		if openErr != nil {
			openErr = fmt.Errorf("connect mysql: %w", openErr)
		}
	})
	return shared, openErr
}

// Close tears down the underlying connection pool. Called on shutdown.
func Close() error {
	if shared == nil {
		return nil
	}
	sqlDB, err := shared.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
