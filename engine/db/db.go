// Package db persists per-cycle monitoring outcomes so player counts can be
// graphed over time. The store is optional; when no connection comes up the
// operations return ErrDisabled and the monitor runs without history.
package db

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db *gorm.DB

	// ErrDisabled reports that no database connection was established at
	// startup.
	ErrDisabled = errors.New("history store disabled")
)

func dialector(connectURL string) gorm.Dialector {
	if strings.HasPrefix(connectURL, "sqlite:") {
		split := strings.SplitN(connectURL, ":", 2)
		filename := split[1]
		return sqlite.Open(fmt.Sprintf("%s?mode=rwc", filename))
	} else {
		return postgres.Open(connectURL)
	}
}

func Connect(connectURL string) error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			IgnoreRecordNotFoundError: true, // Ignore ErrRecordNotFound error for logger
		},
	)

	conn, err := gorm.Open(dialector(connectURL), &gorm.Config{
		TranslateError: true,
		Logger:         newLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect database %s: %w", connectURL, err)
	}

	if err := conn.AutoMigrate(&CycleSchema{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	db = conn
	slog.Info("Connected to DB")
	return nil
}

// Enabled reports whether a connection was established.
func Enabled() bool {
	return db != nil
}
