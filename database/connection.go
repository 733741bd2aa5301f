// backend/database/connection.go
package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *sqlx.DB

// InitDB opens the SQLite database at the given path, creating the parent
// directory if needed. The pool is capped at one connection: the load
// pipeline is single-threaded and SQLite allows one writer anyway.
func InitDB(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	var err error
	DB, err = sqlx.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	DB.SetMaxOpenConns(1)

	if err := DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database at %s: %w", path, err)
	}

	log.Printf("Database: connected to %s", path)
	return nil
}

// CloseDB closes the database handle. Typically called on shutdown.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database: connection closed.")
	}
}
