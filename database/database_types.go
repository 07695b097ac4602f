package database

import (
	"database/sql"
	"errors"
	"sync"
)

// Supported database drivers
const (
	DBSQLite   = "sqlite3"
	DBPostgres = "postgres"
)

var (
	// ErrNoDatabaseProvided error to display when no database path or name
	// is provided
	ErrNoDatabaseProvided = errors.New("no database provided")
	// ErrUnsupportedDriver error to display when a unsupported driver is
	// configured
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrNilInstance returned when an instance method is called on nil
	ErrNilInstance = errors.New("nil database instance received")
)

// Config holds connection details for candle storage
type Config struct {
	Driver string `json:"driver"`
	// Database is the file path for sqlite3 or the database name for
	// postgres
	Database string `json:"database"`
	Host     string `json:"host,omitempty"`
	Port     uint16 `json:"port,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"sslmode,omitempty"`
}

// Instance holds a live connection and its originating config
type Instance struct {
	SQL    *sql.DB
	config *Config
	m      sync.RWMutex
}
