// Package database provides candle storage connections for backtest data
// sources, supporting sqlite3 file databases and postgres.
package database

import (
	"database/sql"
	"fmt"

	// import sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	// import postgres driver
	_ "github.com/lib/pq"
)

// Connect opens a connection described by the config and returns an
// instance ready for repository use
func Connect(cfg *Config) (*Instance, error) {
	if cfg == nil {
		return nil, ErrNoDatabaseProvided
	}
	if cfg.Database == "" {
		return nil, ErrNoDatabaseProvided
	}

	var dbConn *sql.DB
	var err error
	switch cfg.Driver {
	case DBSQLite:
		dbConn, err = sql.Open(DBSQLite, cfg.Database)
		if err != nil {
			return nil, err
		}
		dbConn.SetMaxOpenConns(1)
	case DBPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.Database,
			cfg.SSLMode)
		dbConn, err = sql.Open(DBPostgres, dsn)
		if err != nil {
			return nil, err
		}
		if err = dbConn.Ping(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDriver, cfg.Driver)
	}

	return &Instance{SQL: dbConn, config: cfg}, nil
}

// GetConfig safely returns the config the instance connected with
func (i *Instance) GetConfig() *Config {
	if i == nil {
		return nil
	}
	i.m.RLock()
	defer i.m.RUnlock()
	return i.config
}

// Ping pings the database
func (i *Instance) Ping() error {
	if i == nil {
		return ErrNilInstance
	}
	i.m.RLock()
	defer i.m.RUnlock()
	return i.SQL.Ping()
}

// CloseConnection safely disconnects the instance
func (i *Instance) CloseConnection() error {
	if i == nil {
		return ErrNilInstance
	}
	i.m.Lock()
	defer i.m.Unlock()
	return i.SQL.Close()
}
