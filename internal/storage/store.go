// Package storage opens the relational store backing the booking API.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Store is an open database handle together with the SQL dialect it speaks.
type Store struct {
	DB      *sql.DB
	Dialect repository.Dialect

	pool *pgxpool.Pool
}

// Open connects to the configured driver and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dialect, err := repository.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	var store *Store
	switch dialect.Name() {
	case repository.Postgres.Name():
		store, err = openPostgres(ctx, cfg)
	case repository.MySQL.Name():
		store, err = openMySQL(cfg)
	default:
		store, err = openSQLite(cfg)
	}
	if err != nil {
		return nil, err
	}
	store.Dialect = dialect

	if err := store.DB.PingContext(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect.Name(), err)
	}
	return store, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return &Store{DB: stdlib.OpenDBFromPool(pool), pool: pool}, nil
}

func openMySQL(cfg config.DatabaseConfig) (*Store, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true

	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetConnMaxLifetime(time.Hour)
	return &Store{DB: db}, nil
}

// openSQLite is meant for local runs; writes are serialised on one connection.
func openSQLite(cfg config.DatabaseConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = cfg.Name + ".db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %q: %w", pragma, err)
		}
	}
	return &Store{DB: db}, nil
}

// Close releases the database handle and, for postgres, the underlying pool.
func (s *Store) Close() error {
	err := s.DB.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}
