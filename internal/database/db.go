package database

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/ice-cream-parlor/internal/config"
)

// DSN builds the driver connection string from the application config.
func DSN(cfg config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	if cfg.DBSSL {
		// TLS without certificate verification, matching managed MySQL setups
		// that hand out self-signed certificates.
		mc.TLSConfig = "skip-verify"
	}
	return mc.FormatDSN()
}

// PingTimeout bounds the startup connectivity check.
const PingTimeout = 5 * time.Second

// Open builds the MySQL pool.  No connection is made yet, so an unreachable
// server does not fail here; call Ping to check it.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, err
	}

	// Pool settings
	size := cfg.DBPoolSize
	if size < 1 {
		size = 25
	}
	db.SetMaxOpenConns(size)
	db.SetMaxIdleConns(size)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// Ping verifies the pool can reach the server within PingTimeout.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
