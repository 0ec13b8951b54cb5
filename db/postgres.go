package db

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens a postgres pool and verifies the connection. The caller
// owns the returned handle and passes it to the repositories explicitly.
func Connect(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
