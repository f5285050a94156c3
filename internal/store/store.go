package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"ncaa-rosters/internal/store/db"
)

// Database configures where scraped rosters are persisted, either a local
// sqlite file or a remote libsql server.
type Database struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (d Database) Enabled() bool {
	return d.File != "" || d.Url != ""
}

func (d Database) remoteDSN() string {
	if d.AuthToken == "" {
		return d.Url
	}
	separator := "?"
	if strings.Contains(d.Url, "?") {
		separator = "&"
	}
	return d.Url + separator + "authToken=" + d.AuthToken
}

// Open connects to the database and makes sure the schema exists.
func Open(ctx context.Context, config Database) (*sql.DB, error) {
	var (
		database *sql.DB
		err      error
	)
	switch {
	case config.Url != "":
		database, err = sql.Open("libsql", config.remoteDSN())
		if err != nil {
			return nil, err
		}
	case config.File != "":
		if config.File != ":memory:" {
			_, statErr := os.Stat(config.File)
			if os.IsNotExist(statErr) {
				f, err := os.Create(config.File)
				if err != nil {
					return nil, err
				}
				f.Close()
			}
		}
		database, err = sql.Open("sqlite", config.File)
		if err != nil {
			return nil, err
		}
		// see this stackoverflow post for information on why the following
		// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
		database.SetMaxOpenConns(1)
		if config.File != ":memory:" {
			_, err = database.ExecContext(ctx, "PRAGMA journal_mode=WAL")
			if err != nil {
				database.Close()
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("a database file or url was not specified")
	}

	_, err = database.ExecContext(ctx, db.Schema)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return database, nil
}
