package db

import (
	"database/sql"
)

type Player struct {
	TeamName    string
	Idx         int64
	Jersey      sql.NullInt64
	FirstName   string
	LastName    string
	Position    string
	SubPosition string
	Height      sql.NullString
	Year        sql.NullString
	Hometown    sql.NullString
}

type Team struct {
	Name      string
	Url       string
	Strategy  string
	ScrapedAt int64
}
