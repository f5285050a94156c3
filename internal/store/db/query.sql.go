package db

import (
	"context"
	"database/sql"
)

const upsertTeam = `-- name: UpsertTeam :exec
insert into team(name, url, strategy, scraped_at) values (?, ?, ?, ?)
on conflict (name) do update set
    url = excluded.url,
    strategy = excluded.strategy,
    scraped_at = excluded.scraped_at
`

type UpsertTeamParams struct {
	Name      string
	Url       string
	Strategy  string
	ScrapedAt int64
}

func (q *Queries) UpsertTeam(ctx context.Context, arg UpsertTeamParams) error {
	_, err := q.db.ExecContext(ctx, upsertTeam,
		arg.Name,
		arg.Url,
		arg.Strategy,
		arg.ScrapedAt,
	)
	return err
}

const deletePlayers = `-- name: DeletePlayers :exec
delete from player where team_name = ?
`

func (q *Queries) DeletePlayers(ctx context.Context, teamName string) error {
	_, err := q.db.ExecContext(ctx, deletePlayers, teamName)
	return err
}

const createPlayer = `-- name: CreatePlayer :exec
insert into player(
    team_name, idx, jersey, first_name, last_name,
    position, sub_position, height, year, hometown
) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreatePlayerParams struct {
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

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) error {
	_, err := q.db.ExecContext(ctx, createPlayer,
		arg.TeamName,
		arg.Idx,
		arg.Jersey,
		arg.FirstName,
		arg.LastName,
		arg.Position,
		arg.SubPosition,
		arg.Height,
		arg.Year,
		arg.Hometown,
	)
	return err
}

const getTeam = `-- name: GetTeam :one
select name, url, strategy, scraped_at from team where name = ?
`

func (q *Queries) GetTeam(ctx context.Context, name string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, name)
	var i Team
	err := row.Scan(
		&i.Name,
		&i.Url,
		&i.Strategy,
		&i.ScrapedAt,
	)
	return i, err
}

const getPlayers = `-- name: GetPlayers :many
select idx, jersey, first_name, last_name, position, sub_position, height, year, hometown
from player where team_name = ?
order by idx
`

type GetPlayersRow struct {
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

func (q *Queries) GetPlayers(ctx context.Context, teamName string) ([]GetPlayersRow, error) {
	rows, err := q.db.QueryContext(ctx, getPlayers, teamName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetPlayersRow
	for rows.Next() {
		var i GetPlayersRow
		if err := rows.Scan(
			&i.Idx,
			&i.Jersey,
			&i.FirstName,
			&i.LastName,
			&i.Position,
			&i.SubPosition,
			&i.Height,
			&i.Year,
			&i.Hometown,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTeams = `-- name: ListTeams :many
select team.name, team.url, team.strategy, team.scraped_at, count(player.idx) as players
from team
left join player on player.team_name = team.name
group by team.name
order by team.name
`

type ListTeamsRow struct {
	Name      string
	Url       string
	Strategy  string
	ScrapedAt int64
	Players   int64
}

func (q *Queries) ListTeams(ctx context.Context) ([]ListTeamsRow, error) {
	rows, err := q.db.QueryContext(ctx, listTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListTeamsRow
	for rows.Next() {
		var i ListTeamsRow
		if err := rows.Scan(
			&i.Name,
			&i.Url,
			&i.Strategy,
			&i.ScrapedAt,
			&i.Players,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
